package impl

import (
	"context"
	"testing"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactService(repo *fakeContactRepo) usecase.ContactUsecase {
	return NewContactService(ContactServiceParams{
		ContactRepo: repo,
		Logger:      newDiscardLogger(),
	})
}

func TestContactService_CreateAndGet(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newTestContactService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateContactInput{
		ContactName: "Tony Stark",
		PhoneNumber: "555-0100",
		Message:     "Genius, billionaire",
		ImageURL:    "https://example.com/tony.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tony Stark", created.ContactName)

	got, err := svc.GetByName(ctx, "Tony Stark")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.PhoneNumber)
}

func TestContactService_CreateDuplicate(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newTestContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &usecase.CreateContactInput{ContactName: "Tony Stark"})
	require.NoError(t, err)

	contact, err := svc.Create(ctx, &usecase.CreateContactInput{ContactName: "Tony Stark"})
	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrContactAlreadyExists))
}

func TestContactService_CreateMissingName(t *testing.T) {
	svc := newTestContactService(newFakeContactRepo())

	contact, err := svc.Create(context.Background(), &usecase.CreateContactInput{PhoneNumber: "555-0100"})
	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestContactService_GetByNameNotFound(t *testing.T) {
	svc := newTestContactService(newFakeContactRepo())

	contact, err := svc.GetByName(context.Background(), "nobody")
	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_GetByNameEmpty(t *testing.T) {
	svc := newTestContactService(newFakeContactRepo())

	contact, err := svc.GetByName(context.Background(), "")
	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestContactService_List(t *testing.T) {
	repo := newFakeContactRepo()
	repo.contacts["a"] = &entity.Contact{ContactName: "a"}
	repo.contacts["b"] = &entity.Contact{ContactName: "b"}
	svc := newTestContactService(repo)

	contacts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestContactService_StoreFailure(t *testing.T) {
	repo := newFakeContactRepo()
	repo.listErr = errors.New("connection reset")
	svc := newTestContactService(repo)

	contacts, err := svc.List(context.Background())
	assert.Nil(t, contacts)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}
