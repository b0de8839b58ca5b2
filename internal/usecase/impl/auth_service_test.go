package impl

import (
	"context"
	"testing"

	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/infra/memstore"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(hasher *fakeHasher, tokenService *fakeTokenService) (usecase.AuthUsecase, AuthServiceParams) {
	params := AuthServiceParams{
		Store:        memstore.NewCredentialStore(),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}

	return NewAuthService(params), params
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(&fakeHasher{}, &fakeTokenService{})
	ctx := context.Background()

	err := svc.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@example.com", output.Token)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc, params := newTestAuthService(&fakeHasher{}, &fakeTokenService{})
	ctx := context.Background()

	err := svc.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "first"})
	require.NoError(t, err)

	// Second signup with the same email is rejected
	err = svc.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "second"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	// The first credential is untouched
	digest, ok := params.Store.Get("alice@example.com")
	assert.True(t, ok)
	assert.Equal(t, "digest:first", digest)
}

func TestAuthService_SignupHashFailure(t *testing.T) {
	svc, params := newTestAuthService(&fakeHasher{hashErr: errors.New("boom")}, &fakeTokenService{})

	err := svc.Signup(context.Background(), &usecase.SignupInput{Email: "alice@example.com", Password: "secret"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))

	// Nothing is recorded on failure
	_, ok := params.Store.Get("alice@example.com")
	assert.False(t, ok)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(&fakeHasher{}, &fakeTokenService{})

	output, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownUser))
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(&fakeHasher{}, &fakeTokenService{})
	ctx := context.Background()

	err := svc.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
}

func TestAuthService_LoginTokenIssueFailure(t *testing.T) {
	svc, _ := newTestAuthService(&fakeHasher{}, &fakeTokenService{issueErr: errors.New("signing broke")})
	ctx := context.Background()

	err := svc.Signup(ctx, &usecase.SignupInput{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "secret"})
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to issue token")
}
