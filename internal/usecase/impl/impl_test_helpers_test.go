package impl

import (
	"context"
	"io"
	"log/slog"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "digest:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "digest:"+password
}

// fakeTokenService issues predictable tokens for tests.
type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) Issue(subject string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	return "token-for-" + subject, nil
}

func (f *fakeTokenService) Verify(string) (*service.Claims, error) {
	panic("not used in these tests")
}

// fakeContactRepo is an in-memory ContactRepository for tests.
type fakeContactRepo struct {
	contacts  map[string]*entity.Contact
	listErr   error
	getErr    error
	insertErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*entity.Contact)}
}

func (f *fakeContactRepo) ListAll(_ context.Context) ([]*entity.Contact, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	out := make([]*entity.Contact, 0, len(f.contacts))
	for _, c := range f.contacts {
		out = append(out, c)
	}

	return out, nil
}

func (f *fakeContactRepo) GetByName(_ context.Context, name string) (*entity.Contact, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	contact, ok := f.contacts[name]
	if !ok {
		return nil, repository.ErrContactNotFound
	}

	return contact, nil
}

func (f *fakeContactRepo) Insert(_ context.Context, contact *entity.Contact) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.contacts[contact.ContactName]; ok {
		return repository.ErrContactExists
	}
	f.contacts[contact.ContactName] = contact

	return nil
}
