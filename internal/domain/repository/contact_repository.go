package repository

import (
	"context"
	"errors"

	"rolodex/internal/domain/entity"
)

// ErrContactNotFound is a domain-specific error returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ErrContactExists is returned when an insert collides with an existing contact name.
var ErrContactExists = errors.New("contact already exists")

// ContactRepository defines the standard operations over the contacts collection.
// The application layer depends on this interface, not the concrete implementation.
type ContactRepository interface {
	// ListAll retrieves contacts in store order, capped at the repository's fixed limit.
	ListAll(ctx context.Context) ([]*entity.Contact, error)

	// GetByName retrieves a single contact by its unique name.
	GetByName(ctx context.Context, name string) (*entity.Contact, error)

	// Insert persists a new contact. Returns ErrContactExists when the name is taken;
	// the check relies on a store-level uniqueness constraint, so it is atomic.
	Insert(ctx context.Context, contact *entity.Contact) error
}
