package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
)

// CreateContactInput defines the data required to create a contact.
// Only contact_name is mandatory; it is the unique key within the collection.
type CreateContactInput struct {
	ContactName string `json:"contact_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
	ImageURL    string `json:"image_url"`
}

// ContactUsecase defines the interface for contact-related business operations.
type ContactUsecase interface {
	List(ctx context.Context) ([]*entity.Contact, error)
	GetByName(ctx context.Context, name string) (*entity.Contact, error)
	Create(ctx context.Context, input *CreateContactInput) (*entity.Contact, error)
}
