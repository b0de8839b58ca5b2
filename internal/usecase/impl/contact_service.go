package impl

import (
	"context"
	"log/slog"

	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/lifecycle"
	"rolodex/internal/domain/repository"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves the capped full scan of the contacts collection.
func (srv *contactService) List(ctx context.Context) ([]*entity.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	contacts, err := srv.contactRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list contacts", slog.Any("error", err))

		return nil, domainerrors.NewStoreExecuteError(err, "failed to list contacts")
	}

	return contacts, nil
}

// GetByName retrieves a single contact by its unique name.
func (srv *contactService) GetByName(ctx context.Context, name string) (*entity.Contact, error) {
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("contact name must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	contact, err := srv.contactRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound.WrapMessage("get contact failed")
		}
		srv.log(ctx).Error("Failed to get contact", slog.String("name", name), slog.Any("error", err))

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get contact")
	}

	return contact, nil
}

// Create persists a new contact, relying on the store's uniqueness constraint
// for atomic duplicate detection.
func (srv *contactService) Create(ctx context.Context, input *usecase.CreateContactInput) (*entity.Contact, error) {
	if input == nil || input.ContactName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("contact_name is required")
	}

	contact := &entity.Contact{
		ContactName: input.ContactName,
		PhoneNumber: input.PhoneNumber,
		Message:     input.Message,
		ImageURL:    input.ImageURL,
	}

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.contactRepo.Insert(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrContactExists) {
			srv.log(ctx).Warn("Duplicate contact rejected", slog.String("name", input.ContactName))

			return nil, domainerrors.ErrContactAlreadyExists.WrapMessage("create contact failed")
		}
		srv.log(ctx).Error("Failed to create contact", slog.String("name", input.ContactName), slog.Any("error", err))

		return nil, domainerrors.NewStoreExecuteError(err, "failed to create contact")
	}

	srv.log(ctx).Info("Contact created", slog.String("name", contact.ContactName))

	return contact, nil
}
