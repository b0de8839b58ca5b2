// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "rolodex/internal/delivery/context"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store        repository.CredentialStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store        repository.CredentialStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		store:        params.Store,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup hashes the password and records the credential, rejecting duplicate emails.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) error {
	srv.log(ctx).Debug("Starting signup", slog.String("email", input.Email))

	if _, ok := srv.store.Get(input.Email); ok {
		srv.log(ctx).Warn("Signup rejected, email taken", slog.String("email", input.Email))

		return domainerrors.ErrUserAlreadyExists.WrapMessage("signup failed")
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("signup failed")
	}

	srv.store.Put(input.Email, digest)
	srv.log(ctx).Info("User signed up", slog.String("email", input.Email))

	return nil
}

// Login verifies the credentials and issues a bearer token bound to the email.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	digest, ok := srv.store.Get(input.Email)
	if !ok {
		srv.log(ctx).Warn("Login failed, unknown user", slog.String("email", input.Email))

		return nil, domainerrors.ErrUnknownUser.WrapMessage("login failed")
	}

	// bcrypt comparison is CPU-bound; nothing is held locked around it.
	if !srv.hasher.Check(input.Password, digest) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Info("User logged in", slog.String("email", input.Email))

	return &usecase.LoginOutput{Token: token}, nil
}
