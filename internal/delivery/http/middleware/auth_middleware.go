package middleware

import (
	"strings"

	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeyUserEmail is the echo.Context key for the authenticated subject.
const KeyUserEmail = "email"

// AuthMiddleware provides middleware for JWT authentication on protected routes.
// Each rejection kind carries its own error code so clients can tell them apart.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	store    repository.CredentialStore
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, store repository.CredentialStore) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, store: store}
}

// Authenticate is the core middleware function that validates the bearer token
// and confirms the subject still resolves to a known user. On success the
// resolved email is attached to both echo.Context and the request context;
// on any failure the protected handler is never invoked.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthHeaderMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrAuthHeaderMalformed
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		// The subject must still exist; a token can outlive its account.
		email := claims.Subject
		if _, ok := m.store.Get(email); !ok {
			return domainerrors.ErrUnknownUser
		}

		// Set user info on the context for handlers to use
		c.Set(KeyUserEmail, email)

		return next(c)
	}
}
