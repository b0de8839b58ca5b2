package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rolodex/config"
	"rolodex/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Symmetric key for signing and verifying tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// The signing secret must come from configuration; it is never compiled into source.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed HS256 token bound to subject.
func (s *jwtService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature and expiry of a token string.
// Validity is determined purely by signature and expiry; no server-side state is consulted.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenMalformed
	}

	if !token.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, service.ErrTokenMalformed
	}

	return claims, nil
}
