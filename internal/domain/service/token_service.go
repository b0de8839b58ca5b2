package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned by Verify when the token's expiry has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenMalformed is returned by Verify when the signature does not validate
// or required claims are missing.
var ErrTokenMalformed = errors.New("token malformed")

// Claims defines the custom claims for the issued JWTs.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token bound to subject, expiring after the configured TTL.
	Issue(subject string) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	// Failures are reported as ErrTokenExpired or ErrTokenMalformed.
	Verify(tokenString string) (*Claims, error)
}
