// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the interface for signup/login business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
