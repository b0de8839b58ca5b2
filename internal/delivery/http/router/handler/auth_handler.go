// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/response"
	"rolodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for signup/login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account creation request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"msg": "signup ok"}, "Signup successful")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Protected greets the authenticated user. The auth middleware has already
// verified the token and resolved the subject by the time this runs.
func (h *AuthHandler) Protected(c echo.Context) error {
	email, ok := c.Get(middleware.KeyUserEmail).(string)
	if !ok || email == "" {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid subject in token")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"msg": fmt.Sprintf("Hello %s, this is protected data!", email),
	}, "Protected data retrieved")
}
