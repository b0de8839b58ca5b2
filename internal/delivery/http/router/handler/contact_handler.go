package handler

import (
	"log/slog"
	"net/http"

	"rolodex/internal/delivery/http/response"
	"rolodex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for contact-related handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the full-collection scan request (capped by the repository).
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contacts, "Contacts retrieved successfully")
}

// GetByName handles the lookup of a single contact by its unique name.
func (h *ContactHandler) GetByName(c echo.Context) error {
	contact, err := h.uc.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contact, "Contact retrieved successfully")
}

// Create handles the contact creation request. Runs behind the auth gate.
func (h *ContactHandler) Create(c echo.Context) error {
	var input *usecase.CreateContactInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	contact, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contact, "Contact created successfully")
}
