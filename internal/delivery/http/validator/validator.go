// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "rolodex/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(),
	}
}

// Validate runs struct-tag validation and maps failures to the 400 taxonomy.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
