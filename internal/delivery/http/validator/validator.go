// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can validate bound request structs by tag.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag failures surface as the domain's
// validation error naming the first offending field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		first := fieldErrors[0]

		return domainerrors.ErrValidationFailed.WithDetails(first.Field() + ": failed on '" + first.Tag() + "'")
	}

	return domainerrors.ErrValidationFailed
}
