package validation

import (
	"fmt"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate is shared across the process; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a struct against its `validate` tags. Violations surface
// as apperrors.ErrValidation so callers can branch with errors.Is.
func Struct(s any) error {
	if err := validate.Struct(s); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return fmt.Errorf("invalid validation target: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	return nil
}

// Var validates a single value against a tag expression.
func Var(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	return nil
}
