package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a referenced entity could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateEmail indicates a uniqueness violation on a client email.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidTransition indicates a status change requested from a state
// that does not permit it.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConnection indicates the store is unreachable or the transaction
// infrastructure failed. Fatal to the current operation.
var ErrConnection = errors.New("store connection error")

// AppError wraps an underlying error with a code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an error that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrNotFound)
}

// NewValidationError creates an error that satisfies errors.Is(err, ErrValidation).
func NewValidationError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrValidation)
}

// NewInvalidTransitionError creates an error that satisfies errors.Is(err, ErrInvalidTransition).
func NewInvalidTransitionError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidTransition)
}

// NewConnectionError creates an error that satisfies errors.Is(err, ErrConnection).
func NewConnectionError(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %v: %w", message, err, ErrConnection)
	}
	return fmt.Errorf("%s: %w", message, ErrConnection)
}
