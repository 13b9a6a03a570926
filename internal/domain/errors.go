// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)

// ValidationError describes which field of an entity failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the underlying error for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every ValidationError regardless of its cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
