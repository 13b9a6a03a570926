package service

import (
	"errors"
	"fmt"
)

// Error handling principles:
// 1. Validation failures are returned as domain.ErrValidation-wrapped errors
// 2. Model failures keep their generation sentinel in the chain
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes

// ClozeServiceError wraps errors from the cloze service with context.
type ClozeServiceError struct {
	// Operation is the operation that failed (e.g., "create_sentence")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ClozeServiceError.
func (e *ClozeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cloze service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("cloze service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ClozeServiceError) Unwrap() error {
	return e.Err
}

// NewClozeServiceError creates a new ClozeServiceError, or nil when err is nil.
func NewClozeServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	var existing *ClozeServiceError
	if errors.As(err, &existing) {
		return err
	}
	return &ClozeServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
