package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/cloze-api/internal/api/shared"
	"github.com/phrazzld/cloze-api/internal/domain"
	"github.com/phrazzld/cloze-api/internal/generation"
)

// StatusClientClosedRequest is the non-standard status recorded when the
// client went away before the response was ready. It keeps disconnects out of
// the 5xx error logs; the client never sees it.
const StatusClientClosedRequest = 499

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// The client disconnected; checked before the model sentinels because a
	// canceled call is not a model failure
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest

	// The model did not answer in time
	case errors.Is(err, generation.ErrModelTimeout):
		return http.StatusGatewayTimeout

	// The model answered badly or not at all
	case errors.Is(err, generation.ErrModelUnavailable),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)

	case errors.Is(err, context.Canceled):
		return "Request canceled"

	case errors.Is(err, generation.ErrModelTimeout):
		return "The language model did not respond in time"

	case errors.Is(err, generation.ErrModelUnavailable):
		return "The language model is unavailable"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned an invalid response"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The language model declined to answer"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first offending field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) && domainErr.Field != "" {
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
