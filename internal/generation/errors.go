package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrModelUnavailable is returned when the model service cannot be reached,
	// the model is not loaded, or the service answers with an error status.
	ErrModelUnavailable = errors.New("model service unavailable")

	// ErrModelTimeout is returned when the model call exceeds its deadline.
	ErrModelTimeout = errors.New("model service timed out")

	// ErrInvalidResponse is returned when the model response cannot be parsed or is empty.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyPrompt is returned when a generator is asked to complete an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
