package generation

import "context"

// Generator defines the interface for single-turn text generation.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateText sends prompt as a single user message and returns the
	// text of the model's reply.
	//
	// The returned error, if any, wraps one of the sentinel errors in
	// errors.go so callers can classify it with errors.Is.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
