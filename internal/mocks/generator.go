package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/cloze-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateTextCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateText was called
		Count int

		// Prompts contains all prompts passed to GenerateText calls
		Prompts []string
	}
}

// GenerateText implements the generation.Generator interface
func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.GenerateTextCalls.mu.Lock()
	m.GenerateTextCalls.Count++
	m.GenerateTextCalls.Prompts = append(m.GenerateTextCalls.Prompts, prompt)
	m.GenerateTextCalls.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// CallCount returns how many times GenerateText was called
func (m *MockGenerator) CallCount() int {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	return m.GenerateTextCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "" if there was none
func (m *MockGenerator) LastPrompt() string {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	if len(m.GenerateTextCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateTextCalls.Prompts[len(m.GenerateTextCalls.Prompts)-1]
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()

	m.GenerateTextCalls.Count = 0
	m.GenerateTextCalls.Prompts = nil
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// MockGeneratorUnavailable creates a MockGenerator that simulates an unreachable model service
func MockGeneratorUnavailable() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrModelUnavailable,
	}
}

// MockGeneratorTimeout creates a MockGenerator that simulates a model call timing out
func MockGeneratorTimeout() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrModelTimeout,
	}
}

// Compile-time check that MockGenerator implements generation.Generator
var _ generation.Generator = (*MockGenerator)(nil)
