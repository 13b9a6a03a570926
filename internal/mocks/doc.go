// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these standardized
// mock implementations can be reused across packages.
//
// Usage:
//
//	gen := mocks.NewMockGeneratorWithText("I ate an _ for lunch.")
//	svc, _ := service.NewClozeService(gen, logger)
//	...
//	assert.Contains(t, gen.LastPrompt(), "apple")
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record calls so tests can assert on what was sent
package mocks
