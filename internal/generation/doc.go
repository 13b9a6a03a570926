// Package generation provides the interface and shared pieces for interacting
// with external AI/LLM chat services. It abstracts the details of the model API
// (Ollama, Gemini) behind the Generator interface, builds the cloze prompt sent
// for each flashcard, and bounds how many model calls may run at once.
package generation
