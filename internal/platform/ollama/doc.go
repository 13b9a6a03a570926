// Package ollama provides an implementation of the generation.Generator interface
// backed by a locally hosted Ollama server.
//
// This package is an infrastructure adapter in the hexagonal architecture. It uses
// the langchaingo Ollama client to send a single user message to the /api/chat
// endpoint of the configured server and returns the assistant reply. Transport
// failures, error statuses and deadline expiry are translated into the sentinel
// errors of the generation package; nothing is retried.
package ollama
