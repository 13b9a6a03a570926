// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides type-safe
// access to the server and model-service settings while keeping configuration
// details separate from request handling.
package config
