package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// Supported model providers.
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// LLMConfig contains the settings for the external chat model service.
type LLMConfig struct {
	Provider  string `mapstructure:"provider"   validate:"required,oneof=ollama gemini"`
	ModelName string `mapstructure:"model_name" validate:"required"`

	// OllamaURL is the base URL of the Ollama server, e.g. http://localhost:11434.
	OllamaURL    string `mapstructure:"ollama_url"     validate:"required_if=Provider ollama,omitempty,url"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`

	// Temperature is the sampling temperature sent with every call. Zero makes
	// the model deterministic, which repeats the same sentence for a word.
	Temperature float64 `mapstructure:"temperature" validate:"gte=0"`

	// RequestTimeoutSeconds is one deadline covering the wait for a concurrency
	// slot and the model call. It must be shorter than the server write timeout
	// so that a timeout still reaches the client as a 504.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0"`
	MaxConcurrentRequests int `mapstructure:"max_concurrent_requests" validate:"gt=0"`
}
