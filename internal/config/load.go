package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "CLOZE"

// configFileEnv names the environment variable holding an explicit config file path.
const configFileEnv = EnvPrefix + "_CONFIG_FILE"

// keys lists every configuration key so that environment variables are bound
// even when neither a default nor a file entry exists.
var keys = []string{
	"server.host",
	"server.port",
	"server.log_level",
	"server.read_timeout_seconds",
	"server.write_timeout_seconds",
	"server.shutdown_timeout_seconds",
	"llm.provider",
	"llm.model_name",
	"llm.ollama_url",
	"llm.gemini_api_key",
	"llm.temperature",
	"llm.request_timeout_seconds",
	"llm.max_concurrent_requests",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 120)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.provider", ProviderOllama)
	v.SetDefault("llm.model_name", "llama3")
	v.SetDefault("llm.ollama_url", "http://localhost:11434")
	v.SetDefault("llm.temperature", 0.8)
	v.SetDefault("llm.request_timeout_seconds", 60)
	v.SetDefault("llm.max_concurrent_requests", 4)
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file, which
// take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.Server.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Server.LogLevel))

	validate := validator.New()
	validate.RegisterStructValidation(validateTimeouts, Config{})
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// validateTimeouts rejects configurations where a model timeout would be cut
// off by the server's write deadline before the 504 response is written.
func validateTimeouts(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Server.WriteTimeoutSeconds <= cfg.LLM.RequestTimeoutSeconds {
		sl.ReportError(cfg.Server.WriteTimeoutSeconds,
			"Server.WriteTimeoutSeconds", "write_timeout_seconds",
			"gtfield", "LLM.RequestTimeoutSeconds")
	}
}
