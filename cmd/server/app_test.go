package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/cloze-api/internal/config"
	"github.com/phrazzld/cloze-api/internal/generation"
	"github.com/phrazzld/cloze-api/internal/mocks"
	"github.com/phrazzld/cloze-api/internal/platform/gemini"
	"github.com/phrazzld/cloze-api/internal/platform/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   8000,
			LogLevel:               "info",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 5,
		},
		LLM: config.LLMConfig{
			Provider:              config.ProviderOllama,
			ModelName:             "llama3",
			OllamaURL:             "http://localhost:11434",
			RequestTimeoutSeconds: 5,
			MaxConcurrentRequests: 2,
		},
	}
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("ollama", func(t *testing.T) {
		gen, err := newGenerator(ctx, testConfig().LLM, testLogger())
		require.NoError(t, err)
		assert.IsType(t, &ollama.OllamaGenerator{}, gen)
	})

	t.Run("gemini", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderGemini
		cfg.ModelName = "gemini-2.0-flash"
		cfg.GeminiAPIKey = "test-key"

		gen, err := newGenerator(ctx, cfg, testLogger())
		require.NoError(t, err)
		assert.IsType(t, &gemini.GeminiGenerator{}, gen)
	})

	t.Run("gemini without key", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderGemini

		gen, err := newGenerator(ctx, cfg, testLogger())
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Nil(t, gen)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = "openai"

		gen, err := newGenerator(ctx, cfg, testLogger())
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Nil(t, gen)
	})
}

func TestNewApplication(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), testLogger())

	require.NoError(t, err)
	assert.NotNil(t, app.generator)
	assert.NotNil(t, app.clozeService)
	assert.IsType(t, &generation.LimitedGenerator{}, app.generator)
}

func TestNewApplicationInvalidLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.MaxConcurrentRequests = 0

	_, err := newApplicationWithGenerator(cfg, testLogger(), mocks.NewMockGeneratorWithText("x"))

	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
