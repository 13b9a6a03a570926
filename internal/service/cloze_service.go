package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/cloze-api/internal/domain"
	"github.com/phrazzld/cloze-api/internal/generation"
	"github.com/phrazzld/cloze-api/internal/platform/logger"
)

// ClozeService provides cloze sentence operations
type ClozeService interface {
	// CreateSentence asks the model for a sentence using the card's front side,
	// with that word replaced by an underscore.
	CreateSentence(ctx context.Context, card domain.Flashcard) (string, error)
}

// clozeServiceImpl implements the ClozeService interface
type clozeServiceImpl struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewClozeService creates a new ClozeService
// It returns an error if any of the required dependencies are nil.
func NewClozeService(generator generation.Generator, logger *slog.Logger) (ClozeService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &clozeServiceImpl{
		generator: generator,
		logger:    logger.With("component", "cloze_service"),
	}, nil
}

// CreateSentence implements ClozeService.
func (s *clozeServiceImpl) CreateSentence(ctx context.Context, card domain.Flashcard) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Debug("rejecting flashcard", "error", err)
		return "", err
	}

	prompt := generation.BuildClozePrompt(card)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", NewClozeServiceError("create_sentence", "model call failed", err)
	}

	log.Debug("sentence generated",
		"front_side_length", len(card.FrontSide),
		"response_length", len(text))
	return text, nil
}
