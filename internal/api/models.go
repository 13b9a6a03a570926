package api

import "github.com/phrazzld/cloze-api/internal/domain"

// PromptRequest defines the payload for the cloze prompt endpoint.
type PromptRequest struct {
	// FrontSide is the word the sentence must be built around
	FrontSide string `json:"front_side" validate:"required"`

	// BackSide is accepted for clients that post both sides of a card.
	// It does not influence the prompt.
	BackSide string `json:"back_side"`
}

// ToFlashcard converts the request into a domain.Flashcard.
func (r PromptRequest) ToFlashcard() domain.Flashcard {
	return domain.Flashcard{FrontSide: r.FrontSide, BackSide: r.BackSide}
}

// PromptResponse defines the successful response for the cloze prompt endpoint.
type PromptResponse struct {
	// Response is the text returned by the language model, unmodified
	Response string `json:"response"`
}
