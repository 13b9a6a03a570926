package domain

import "strings"

// Flashcard is the word pair submitted by a client. It only lives for the
// span of a single request.
type Flashcard struct {
	// FrontSide is the term the generated sentence is built around.
	FrontSide string

	// BackSide is the other side of the card (typically a translation).
	// It is accepted for interface compatibility but does not take part
	// in sentence generation.
	BackSide string
}

// NewFlashcard creates a validated Flashcard.
func NewFlashcard(frontSide, backSide string) (*Flashcard, error) {
	card := &Flashcard{
		FrontSide: frontSide,
		BackSide:  backSide,
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// Validate checks that the card has a usable front side.
func (c *Flashcard) Validate() error {
	if strings.TrimSpace(c.FrontSide) == "" {
		return NewValidationError("front_side", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
