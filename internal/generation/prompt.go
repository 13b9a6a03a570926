package generation

import (
	"fmt"

	"github.com/phrazzld/cloze-api/internal/domain"
)

// clozePromptFormat is the instruction sent to the model for every card.
const clozePromptFormat = "Please create a sentence using the word %s, " +
	"but output it with this word replaced by _ and output only this sentence"

// BuildClozePrompt returns the prompt asking the model for a sentence that
// uses the card's front side with that word blanked out.
// Only FrontSide is interpolated; BackSide never reaches the model.
func BuildClozePrompt(card domain.Flashcard) string {
	return fmt.Sprintf(clozePromptFormat, card.FrontSide)
}
