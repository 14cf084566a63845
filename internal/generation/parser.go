package generation

import (
	"strings"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// ParseFlashcards parses a freeform completion response into flashcards.
//
// The response is expected to contain lines of the shape "Term: Definition".
// The first colon on a line locates the term; everything after it is the
// definition, so colons inside the definition (times, ratios) survive intact.
// Lines that do not yield a non-empty trimmed term and a non-empty trimmed
// definition are dropped silently. Source line order is preserved and
// duplicates are not collapsed.
//
// Returns ErrEmptyResponse if the text is empty, or ErrNoValidFlashcards if
// no line parsed into a valid pair.
func ParseFlashcards(text string) ([]domain.Flashcard, error) {
	if text == "" {
		return nil, ErrEmptyResponse
	}

	lines := strings.Split(text, "\n")
	cards := make([]domain.Flashcard, 0, len(lines))

	for _, line := range lines {
		term, definition, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		card, err := domain.NewFlashcard(term, definition)
		if err != nil {
			// Malformed lines never surface individual errors.
			continue
		}

		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, ErrNoValidFlashcards
	}

	return cards, nil
}
