package domain

import (
	"errors"
	"strings"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardTermEmpty is returned when a flashcard's term is empty or whitespace.
	ErrFlashcardTermEmpty = errors.New("flashcard term cannot be empty")

	// ErrFlashcardDefinitionEmpty is returned when a flashcard's definition is empty or whitespace.
	ErrFlashcardDefinitionEmpty = errors.New("flashcard definition cannot be empty")
)

// Flashcard represents a single term/definition pair produced by parsing a
// completion response. Flashcards are immutable values: they are created only
// by the response parser and exist only as part of a generation result.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// NewFlashcard creates a Flashcard from the given term and definition.
// Both fields are trimmed; either being empty after trimming is an error.
func NewFlashcard(term, definition string) (Flashcard, error) {
	card := Flashcard{
		Term:       strings.TrimSpace(term),
		Definition: strings.TrimSpace(definition),
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.Term) == "" {
		return ErrFlashcardTermEmpty
	}

	if strings.TrimSpace(f.Definition) == "" {
		return ErrFlashcardDefinitionEmpty
	}

	return nil
}
