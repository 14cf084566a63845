package generation

import (
	"context"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// Generator defines the interface for generating flashcards from a topic.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateFlashcards creates flashcards describing the provided topic.
	// It returns the cards in the order they appeared in the upstream
	// response, or an error if generation fails (see errors.go for the
	// specific types).
	GenerateFlashcards(ctx context.Context, topic string) ([]domain.Flashcard, error)
}

// Completer is the one operation the upstream completion service exposes:
// a single prompt in, a single block of text out. No streaming, no
// multi-turn context.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
