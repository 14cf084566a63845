package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/generation"
	"github.com/flashdeck/flashdeck-api/internal/redact"
)

// CredentialGate is the slice of the credential gate the service needs:
// access to the active generator and the ability to discard a credential the
// upstream has rejected.
type CredentialGate interface {
	// Generator returns the active upstream-backed generator, or an error
	// when no credential is active.
	Generator() (generation.Generator, error)

	// Reject discards the credential after the upstream flagged it invalid.
	Reject()
}

// FlashcardService provides flashcard generation operations.
type FlashcardService interface {
	// Generate produces flashcards for the given topic. It requires an
	// active credential and rejects overlapping requests: a second call
	// while one is pending fails with ErrGenerationInProgress, it is never
	// queued.
	Generate(ctx context.Context, topic string) ([]domain.Flashcard, error)
}

// Common sentinel errors for FlashcardService
var (
	// ErrGenerationInProgress indicates a generation request is already in
	// flight for this session.
	ErrGenerationInProgress = errors.New("a generation request is already in progress")
)

// FlashcardServiceError wraps errors from the flashcard service with context.
type FlashcardServiceError struct {
	// Operation is the operation that failed (e.g., "generate")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for FlashcardServiceError.
func (e *FlashcardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flashcard service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("flashcard service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *FlashcardServiceError) Unwrap() error {
	return e.Err
}

// flashcardServiceImpl implements the FlashcardService interface
type flashcardServiceImpl struct {
	gate     CredentialGate
	logger   *slog.Logger
	inFlight atomic.Bool
}

// NewFlashcardService creates a new FlashcardService.
// It returns an error if the gate dependency is nil.
func NewFlashcardService(gate CredentialGate, logger *slog.Logger) (FlashcardService, error) {
	if gate == nil {
		return nil, &FlashcardServiceError{
			Operation: "create_service",
			Message:   "gate cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardServiceImpl{
		gate:   gate,
		logger: logger.With("component", "flashcard_service"),
	}, nil
}

// Generate checks the gate, runs a single generation attempt, and resets the
// credential when the upstream reports it invalid. Every failure is terminal
// for the attempt; nothing is retried.
func (s *flashcardServiceImpl) Generate(
	ctx context.Context,
	topic string,
) ([]domain.Flashcard, error) {
	// Single in-flight guard: a concurrent trigger is rejected, not queued.
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("generation rejected, another request is in flight")
		return nil, ErrGenerationInProgress
	}
	defer s.inFlight.Store(false)

	generator, err := s.gate.Generator()
	if err != nil {
		s.logger.Debug("generation rejected, no active credential")
		return nil, err
	}

	cards, err := generator.GenerateFlashcards(ctx, topic)
	if err != nil {
		if errors.Is(err, generation.ErrInvalidCredential) {
			// Force the gate back through the credential prompt.
			s.gate.Reject()
			s.logger.Warn("upstream rejected credential, gate reset",
				"error", redact.Error(err))
			return nil, err
		}

		s.logger.Error("flashcard generation failed",
			"error", redact.Error(err))
		return nil, err
	}

	s.logger.Info("flashcard generation succeeded",
		"card_count", len(cards))

	return cards, nil
}
