package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/generation"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API to generate flashcards for a topic.
type Generator struct {
	logger         *slog.Logger
	promptTemplate *template.Template
	completer      generation.Completer
}

// NewGenerator creates a Gemini-backed generator from the supplied API key.
// It is the gate's generator factory: client construction failures bubble up
// so activation can report them as initialization errors.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	apiKey string,
) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := loadPromptTemplate(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	completer, err := NewCompleter(
		ctx,
		logger,
		apiKey,
		cfg.ModelName,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGeneratorWithCompleter(logger, promptTemplate, completer), nil
}

// newGeneratorWithCompleter wires a Generator around any completer.
// Tests use it to substitute a stubbed upstream.
func newGeneratorWithCompleter(
	logger *slog.Logger,
	promptTemplate *template.Template,
	completer generation.Completer,
) *Generator {
	return &Generator{
		logger:         logger.With("component", "gemini_generator"),
		promptTemplate: promptTemplate,
		completer:      completer,
	}
}

// GenerateFlashcards validates the topic, builds the prompt, calls the
// upstream service once, and parses the response text into flashcards.
// No retries: every failure is terminal for this attempt.
func (g *Generator) GenerateFlashcards(
	ctx context.Context,
	topic string,
) ([]domain.Flashcard, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, generation.ErrEmptyTopic
	}

	prompt, err := buildPrompt(g.promptTemplate, topic)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "requesting flashcard completion",
		"topic_length", len(topic),
		"prompt_length", len(prompt))

	text, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		if isInvalidCredential(err) {
			return nil, fmt.Errorf("%w: %v", generation.ErrInvalidCredential, err)
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrUpstreamFailure, err)
	}

	cards, err := generation.ParseFlashcards(text)
	if err != nil {
		g.logger.WarnContext(ctx, "response produced no flashcards",
			"error", err,
			"response_length", len(text))
		return nil, err
	}

	g.logger.InfoContext(ctx, "flashcards generated",
		"card_count", len(cards))

	return cards, nil
}
