package gemini

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

// Completer wraps the Gemini client behind the generation.Completer
// interface: one prompt in, one block of text out.
type Completer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewCompleter constructs a Gemini-backed completer from an API key.
// Client construction failures are returned as-is so the caller can treat
// them as initialization errors.
func NewCompleter(
	ctx context.Context,
	logger *slog.Logger,
	apiKey string,
	model string,
	timeout time.Duration,
) (*Completer, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, err
	}

	return &Completer{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger.With("component", "gemini_completer"),
	}, nil
}

// Complete sends the prompt to the Gemini API and returns the concatenated
// response text. The call is synchronous; the request context (plus the
// configured timeout) is the only cancellation path.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	text := ""
	if resp != nil {
		text = resp.Text()
	}

	c.logger.DebugContext(ctx, "Gemini API call completed",
		"model", c.model,
		"prompt_length", len(prompt),
		"response_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}
