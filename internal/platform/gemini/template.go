package gemini

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/flashdeck/flashdeck-api/internal/generation"
)

// defaultPromptTemplate directs the model to emit one "Term: Definition" pair
// per line with no preamble, the shape the response parser expects. The topic
// is substituted verbatim and deliberately not sanitized; escaping behavior
// around user-supplied delimiter characters is unspecified upstream.
const defaultPromptTemplate = `Generate a set of flashcards about {{.Topic}}.
Respond with one flashcard per line, each line in the exact form "Term: Definition".
Do not include any preamble, numbering, bullets, or text other than the flashcard lines.`

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic string
}

// loadPromptTemplate parses the prompt template, reading it from path when
// one is configured and falling back to the built-in default otherwise.
func loadPromptTemplate(path string) (*template.Template, error) {
	content := defaultPromptTemplate
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, path, err)
		}
		content = string(raw)
	}

	tmpl, err := template.New("flashcards").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	return tmpl, nil
}

// buildPrompt executes the template with the given topic.
func buildPrompt(tmpl *template.Template, topic string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Topic: topic}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
