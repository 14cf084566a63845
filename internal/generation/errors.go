package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrEmptyTopic is returned when the requested topic is empty or whitespace.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrEmptyResponse is returned when the upstream service returned no text at all.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrNoValidFlashcards is returned when the response text contained no
	// parseable term/definition pairs.
	ErrNoValidFlashcards = errors.New("no valid flashcards in response")

	// ErrInvalidCredential is returned when the upstream service flags the
	// API key as invalid. Callers are expected to reset the credential gate.
	ErrInvalidCredential = errors.New("upstream rejected the API credential")

	// ErrUpstreamFailure is returned for network or service failures; the
	// upstream message is wrapped alongside it.
	ErrUpstreamFailure = errors.New("upstream completion service failure")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
