// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or returned in error responses. Upstream
// error messages can echo the API key or backend host details; this package
// keeps them out of logs and client-facing text.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

// Precompiled regex patterns
var (
	// API keys and tokens appearing after a labelled assignment
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google API keys have a fixed recognizable prefix
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{30,}`)

	// Backend host:port fragments from transport errors
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := googleKeyRegex.ReplaceAllString(input, RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "$1$2"+RedactedKeyPlaceholder)
	result = hostPortRegex.ReplaceAllString(result, RedactedHostPlaceholder)

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
