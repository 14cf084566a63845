package gemini

import "strings"

// invalidKeyMarkers are the substrings the Gemini API uses to signal that the
// supplied API key was rejected. Matching is case-insensitive.
var invalidKeyMarkers = []string{
	"api key not valid",
	"api_key_invalid",
}

// isInvalidCredential reports whether an upstream error indicates the API key
// itself was rejected, as opposed to a transport or service failure.
func isInvalidCredential(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range invalidKeyMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
