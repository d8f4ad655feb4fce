package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoImage indicates the image model returned a response without any
// image payload.
var ErrNoImage = errors.New("image generation failed: no image in response")

// APIError is a non-2xx response from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API returned status %d: %s", e.StatusCode, e.Message)
}

// IsCredentialError reports whether err looks like a billing or authorization
// problem rather than a generation failure, so callers can prompt for
// re-authentication instead of suggesting a retry. The structured status code
// is checked first; the substring match is a last-resort fallback for errors
// that did not come from an HTTP response, and is known to be fragile — the
// service guarantees no stable error-message contract.
func IsCredentialError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusNotFound
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "403") ||
		strings.Contains(msg, "404") ||
		strings.Contains(msg, "entity was not found")
}
