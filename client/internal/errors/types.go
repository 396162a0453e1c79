// Package errors defines the two error kinds surfaced by the SDK.
// Configuration errors are raised before any network call; API errors wrap
// transport failures and non-200 responses.
package errors

import "fmt"

// ErrorCategory hints whether a failed call is worth repeating. The SDK never
// retries on its own; the category is informational for callers.
type ErrorCategory int

const (
	// Recoverable failures may succeed if repeated later.
	// Examples: 500 Internal Server Error, 429 Too Many Requests, network timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will fail again with the same input.
	// Examples: 401 Unauthorized, 403 Forbidden, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ConfigurationError reports an invalid or missing caller-supplied value.
type ConfigurationError struct {
	Field  string // offending field or data key, e.g. "clientId"
	Reason string // expected format or what is missing
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("'%s' is not valid: %s", e.Field, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for field.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// APIError wraps a transport failure or a non-200 response from Battle.net.
type APIError struct {
	Op         string // logical operation, e.g. "api" or "oauth_token"
	Category   ErrorCategory
	StatusCode int    // HTTP status code (0 for transport failures)
	Body       string // raw response body for diagnostics
	Underlying error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("Blizzard API error: [%s] HTTP %d: %v: %s", e.Category, e.StatusCode, e.Underlying, e.Body)
	}
	return fmt.Sprintf("Blizzard API error: [%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error {
	return e.Underlying
}
