package errors

import "fmt"

// ClassifyHTTPError builds an APIError for a response that was received but
// did not carry status 200.
//   - 408 and 429 are recoverable
//   - other 4xx are irrecoverable
//   - 5xx and anything unexpected are recoverable
func ClassifyHTTPError(op string, statusCode int, body string, underlyingErr error) *APIError {
	return &APIError{
		Op:         op,
		Category:   getHTTPErrorCategory(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: underlyingErr,
	}
}

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError creates a classified error for a non-200 response.
func NewHTTPError(op string, statusCode int, body string) *APIError {
	underlyingErr := fmt.Errorf("%s failed: HTTP %d", op, statusCode)
	return ClassifyHTTPError(op, statusCode, body, underlyingErr)
}

// NewNetworkError creates a classified error for a transport-level failure.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(op string, err error) *APIError {
	return &APIError{
		Op:         op,
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", op, err),
	}
}
