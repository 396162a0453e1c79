package client

import (
	"errors"

	sdkerrors "github.com/dalaenir/blizzard-api/client/internal/errors"
)

// Re-export the SDK error kinds so callers compare against a single package.
type (
	ConfigurationError = sdkerrors.ConfigurationError
	APIError           = sdkerrors.APIError
	ErrorCategory      = sdkerrors.ErrorCategory
)

const (
	Recoverable   = sdkerrors.Recoverable
	Irrecoverable = sdkerrors.Irrecoverable
)

// IsConfigurationError reports whether err stems from invalid caller input.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsAPIError reports whether err is a transport failure or non-200 response.
func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

// AsAPIError extracts the *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var target *APIError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
