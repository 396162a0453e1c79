package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHTTPError(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCategory
	}{
		{400, Irrecoverable},
		{401, Irrecoverable},
		{403, Irrecoverable},
		{404, Irrecoverable},
		{408, Recoverable},
		{429, Recoverable},
		{500, Recoverable},
		{503, Recoverable},
		{302, Recoverable},
	}
	for _, tc := range cases {
		err := NewHTTPError("api", tc.status, "body")
		assert.Equal(t, tc.want, err.Category, "status %d", tc.status)
		assert.Equal(t, tc.status, err.StatusCode)
	}
}

func TestAPIError_MessageEmbedsBody(t *testing.T) {
	err := NewHTTPError("api", 403, `{"code":403,"detail":"Forbidden"}`)
	assert.Contains(t, err.Error(), "HTTP 403")
	assert.Contains(t, err.Error(), `"detail":"Forbidden"`)
	assert.Contains(t, err.Error(), "Irrecoverable")
}

func TestNewNetworkError_Unwraps(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := NewNetworkError("oauth_userinfo", cause)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, 0, err.StatusCode)
	assert.Equal(t, Recoverable, err.Category)
}

func TestConfigurationError_Message(t *testing.T) {
	err := NewConfigurationError("clientId", "expected 32 lowercase alphanumeric characters")
	assert.Equal(t, "'clientId' is not valid: expected 32 lowercase alphanumeric characters", err.Error())
}

func TestErrorCategory_String(t *testing.T) {
	assert.Equal(t, "Recoverable", Recoverable.String())
	assert.Equal(t, "Irrecoverable", Irrecoverable.String())
	assert.Equal(t, "Unknown(7)", ErrorCategory(7).String())
}
