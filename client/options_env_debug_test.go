package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("BNET_DEBUG", "true")
	c, err := New(testClientID, testClientSecret, "us")
	require.NoError(t, err)
	assert.True(t, c.debug, "expected debug transport to be installed when BNET_DEBUG=true")
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	// base transport returns error
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	_, err := dt.RoundTrip(req)
	assert.Error(t, err, "expected error from underlying transport")
}

func TestRedactAuthorization(t *testing.T) {
	dump := []byte("POST /oauth/token HTTP/1.1\r\nHost: us.battle.net\r\nAuthorization: Basic c2VjcmV0\r\n\r\ngrant_type=client_credentials")
	got := redactAuthorization(dump)
	assert.NotContains(t, got, "c2VjcmV0")
	assert.Contains(t, got, "Authorization: [redacted]")
	assert.Contains(t, got, "grant_type=client_credentials")
	assert.Contains(t, got, "Authorization: [redacted]\r\n\r\n")
}
