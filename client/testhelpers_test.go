package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testClientID     = "0123456789abcdef0123456789abcdef"
	testClientSecret = "AbCdEfGhIjKlMnOpQrStUvWxYz012345"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// noNetwork fails the test if any request reaches the transport.
func noNetwork(t *testing.T) roundTripFunc {
	return func(r *http.Request) (*http.Response, error) {
		t.Errorf("unexpected network call: %s %s", r.Method, r.URL)
		return nil, fmt.Errorf("network disabled")
	}
}

// fakeBattleNet serves the OAuth token endpoint and records REST requests.
type fakeBattleNet struct {
	*httptest.Server

	mu          sync.Mutex
	tokenCalls  int
	apiRequests []*http.Request
	apiStatus   int
	apiBody     string
}

func newFakeBattleNet(t *testing.T) *fakeBattleNet {
	t.Helper()
	f := &fakeBattleNet{apiStatus: http.StatusOK, apiBody: `{"ok":true}`}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeBattleNet) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/oauth/token":
		_ = r.ParseForm()
		f.tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("grant_type") == "client_credentials" {
			_, _ = fmt.Fprintf(w, `{"access_token":"app-token-%d","token_type":"bearer","expires_in":86399}`, f.tokenCalls)
			return
		}
		_, _ = fmt.Fprintf(w, `{"access_token":"user-token","code":%q,"redirect_uri":%q}`, r.PostForm.Get("code"), r.PostForm.Get("redirect_uri"))
	case "/oauth/userinfo":
		_, _ = fmt.Fprintf(w, `{"auth":%q}`, r.Header.Get("Authorization"))
	case "/oauth/check_token":
		_ = r.ParseForm()
		_, _ = fmt.Fprintf(w, `{"token":%q}`, r.PostForm.Get("token"))
	default:
		f.apiRequests = append(f.apiRequests, r.Clone(r.Context()))
		w.WriteHeader(f.apiStatus)
		_, _ = w.Write([]byte(f.apiBody))
	}
}

func (f *fakeBattleNet) lastAPIRequest(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.apiRequests, "no REST request reached the server")
	return f.apiRequests[len(f.apiRequests)-1]
}

// newTestClient points every region at the fake server.
func newTestClient(t *testing.T, f *fakeBattleNet, region string, opts ...Option) *Client {
	t.Helper()
	c, err := New(testClientID, testClientSecret, region, opts...)
	require.NoError(t, err)
	c.hosts = func(Region) Hosts { return Hosts{API: f.URL, OAuth: f.URL} }
	return c
}
