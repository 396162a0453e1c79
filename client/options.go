package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"

	"github.com/dalaenir/blizzard-api/client/internal/transport"
)

// Option configures a Client during construction in New.
//
// Options run after the required fields are validated and before the
// dispatcher is built, so transport options all land in one http.Client.
type Option func(*Client) error

// WithLocale sets the locale sent with REST calls. An empty string leaves the
// locale unset.
func WithLocale(locale string) Option {
	return func(c *Client) error {
		if locale == "" {
			return nil
		}
		return c.SetLocale(locale)
	}
}

// WithRedirectURI sets the redirect URI of the authorization-code flow. An
// empty string leaves it unset.
func WithRedirectURI(redirectURI string) Option {
	return func(c *Client) error {
		if redirectURI == "" {
			return nil
		}
		return c.SetRedirectURI(redirectURI)
	}
}

// WithRootCAs pins the trust anchor for the API and OAuth hosts to the
// certificates in a PEM bundle. Without it the system pool is used.
func WithRootCAs(pemBundle []byte) Option {
	return func(c *Client) error {
		pool, err := transport.CertPoolFromPEM(pemBundle)
		if err != nil {
			return err
		}
		c.tcfg.RootCAs = pool
		return nil
	}
}

// WithRootCAFile is WithRootCAs reading the bundle from path.
func WithRootCAFile(path string) Option {
	return func(c *Client) error {
		pool, err := transport.CertPoolFromFile(path)
		if err != nil {
			return err
		}
		c.tcfg.RootCAs = pool
		return nil
	}
}

// WithTransport replaces the base RoundTripper, e.g. for tracing or tests.
// The fixed request timeout still applies. A custom transport owns its TLS
// configuration, so WithRootCAs has no effect alongside it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("nil transport")
		}
		c.tcfg.Base = rt
		return nil
	}
}

// WithRateLimit throttles outgoing requests to rps per second with the given
// burst. Waiting honours the call's context. Requests are never retried.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) error {
		if rps <= 0 {
			return fmt.Errorf("rate limit must be > 0")
		}
		c.tcfg.Limiter = transport.NewLimiter(rps, burst)
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and logs response bodies. Authorization headers are redacted.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}
