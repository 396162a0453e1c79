// Package transport is the single chokepoint for outgoing Battle.net calls.
// It fixes the timeout and the trust anchor, returns bodies as text and turns
// transport failures and non-200 responses into *errors.APIError.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/dalaenir/blizzard-api/client/internal/errors"
)

// DefaultTimeout bounds every request, including the TLS handshake and
// reading the response body.
const DefaultTimeout = 5 * time.Second

// Middleware wraps a RoundTripper. Middlewares are applied in order, the
// first one ending up closest to the network.
type Middleware func(http.RoundTripper) http.RoundTripper

// Config holds the dispatcher settings.
type Config struct {
	// RootCAs is the trust anchor for the API hosts. nil means the system pool.
	RootCAs *x509.CertPool
	// Base replaces the default *http.Transport. When set, RootCAs is ignored
	// because the TLS configuration belongs to the supplied transport.
	Base http.RoundTripper
	// Limiter throttles outgoing requests when non-nil.
	Limiter *rate.Limiter
	// Middleware is installed between the limiter and the base transport.
	Middleware []Middleware
}

// BasicAuth carries HTTP Basic credentials.
type BasicAuth struct {
	Username string
	Password string
}

// Request describes one outgoing call.
type Request struct {
	Op        string // label for logs and errors, e.g. "api"
	Method    string
	URL       string
	Header    map[string]string
	BasicAuth *BasicAuth
	Form      url.Values // sent as application/x-www-form-urlencoded
}

// Dispatcher executes Requests through a shared resty client.
type Dispatcher struct {
	rc *resty.Client
}

// New builds a Dispatcher. The resulting http.Client carries the fixed
// DefaultTimeout.
func New(cfg Config) *Dispatcher {
	base := cfg.Base
	if base == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = &tls.Config{
			RootCAs:    cfg.RootCAs,
			MinVersion: tls.VersionTLS12,
		}
		base = t
	}

	rt := base
	for _, mw := range cfg.Middleware {
		rt = mw(rt)
	}
	if cfg.Limiter != nil {
		rt = &limitTransport{base: rt, limiter: cfg.Limiter}
	}

	hc := &http.Client{Transport: rt, Timeout: DefaultTimeout}
	rc := resty.NewWithClient(hc).SetLogger(zerologAdapter{})
	return &Dispatcher{rc: rc}
}

// HTTPClient returns the underlying client so that other libraries (the
// oauth2 token fetch) share timeout, trust anchor, limiter and logging.
func (d *Dispatcher) HTTPClient() *http.Client {
	return d.rc.GetClient()
}

// Do performs req and returns the response body as text.
func (d *Dispatcher) Do(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.NewNetworkError(req.Op, err)
	}

	r := d.rc.R().SetContext(ctx)
	for k, v := range req.Header {
		r.SetHeader(k, v)
	}
	if req.BasicAuth != nil {
		r.SetBasicAuth(req.BasicAuth.Username, req.BasicAuth.Password)
	}
	if len(req.Form) > 0 {
		r.SetFormDataFromValues(req.Form)
	}

	log.Debug().Str("op", req.Op).Str("method", req.Method).Str("host", hostOf(req.URL)).Msg("dispatching request")

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return "", errors.NewNetworkError(req.Op, err)
	}

	body := resp.String()
	if resp.StatusCode() != http.StatusOK {
		log.Debug().Str("op", req.Op).Int("status_code", resp.StatusCode()).Msg("request rejected")
		return "", errors.NewHTTPError(req.Op, resp.StatusCode(), body)
	}
	return body, nil
}

// hostOf keeps tokens and query strings out of logs.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

// zerologAdapter routes resty's internal messages to the global zerolog logger.
type zerologAdapter struct{}

func (zerologAdapter) Errorf(format string, v ...interface{}) {
	log.Error().Msg(fmt.Sprintf(format, v...))
}

func (zerologAdapter) Warnf(format string, v ...interface{}) {
	log.Warn().Msg(fmt.Sprintf(format, v...))
}

func (zerologAdapter) Debugf(format string, v ...interface{}) {
	log.Debug().Msg(fmt.Sprintf(format, v...))
}
