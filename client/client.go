// Package client is a Go SDK for the Blizzard Battle.net web API: the
// client-credentials and authorization-code OAuth flows plus templated REST
// calls against the regional API hosts.
package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dalaenir/blizzard-api/client/internal/api"
	"github.com/dalaenir/blizzard-api/client/internal/transport"
	"github.com/dalaenir/blizzard-api/client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the Battle.net REST and OAuth hosts of one region.
// Every stored field has passed its validator.
type Client struct {
	mu           sync.RWMutex
	clientID     string
	clientSecret string
	region       Region
	locale       Locale
	redirectURI  string

	hosts    func(Region) Hosts // host table lookup; replaced in tests
	tcfg     transport.Config   // assembled by options
	debug    bool
	dispatch *transport.Dispatcher
}

// New constructs a Client for the given application credentials and region.
// Locale and redirect URI are optional and set through WithLocale and
// WithRedirectURI. Invalid input yields a *ConfigurationError.
func New(clientID, clientSecret, region string, opts ...Option) (*Client, error) {
	c := &Client{hosts: tableHosts}

	if err := c.SetClientID(clientID); err != nil {
		return nil, err
	}
	if err := c.SetClientSecret(clientSecret); err != nil {
		return nil, err
	}
	if err := c.SetRegion(region); err != nil {
		return nil, err
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.debug {
		c.tcfg.Middleware = append(c.tcfg.Middleware, func(next http.RoundTripper) http.RoundTripper {
			return &debugTransport{base: next}
		})
	}
	c.dispatch = transport.New(c.tcfg)
	return c, nil
}

func tableHosts(r Region) Hosts {
	h, _ := types.LookupHosts(r)
	return h
}

// --------------------------------------------------------------------
// Configuration setters and accessors
// --------------------------------------------------------------------

// SetClientID replaces the application client id (32 lowercase letters or digits).
func (c *Client) SetClientID(clientID string) error {
	if err := types.ValidateClientID(clientID); err != nil {
		return err
	}
	c.mu.Lock()
	c.clientID = clientID
	c.mu.Unlock()
	return nil
}

// SetClientSecret replaces the application client secret (32 letters or digits).
func (c *Client) SetClientSecret(clientSecret string) error {
	if err := types.ValidateClientSecret(clientSecret); err != nil {
		return err
	}
	c.mu.Lock()
	c.clientSecret = clientSecret
	c.mu.Unlock()
	return nil
}

// SetRegion switches the client to another region: us, eu, kr, tw or cn.
func (c *Client) SetRegion(region string) error {
	if err := types.ValidateRegion(region); err != nil {
		return err
	}
	c.mu.Lock()
	c.region = Region(region)
	c.mu.Unlock()
	return nil
}

// SetLocale sets the locale sent with every REST call.
func (c *Client) SetLocale(locale string) error {
	if err := types.ValidateLocale(locale); err != nil {
		return err
	}
	c.mu.Lock()
	c.locale = Locale(locale)
	c.mu.Unlock()
	return nil
}

// SetRedirectURI sets the redirect URI used by the authorization-code flow.
func (c *Client) SetRedirectURI(redirectURI string) error {
	if err := types.ValidateRedirectURI(redirectURI); err != nil {
		return err
	}
	c.mu.Lock()
	c.redirectURI = redirectURI
	c.mu.Unlock()
	return nil
}

// ClientID returns the configured client id.
func (c *Client) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

// Region returns the configured region.
func (c *Client) Region() Region {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.region
}

// Locale returns the configured locale, or "" when unset.
func (c *Client) Locale() Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// RedirectURI returns the configured redirect URI, or "" when unset.
func (c *Client) RedirectURI() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redirectURI
}

// snapshot is a consistent copy of the configuration for one call.
type snapshot struct {
	creds  api.Credentials
	region Region
	locale Locale
	hosts  Hosts
}

func (c *Client) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot{
		creds: api.Credentials{
			ClientID:     c.clientID,
			ClientSecret: c.clientSecret,
			RedirectURI:  c.redirectURI,
		},
		region: c.region,
		locale: c.locale,
		hosts:  c.hosts(c.region),
	}
}

// --------------------------------------------------------------------
// REST operations - delegated to internal/api
// --------------------------------------------------------------------

// BuildAPIURL resolves endpoint and req into the URL API would request,
// without touching the network.
func (c *Client) BuildAPIURL(endpoint string, req *APIRequest) string {
	s := c.snapshot()
	return api.BuildAPIURL(s.hosts.API, s.region, s.locale, endpoint, req)
}

// API calls a REST endpoint such as "/data/wow/item/:id" and returns the raw
// body. Each call first fetches a fresh client-credentials token, so it costs
// two round trips. Non-200 responses yield a *APIError.
func (c *Client) API(ctx context.Context, endpoint string, req *APIRequest) (string, error) {
	s := c.snapshot()
	resolved := api.BuildAPIURL(s.hosts.API, s.region, s.locale, endpoint, req)

	log.Debug().Str("endpoint", endpoint).Str("region", string(s.region)).Msg("calling REST endpoint")

	token, err := c.clientAccessToken(ctx, s)
	if err != nil {
		observeCall("api", err)
		return "", err
	}

	body, err := api.Get(ctx, c.dispatch, resolved, token)
	observeCall("api", err)
	return body, err
}

// clientAccessToken runs the client-credentials grant. Tokens are not reused
// across calls.
func (c *Client) clientAccessToken(ctx context.Context, s snapshot) (string, error) {
	token, err := api.ClientCredentialsToken(ctx, c.dispatch.HTTPClient(), s.hosts.OAuth, s.creds)
	observeCall("client_credentials", err)
	if err != nil {
		log.Debug().Err(err).Str("region", string(s.region)).Msg("client credentials grant failed")
	}
	return token, err
}
