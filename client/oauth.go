package client

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/dalaenir/blizzard-api/client/internal/api"
	"github.com/dalaenir/blizzard-api/client/internal/errors"
	"github.com/dalaenir/blizzard-api/client/internal/types"
)

// --------------------------------------------------------------------
// OAuth operations - closed endpoint set, delegated to internal/api
// --------------------------------------------------------------------

// OAuth calls one of the authorization-server endpoints by path:
//
//	/oauth/authorize    returns the authorization URL, no network call
//	/oauth/token        requires data["code"]
//	/oauth/userinfo     requires data["accessToken"]
//	/oauth/check_token  requires data["accessToken"]
//
// Any other path, or a missing required key, yields a *ConfigurationError
// before anything is sent.
func (c *Client) OAuth(ctx context.Context, endpoint string, data OAuthData) (string, error) {
	e, ok := types.ParseOAuthEndpoint(endpoint)
	if !ok {
		err := errors.NewConfigurationError("endpoint", "endpoint not valid")
		observeCall("oauth", err)
		return "", err
	}
	return c.callOAuth(ctx, e, data)
}

// AuthorizeURL returns the URL the user must visit to grant access. extra
// carries parameters such as "scope" and "state".
func (c *Client) AuthorizeURL(extra map[string]string) string {
	body, _ := c.callOAuth(context.Background(), OAuthAuthorize, extra)
	return body
}

// ExchangeCode trades an authorization code for a user token and returns the
// raw token response. extra is forwarded as additional form fields.
func (c *Client) ExchangeCode(ctx context.Context, code string, extra map[string]string) (string, error) {
	data := make(OAuthData, len(extra)+1)
	for k, v := range extra {
		data[k] = v
	}
	data[types.KeyCode] = code
	return c.callOAuth(ctx, OAuthToken, data)
}

// UserInfo returns the account information behind a user access token.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (string, error) {
	return c.callOAuth(ctx, OAuthUserInfo, OAuthData{types.KeyAccessToken: accessToken})
}

// CheckToken returns the authorization server's view of an access token.
func (c *Client) CheckToken(ctx context.Context, accessToken string) (string, error) {
	return c.callOAuth(ctx, OAuthCheckToken, OAuthData{types.KeyAccessToken: accessToken})
}

func (c *Client) callOAuth(ctx context.Context, e OAuthEndpoint, data OAuthData) (string, error) {
	if key := e.RequiredKey(); key != "" && data[key] == "" {
		err := errors.NewConfigurationError(key, "key is required")
		observeCall(e.Op(), err)
		return "", err
	}

	s := c.snapshot()
	log.Debug().Str("endpoint", e.Path()).Str("region", string(s.region)).Msg("calling OAuth endpoint")

	var (
		body string
		err  error
	)
	switch e {
	case OAuthAuthorize:
		body = api.AuthorizeURL(s.hosts.OAuth, s.creds, data)
	case OAuthToken:
		body, err = api.ExchangeCode(ctx, c.dispatch, s.hosts.OAuth, s.creds, data)
	case OAuthUserInfo:
		body, err = api.UserInfo(ctx, c.dispatch, s.hosts.OAuth, data[types.KeyAccessToken])
	case OAuthCheckToken:
		body, err = api.CheckToken(ctx, c.dispatch, s.hosts.OAuth, data[types.KeyAccessToken])
	default:
		err = errors.NewConfigurationError("endpoint", "endpoint not valid")
	}
	observeCall(e.Op(), err)
	return body, err
}
