package client

import (
	"context"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuth_AuthorizeBuildsURLWithoutNetwork(t *testing.T) {
	c, err := New(testClientID, testClientSecret, "eu", WithRedirectURI("https://localhost:8443/callback"), WithTransport(noNetwork(t)))
	require.NoError(t, err)

	raw, err := c.OAuth(context.Background(), "/oauth/authorize", map[string]string{"scope": "openid"})
	require.NoError(t, err)

	assert.Contains(t, raw, "client_id=")
	assert.Contains(t, raw, "response_type=code")
	assert.Contains(t, raw, "redirect_uri=")
	assert.Contains(t, raw, "scope=openid")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "eu.battle.net", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)
	assert.Equal(t, testClientID, u.Query().Get("client_id"))
	assert.Equal(t, "https://localhost:8443/callback", u.Query().Get("redirect_uri"))

	assert.Equal(t, raw, c.AuthorizeURL(map[string]string{"scope": "openid"}))
}

func TestOAuth_TokenRequiresCode(t *testing.T) {
	c, err := New(testClientID, testClientSecret, "us", WithTransport(noNetwork(t)))
	require.NoError(t, err)

	before := testutil.ToFloat64(callsTotal.WithLabelValues("oauth_token", "config_error"))
	_, err = c.OAuth(context.Background(), "/oauth/token", map[string]string{})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, before+1, testutil.ToFloat64(callsTotal.WithLabelValues("oauth_token", "config_error")))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "code", cfgErr.Field)

	_, err = c.ExchangeCode(context.Background(), "", nil)
	assert.True(t, IsConfigurationError(err))
}

func TestOAuth_AccessTokenRequired(t *testing.T) {
	c, err := New(testClientID, testClientSecret, "us", WithTransport(noNetwork(t)))
	require.NoError(t, err)

	for _, ep := range []string{"/oauth/userinfo", "/oauth/check_token"} {
		_, err := c.OAuth(context.Background(), ep, nil)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr, ep)
		assert.Equal(t, "accessToken", cfgErr.Field)
	}
}

func TestOAuth_UnknownEndpoint(t *testing.T) {
	c, err := New(testClientID, testClientSecret, "us", WithTransport(noNetwork(t)))
	require.NoError(t, err)

	_, err = c.OAuth(context.Background(), "/oauth/revoke", map[string]string{"accessToken": "x"})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "endpoint", cfgErr.Field)
	assert.Contains(t, err.Error(), "endpoint not valid")
}

func TestOAuth_TokenExchange(t *testing.T) {
	f := newFakeBattleNet(t)
	c := newTestClient(t, f, "us", WithRedirectURI("https://localhost/cb"))

	body, err := c.OAuth(context.Background(), "/oauth/token", map[string]string{"code": "abc123"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"user-token","code":"abc123","redirect_uri":"https://localhost/cb"}`, body)

	body, err = c.ExchangeCode(context.Background(), "xyz", map[string]string{"scope": "openid"})
	require.NoError(t, err)
	assert.Contains(t, body, `"code":"xyz"`)
}

func TestOAuth_UserInfoAndCheckToken(t *testing.T) {
	f := newFakeBattleNet(t)
	c := newTestClient(t, f, "eu")

	body, err := c.OAuth(context.Background(), "/oauth/userinfo", OAuthData{"accessToken": "user-tok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":"Bearer user-tok"}`, body)

	body, err = c.CheckToken(context.Background(), "user-tok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"user-tok"}`, body)

	body, err = c.UserInfo(context.Background(), "other")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":"Bearer other"}`, body)
}
