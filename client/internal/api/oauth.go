package api

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/dalaenir/blizzard-api/client/internal/errors"
	"github.com/dalaenir/blizzard-api/client/internal/transport"
	"github.com/dalaenir/blizzard-api/client/internal/types"
)

// AuthorizeURL builds the user-facing authorization URL. Caller extras are
// encoded first; client_id, response_type and redirect_uri always win.
// No network call is made.
func AuthorizeURL(oauthHost string, creds Credentials, extra map[string]string) string {
	q := url.Values{}
	for k, v := range extra {
		q.Set(k, v)
	}
	q.Set("client_id", creds.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", creds.RedirectURI)
	return oauthHost + types.OAuthAuthorize.Path() + "?" + q.Encode()
}

// ExchangeCode posts an authorization code to the token endpoint. data must
// hold the "code" key; every other key is forwarded as a form field.
func ExchangeCode(ctx context.Context, d Doer, oauthHost string, creds Credentials, data map[string]string) (string, error) {
	form := url.Values{}
	for k, v := range data {
		form.Set(k, v)
	}
	form.Set("redirect_uri", creds.RedirectURI)
	form.Set("grant_type", "authorization_code")

	return d.Do(ctx, transport.Request{
		Op:        types.OAuthToken.Op(),
		Method:    http.MethodPost,
		URL:       oauthHost + types.OAuthToken.Path(),
		BasicAuth: &transport.BasicAuth{Username: creds.ClientID, Password: creds.ClientSecret},
		Form:      form,
	})
}

// UserInfo fetches the account behind a user access token.
func UserInfo(ctx context.Context, d Doer, oauthHost, accessToken string) (string, error) {
	return d.Do(ctx, transport.Request{
		Op:     types.OAuthUserInfo.Op(),
		Method: http.MethodGet,
		URL:    oauthHost + types.OAuthUserInfo.Path(),
		Header: map[string]string{"Authorization": "Bearer " + accessToken},
	})
}

// CheckToken asks the authorization server to introspect accessToken.
func CheckToken(ctx context.Context, d Doer, oauthHost, accessToken string) (string, error) {
	return d.Do(ctx, transport.Request{
		Op:     types.OAuthCheckToken.Op(),
		Method: http.MethodPost,
		URL:    oauthHost + types.OAuthCheckToken.Path(),
		Form:   url.Values{"token": {accessToken}},
	})
}

// ClientCredentialsToken runs the client-credentials grant against
// oauthHost/oauth/token and returns the access token. hc carries the
// dispatcher's timeout and trust anchor. Nothing is cached.
func ClientCredentialsToken(ctx context.Context, hc *http.Client, oauthHost string, creds Credentials) (string, error) {
	const op = "client_credentials"

	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     oauthHost + types.OAuthToken.Path(),
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	guarded := *hc
	guarded.Transport = statusGuard{base: hc.Transport, op: op}

	tok, err := cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, &guarded))
	if err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) {
			return "", apiErr
		}
		var re *oauth2.RetrieveError
		if stderrors.As(err, &re) && re.Response != nil {
			return "", errors.ClassifyHTTPError(op, re.Response.StatusCode, string(re.Body), err)
		}
		return "", errors.NewNetworkError(op, err)
	}
	return tok.AccessToken, nil
}

// statusGuard turns any token response other than 200 into an *errors.APIError
// before oauth2 parses it; oauth2 alone accepts every 2xx.
type statusGuard struct {
	base http.RoundTripper
	op   string
}

func (g statusGuard) RoundTrip(req *http.Request) (*http.Response, error) {
	base := g.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	return nil, errors.NewHTTPError(g.op, resp.StatusCode, string(body))
}
