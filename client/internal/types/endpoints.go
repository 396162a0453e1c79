package types

// OAuthEndpoint enumerates the authorization-server endpoints the client
// knows how to call. The set is closed; see ParseOAuthEndpoint.
type OAuthEndpoint int

const (
	OAuthAuthorize OAuthEndpoint = iota
	OAuthToken
	OAuthUserInfo
	OAuthCheckToken
)

var oauthPaths = map[OAuthEndpoint]string{
	OAuthAuthorize:  "/oauth/authorize",
	OAuthToken:      "/oauth/token",
	OAuthUserInfo:   "/oauth/userinfo",
	OAuthCheckToken: "/oauth/check_token",
}

// Data keys recognised by OAuth endpoints.
const (
	KeyCode        = "code"
	KeyAccessToken = "accessToken"
)

// ParseOAuthEndpoint maps a path such as "/oauth/token" to its endpoint.
func ParseOAuthEndpoint(path string) (OAuthEndpoint, bool) {
	for e, p := range oauthPaths {
		if p == path {
			return e, true
		}
	}
	return 0, false
}

// Path returns the endpoint path relative to the OAuth host.
func (e OAuthEndpoint) Path() string { return oauthPaths[e] }

// String implements fmt.Stringer.
func (e OAuthEndpoint) String() string { return oauthPaths[e] }

// RequiredKey is the data key the endpoint cannot be called without, or ""
// when the endpoint has no mandatory input.
func (e OAuthEndpoint) RequiredKey() string {
	switch e {
	case OAuthToken:
		return KeyCode
	case OAuthUserInfo, OAuthCheckToken:
		return KeyAccessToken
	default:
		return ""
	}
}

// Op is the label used for logs, metrics and error context.
func (e OAuthEndpoint) Op() string {
	switch e {
	case OAuthAuthorize:
		return "oauth_authorize"
	case OAuthToken:
		return "oauth_token"
	case OAuthUserInfo:
		return "oauth_userinfo"
	case OAuthCheckToken:
		return "oauth_check_token"
	default:
		return "oauth_unknown"
	}
}
