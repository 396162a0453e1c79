package types

// ------------------------------
// Response Types
// ------------------------------

// TokenResponse is the JSON document returned by /oauth/token. The SDK only
// reads AccessToken itself; the struct is provided for callers that want to
// decode the raw body returned by authorization-code exchanges.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
	Sub         string `json:"sub,omitempty"`
	IDToken     string `json:"id_token,omitempty"`
}
