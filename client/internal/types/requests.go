package types

// ------------------------------
// Request Types
// ------------------------------

// APIRequest carries the optional data of a REST call. A nil *APIRequest is
// equivalent to an empty one.
type APIRequest struct {
	// Replacement maps placeholder names in the endpoint template to the
	// literal values substituted for them.
	Replacement map[string]string
	// Namespace is sent as namespace=<Namespace>-<region> when non-empty.
	Namespace string
	// Search holds pre-encoded key=value fragments placed verbatim at the
	// start of the query string, in order.
	Search []string
}

// OAuthData holds endpoint-specific fields for an OAuth call. Keys other than
// "code" and "accessToken" are forwarded as extra parameters where the
// endpoint accepts them.
type OAuthData map[string]string
