package api

import (
	"context"
	"net/http"

	"github.com/dalaenir/blizzard-api/client/internal/transport"
)

// Get calls a resolved REST URL with a bearer token.
func Get(ctx context.Context, d Doer, resolvedURL, accessToken string) (string, error) {
	return d.Do(ctx, transport.Request{
		Op:     "api",
		Method: http.MethodGet,
		URL:    resolvedURL,
		Header: map[string]string{"Authorization": "Bearer " + accessToken},
	})
}
