package api

import (
	"context"

	"github.com/dalaenir/blizzard-api/client/internal/transport"
)

// Doer executes a fully built request and returns the body as text.
// *transport.Dispatcher is the production implementation.
type Doer interface {
	Do(ctx context.Context, req transport.Request) (string, error)
}

// Credentials identifies the registered Battle.net application.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}
