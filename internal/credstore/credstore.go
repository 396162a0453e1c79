// Package credstore keeps Battle.net client secrets in the OS keyring so they
// do not have to live in shell history or environment files.
package credstore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Service is the keyring service name entries are filed under.
const Service = "bnetctl"

// ErrNoSecret is returned when no secret is stored for a client id.
var ErrNoSecret = errors.New("no client secret stored in keyring")

// Save stores secret for clientID, replacing any previous value.
func Save(clientID, secret string) error {
	if clientID == "" {
		return fmt.Errorf("client id is required")
	}
	if err := keyring.Set(Service, clientID, secret); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

// Load returns the stored secret for clientID.
func Load(clientID string) (string, error) {
	secret, err := keyring.Get(Service, clientID)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoSecret
	}
	if err != nil {
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return secret, nil
}

// Delete removes the stored secret. Deleting a missing entry is not an error.
func Delete(clientID string) error {
	err := keyring.Delete(Service, clientID)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
