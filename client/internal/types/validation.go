package types

import (
	"net/url"
	"regexp"

	"github.com/dalaenir/blizzard-api/client/internal/errors"
)

var (
	// clientIDRegex: 32 characters, lowercase letters and digits only
	clientIDRegex = regexp.MustCompile(`^[a-z0-9]{32}$`)

	// clientSecretRegex: 32 characters, ASCII letters and digits
	clientSecretRegex = regexp.MustCompile(`^[a-zA-Z0-9]{32}$`)
)

// ValidateClientID checks the Battle.net application client id format.
func ValidateClientID(id string) error {
	if !clientIDRegex.MatchString(id) {
		return errors.NewConfigurationError("clientId", "expected 32 lowercase letters or digits")
	}
	return nil
}

// ValidateClientSecret checks the Battle.net application client secret format.
func ValidateClientSecret(secret string) error {
	if !clientSecretRegex.MatchString(secret) {
		return errors.NewConfigurationError("clientSecret", "expected 32 letters or digits")
	}
	return nil
}

// ValidateRegion checks that region is a key of the host table.
func ValidateRegion(region string) error {
	if _, ok := LookupHosts(Region(region)); !ok {
		return errors.NewConfigurationError("region", "expected one of us, eu, kr, tw, cn")
	}
	return nil
}

// ValidateLocale checks that locale is a supported locale tag.
func ValidateLocale(locale string) error {
	if !IsLocale(Locale(locale)) {
		return errors.NewConfigurationError("locale", "expected a supported locale such as en_US or fr_FR")
	}
	return nil
}

// ValidateRedirectURI accepts absolute URLs with a scheme and a host.
func ValidateRedirectURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.NewConfigurationError("redirectUri", "expected an absolute URL such as https://example.com/callback")
	}
	return nil
}
