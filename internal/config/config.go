// Package config loads bnetctl settings from BNET_* environment variables.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dalaenir/blizzard-api/client"
)

// Config holds application configuration.
// Environment variables are parsed with the BNET_ prefix,
// e.g. BNET_CLIENT_ID, BNET_REGION, BNET_RATE_LIMIT.
type Config struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	Region       string `envconfig:"REGION" default:"us"`
	Locale       string `envconfig:"LOCALE"`
	RedirectURI  string `envconfig:"REDIRECT_URI"`

	// PEM bundle pinning the API trust anchor; empty means system roots.
	CAFile string `envconfig:"CA_FILE"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    Switch `envconfig:"DEBUG" default:"false"`

	// Client-side throttle; 0 disables it.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"0"`
	RateBurst int     `envconfig:"RATE_BURST" default:"1"`

	// How long `bnetctl login` waits for the browser callback.
	LoginTimeout time.Duration `envconfig:"LOGIN_TIMEOUT" default:"2m"`
}

const defaultRegion = "us"

// Switch is a boolean setting for which an exported but empty variable means
// false.
type Switch bool

// Decode implements envconfig.Decoder.
func (s *Switch) Decode(value string) error {
	if value == "" {
		*s = false
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*s = Switch(b)
	return nil
}

// Load parses the BNET_* environment. An empty BNET_REGION counts as unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("BNET", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	return &cfg, nil
}

// Log writes the effective configuration at debug level. The client secret
// is reported only as present or absent.
func (c *Config) Log() {
	log.Debug().
		Str("client_id", c.ClientID).
		Bool("client_secret_present", c.ClientSecret != "").
		Str("region", c.Region).
		Str("locale", c.Locale).
		Str("redirect_uri", c.RedirectURI).
		Str("ca_file", c.CAFile).
		Bool("debug", bool(c.Debug)).
		Float64("rate_limit", c.RateLimit).
		Dur("login_timeout", c.LoginTimeout).
		Msg("Configuration loaded")
}

// ClientOptions translates the optional settings into SDK options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithLocale(c.Locale),
		client.WithRedirectURI(c.RedirectURI),
		client.WithDebugLogging(bool(c.Debug)),
	}
	if c.CAFile != "" {
		opts = append(opts, client.WithRootCAFile(c.CAFile))
	}
	if c.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(c.RateLimit, c.RateBurst))
	}
	return opts
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
