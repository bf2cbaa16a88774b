package gateway

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds platform connection configuration.
type Config struct {
	// BaseURL is the platform API root, e.g. "https://api.skilldrill.dev".
	BaseURL string

	// Token is the bearer credential. Empty means anonymous requests,
	// which the platform rejects with 401 for everything but health.
	Token string

	// Timeout is the maximum duration for a single platform request.
	// Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.skilldrill.dev",
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("SKILLDRILL_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("SKILLDRILL_API_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("SKILLDRILL_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the config can produce a working client.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("SKILLDRILL_API_URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("parse SKILLDRILL_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("SKILLDRILL_API_URL must be http or https, got %q", u.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

func (c Config) baseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}
