// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a .env file, an optional YAML file and environment variables on top.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"time"

	"github.com/okian/claimtrainer/internal/domain/progress"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr" validate:"required"`

	// BackendAPIURL is the claims backend; claims are read from {url}/db/claims.
	// Empty serves the built-in sample claims.
	BackendAPIURL string `koanf:"backend_api_url" validate:"omitempty,http_url"`

	// ClaimsFetchTimeoutMS bounds the single claims fetch. 0 disables the timeout.
	ClaimsFetchTimeoutMS int `koanf:"claims_fetch_timeout_ms" validate:"gte=0"`

	// MaxSessions caps quiz sessions held in memory.
	MaxSessions int `koanf:"max_sessions" validate:"gt=0"`

	// SortAllRows makes an active sort ignore the list filter, as the legacy browser did.
	SortAllRows bool `koanf:"sort_all_rows"`

	// Scenarios is the dashboard training queue.
	Scenarios []progress.Scenario `koanf:"scenarios" validate:"dive"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		BackendAPIURL:        "",
		ClaimsFetchTimeoutMS: 0,
		MaxSessions:          10_000,
		SortAllRows:          false,
		Scenarios:            progress.DefaultScenarios(),
	}
}

// ClaimsFetchTimeout returns the fetch timeout as a duration.
func (c *Config) ClaimsFetchTimeout() time.Duration {
	return time.Duration(c.ClaimsFetchTimeoutMS) * time.Millisecond
}
