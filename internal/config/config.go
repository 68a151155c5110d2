// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
package config

// Default leaderboard limits; the HTTP layer clamps client-supplied limits
// into [1, MaxLimit] so the core stays limit-agnostic.
const (
	defaultLimit = 5
	maxLimit     = 10
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultLimit is the leaderboard size returned when the client does
	// not pass ?limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the client-supplied ?limit.
	MaxLimit int `koanf:"max_limit"`

	// UsernameSeed, when non-zero, seeds the username generator. Zero means
	// seed from the clock. Useful for reproducible demos.
	UsernameSeed int64 `koanf:"username_seed"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":8080",
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
	}
}
