package sessiontoken

import "time"

// Config holds session token settings.
type Config struct {
	// TTL is the lifetime of a freshly minted token.
	TTL time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`

	// CleanupInterval is the cadence of the background sweep
	// (0 disables it; expiry is still enforced lazily on Validate).
	CleanupInterval time.Duration `env:"SESSION_TOKEN_CLEANUP_INTERVAL" envDefault:"1h"`
}

// DefaultConfig returns the default token settings: 24 hour TTL, hourly sweep.
func DefaultConfig() Config {
	return Config{
		TTL:             24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// NewFromConfig creates a Manager from the provided Config. Additional
// options are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
