package session

import (
	"fmt"
	"time"
)

// Config controls the two session lifetimes.
//
// RollingTTL is the idle window: every validated read pushes expiry out by
// this much. MaxLifetime is the hard ceiling measured from creation; no
// amount of activity extends a session past it.
type Config struct {
	RollingTTL  time.Duration `env:"SESSION_ROLLING_TTL" envDefault:"1h"`
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24h"`
}

// DefaultConfig returns the production defaults: one hour rolling, one day hard cap.
func DefaultConfig() Config {
	return Config{
		RollingTTL:  time.Hour,
		MaxLifetime: 24 * time.Hour,
	}
}

// Validate rejects configurations where the lifetimes cannot both hold.
func (c Config) Validate() error {
	if c.RollingTTL <= 0 {
		return fmt.Errorf("%w: rolling TTL must be positive, got %s", ErrInvalidConfig, c.RollingTTL)
	}
	if c.MaxLifetime < c.RollingTTL {
		return fmt.Errorf("%w: max lifetime %s is shorter than rolling TTL %s", ErrInvalidConfig, c.MaxLifetime, c.RollingTTL)
	}
	return nil
}
