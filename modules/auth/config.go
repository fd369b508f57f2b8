package auth

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Config holds everything the auth module needs from the environment.
type Config struct {
	// Secret signs session tokens. Rotating it invalidates every session.
	Secret string `env:"AUTH_SECRET,required"`

	// TokenSalt namespaces the signing key so the same secret can be shared
	// with other signers without cross-purpose token replay.
	TokenSalt string `env:"AUTH_TOKEN_SALT" envDefault:"auth.sessions"`

	Session session.Config
}

// LoadConfig reads optional dotenv files and parses the environment.
// A missing .env file is not an error; required variables still are.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToParseConfig, err)
	}

	return cfg, nil
}
