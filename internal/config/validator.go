package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// MinProductionSecretLength is the shortest JWT secret accepted in production.
const MinProductionSecretLength = 32

// Validate ensures required values are present and production secrets are not defaults.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}

	switch c.ReactionsBackend {
	case "memory":
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when REACTIONS_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown REACTIONS_BACKEND %q (want memory or redis)", c.ReactionsBackend)
	}

	if c.IsProduction() {
		if err := ValidateEnv([]string{"JWT_SECRET"}); err != nil {
			return err
		}
		if c.JWTSecret == DefaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < MinProductionSecretLength {
			return fmt.Errorf("JWT_SECRET must be at least %d characters in production", MinProductionSecretLength)
		}
	}
	return nil
}

// ValidateEnv validates that all required environment variables are set
func ValidateEnv(requiredVars []string) error {
	var missing []string

	for _, varName := range requiredVars {
		if os.Getenv(varName) == "" {
			missing = append(missing, varName)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}
