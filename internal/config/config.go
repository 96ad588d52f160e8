package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort          = "8080"
	defaultJWTSecret     = "supersecretkey_change_in_production_minimum_32_chars"
	defaultJWTAlgorithm  = "HS256"
	defaultExpireMinutes = 1440 // 24 hours

	// MinSecretLength is the minimum signing secret length for production use.
	MinSecretLength = 32
)

// Config is built once at startup and passed by reference; nothing reads
// the environment after Load returns.
type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAlgorithm     string
	JWTExpireMinutes int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", defaultPort),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnv("JWT_SECRET_KEY", defaultJWTSecret),
		JWTAlgorithm:     getEnv("JWT_ALGORITHM", defaultJWTAlgorithm),
		JWTExpireMinutes: defaultExpireMinutes,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	if raw := os.Getenv("JWT_EXPIRE_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRE_MINUTES %q: %w", raw, err)
		}
		cfg.JWTExpireMinutes = minutes
	}

	return cfg, nil
}

func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.JWTExpireMinutes) * time.Minute
}

// SecretTooShort reports whether the signing secret is below the
// production minimum.
func (c *Config) SecretTooShort() bool {
	return len(c.JWTSecret) < MinSecretLength
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
