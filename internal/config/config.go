// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// DBPath is the SQLite database file location.
	DBPath string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration

	// RedisAddr enables the Redis simulation cache when non-empty;
	// otherwise an in-memory cache is used.
	RedisAddr string

	// RateLimit is the allowed requests per client per minute.
	RateLimit int
}

// Load reads configuration from the environment, applying defaults.
// JWT_SECRET is the only required variable.
func Load() (Config, error) {
	cfg := Config{
		Port:      8080,
		DBPath:    getEnv("DB_PATH", "./data/debts.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  24 * time.Hour,
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RateLimit: 60,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if limit := os.Getenv("RATE_LIMIT"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT %q: %w", limit, err)
		}
		cfg.RateLimit = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
