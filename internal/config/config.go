// Package config provides environment-based configuration for concierge.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultPort is the default HTTP port.
	DefaultPort = 8080

	// DefaultMaxConns is the default database connection pool size.
	DefaultMaxConns = 10
)

// Config holds the application configuration.
type Config struct {
	// HTTP settings
	Port int

	// Database settings
	DatabaseURL string
	MaxConns    int

	// LLM settings
	OpenRouterAPIKey string
	Model            string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first, without overriding variables already set. The
// OpenRouter key and database URL have no defaults; a missing value is a
// startup failure rather than a runtime surprise on the first chat request.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}

	cfg := &Config{
		Port:             DefaultPort,
		MaxConns:         DefaultMaxConns,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		Model:            os.Getenv("CONCIERGE_MODEL"),
	}

	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	if port := os.Getenv("CONCIERGE_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid CONCIERGE_PORT %q", port)
		}
		cfg.Port = p
	}

	if maxConns := os.Getenv("CONCIERGE_MAX_CONNS"); maxConns != "" {
		n, err := strconv.Atoi(maxConns)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid CONCIERGE_MAX_CONNS %q", maxConns)
		}
		cfg.MaxConns = n
	}

	return cfg, nil
}
