package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port         int      `env:"PORT"          envDefault:"8081"`
	DatabaseType string   `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL  string   `env:"DATABASE_URL"  envDefault:"../database/portfolio.db"`
	FrontendURLs []string `env:"FRONTEND_URLS" envSeparator:","`

	CacheTTL             time.Duration `env:"CACHE_TTL"              envDefault:"5m"`
	CacheCleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"10m"`

	SeedDefaultContent bool `env:"SEED_DEFAULT_CONTENT" envDefault:"true"`

	RevalidationURL    string `env:"NEXT_REVALIDATION_URL"`
	RevalidationSecret string `env:"REVALIDATION_SECRET"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Info("No .env file found")
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DatabaseType {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DATABASE_TYPE must be sqlite or postgres, got %q", c.DatabaseType)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.RevalidationURL != "" && c.RevalidationSecret == "" {
		return errors.New("REVALIDATION_SECRET required when NEXT_REVALIDATION_URL is set")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto slog. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
