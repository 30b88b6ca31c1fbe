package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backend selectors for Config.Store.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config contains the runtime configuration for the server.
type Config struct {
	// DatabaseURL may be empty. The server still starts and serves tracking
	// lookups; contact submissions are answered with 503 until it is set.
	DatabaseURL string

	// Store selects the submission store backend: "postgres" (default) or
	// "memory" for database-less environments.
	Store string

	Port        string
	Env         string // "development", "production", ...
	FrontendURL string

	// SubmitTimeout bounds how long a single store insert is waited on.
	SubmitTimeout time.Duration
}

// Production reports whether the server runs in production mode. Debug error
// strings are withheld from HTTP responses when it returns true.
func (c Config) Production() bool {
	return c.Env == "production"
}

// StoreConfigured reports whether a submission store backend is available at
// all. This is a local configuration check, not a connectivity probe.
func (c Config) StoreConfigured() bool {
	return c.Store == StoreMemory || c.DatabaseURL != ""
}

// Load reads configuration from environment variables, applying defaults for
// everything except DATABASE_URL, which is deliberately allowed to be absent.
func Load() Config {
	cfg := Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Store:       strings.TrimSpace(os.Getenv("STORE")),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("APP_ENV"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	if cfg.Store == "" {
		cfg.Store = StorePostgres
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "*"
	}

	cfg.SubmitTimeout = 5 * time.Second
	if raw := os.Getenv("SUBMIT_TIMEOUT_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.SubmitTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}
