// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all Warband data (~/.warband or XDG data home)
	BaseDir string

	// External catalog endpoints
	Catalog CatalogConfig

	// Remote roster backend settings
	Remote RemoteConfig
}

// CatalogConfig holds external catalog fetch settings.
type CatalogConfig struct {
	// PrimaryURL is the paginated listing endpoint.
	PrimaryURL string `env:"WARBAND_CATALOG_URL"`
	// MirrorURL is the secondary endpoint tried when the primary fails.
	MirrorURL string `env:"WARBAND_CATALOG_MIRROR_URL"`
	// RateLimit is requests per minute against either endpoint.
	RateLimit int `env:"WARBAND_CATALOG_RATE_LIMIT"`
	// PageSize is the number of records requested per page.
	PageSize int
}

// RemoteConfig holds credentials for the remote record store.
// When URL or Key is empty the roster commands fall back to the local
// sqlite-backed record store.
type RemoteConfig struct {
	URL string `env:"WARBAND_REMOTE_URL"`
	Key string `env:"WARBAND_REMOTE_KEY"`
}

// Enabled reports whether remote credentials are configured.
func (r RemoteConfig) Enabled() bool {
	return r.URL != "" && r.Key != ""
}

// Load reads configuration from defaults and environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := env.Parse(&cfg.Catalog); err != nil {
		return nil, fmt.Errorf("parse catalog env: %w", err)
	}
	if err := env.Parse(&cfg.Remote); err != nil {
		return nil, fmt.Errorf("parse remote env: %w", err)
	}

	if dir := os.Getenv("WARBAND_HOME"); dir != "" {
		cfg.BaseDir = dir
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		LogDir(cfg),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
