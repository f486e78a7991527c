package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseDir == "" {
		t.Error("BaseDir should not be empty")
	}
	if cfg.Catalog.PrimaryURL != DefaultCatalogURL {
		t.Errorf("PrimaryURL = %q, want %q", cfg.Catalog.PrimaryURL, DefaultCatalogURL)
	}
	if cfg.Catalog.MirrorURL == "" {
		t.Error("MirrorURL should not be empty")
	}
	if cfg.Catalog.PageSize != 500 {
		t.Errorf("PageSize = %d, want 500", cfg.Catalog.PageSize)
	}
	if cfg.Remote.Enabled() {
		t.Error("remote should be disabled without credentials")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WARBAND_HOME", t.TempDir())
	t.Setenv("WARBAND_CATALOG_URL", "https://example.com/champions")
	t.Setenv("WARBAND_REMOTE_URL", "https://project.supabase.co")
	t.Setenv("WARBAND_REMOTE_KEY", "service-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.PrimaryURL != "https://example.com/champions" {
		t.Errorf("PrimaryURL = %q, want env override", cfg.Catalog.PrimaryURL)
	}
	if !cfg.Remote.Enabled() {
		t.Error("remote should be enabled with URL and key set")
	}
}

func TestGetPaths(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{BaseDir: base}

	paths := GetPaths(cfg)

	if paths.Snapshot != filepath.Join(base, "companion-store.json") {
		t.Errorf("Snapshot = %q", paths.Snapshot)
	}
	if paths.Records != filepath.Join(base, "records.db") {
		t.Errorf("Records = %q", paths.Records)
	}
	if paths.Logs != filepath.Join(base, "logs") {
		t.Errorf("Logs = %q", paths.Logs)
	}
}
