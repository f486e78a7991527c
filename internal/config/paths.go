package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Snapshot string // Store snapshot (single JSON document)
	Records  string // Local record store database
	Logs     string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Snapshot: filepath.Join(cfg.BaseDir, "companion-store.json"),
		Records:  filepath.Join(cfg.BaseDir, "records.db"),
		Logs:     LogDir(cfg),
	}
}

// LogDir returns the log directory for the given config.
func LogDir(cfg *Config) string {
	return filepath.Join(cfg.BaseDir, "logs")
}

// DefaultBaseDir returns the default base directory. Prefers the XDG
// data home; falls back to ~/.warband when it is unavailable.
func DefaultBaseDir() string {
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "warband")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".warband"
	}
	return filepath.Join(home, ".warband")
}
