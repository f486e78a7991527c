package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/log"
	"github.com/ember-forge/warband/internal/store"
	"github.com/ember-forge/warband/internal/telemetry"
	"github.com/ember-forge/warband/internal/tui"
	"github.com/ember-forge/warband/pkg/version"
)

// runTUI executes the TUI when no subcommand is specified.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := log.Init(config.LogDir(cfg)); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	printBanner()

	paths := config.GetPaths(cfg)
	log.Printf("\n\U0001F4C1 Base directory: %s\n", cfg.BaseDir)
	log.Printf("\U0001F4C1 Snapshot: %s\n", paths.Snapshot)
	log.Printf("\U0001F4C1 Log directory: %s\n", paths.Logs)

	s := store.New(store.Options{
		Path:            paths.Snapshot,
		FallbackCatalog: catalog.Fallback(),
	})

	// First run: seed the theme from the terminal background. A saved
	// snapshot keeps whatever the user last chose.
	if !s.Restored() {
		s.SetDarkMode(lipgloss.HasDarkBackground())
	}

	stats := s.Stats()
	log.Printf("\n\U0001F4CA Characters tracked: %d (%d six-star)\n", stats.TotalCharacters, stats.TotalSixStar)
	log.Printf("   Catalog entries: %d\n", len(s.Catalog()))

	if cfg.Remote.Enabled() {
		log.Println("\n\U0001F517 Synced roster: hosted backend configured")
	} else {
		log.Println("\n\U0001F517 Synced roster: local database (set WARBAND_REMOTE_URL and WARBAND_REMOTE_KEY for hosted sync)")
	}

	if telemetry.IsEnabled() {
		log.Println("\n\U0001F4CA Telemetry: ON (set WARBAND_TELEMETRY_TRACKING_ENABLED=false to disable)")
	} else {
		log.Println("\n\U0001F4CA Telemetry: OFF")
	}

	adapter, cleanup, err := openRoster(cfg)
	if err != nil {
		log.Warnf("roster backend unavailable: %v", err)
	} else {
		defer cleanup()
	}

	log.Println("\n⚔️  Launching Warband TUI...")
	log.Println("   Press tab to switch views, ? for help, q to quit")

	return tui.Run(s, adapter, cfg, telemetryClient)
}

func printBanner() {
	fmt.Println()
	fmt.Println("   W A R B A N D")
	fmt.Println("   collection companion")
	fmt.Printf("   Version: %s\n", version.Short())
}
