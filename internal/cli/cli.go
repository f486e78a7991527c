// Package cli provides the command-line interface for Warband.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/log"
	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/remote"
	"github.com/ember-forge/warband/internal/roster"
	"github.com/ember-forge/warband/internal/store"
	"github.com/ember-forge/warband/internal/telemetry"
	"github.com/ember-forge/warband/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "warband",
	Short: "Collection companion for your champion roster",
	Long: `Collection companion for your champion roster

An offline-first tracker for characters, resources, tasks, and
milestones, with an optional synced roster backend and a live
character catalog.

Run without arguments to launch the interactive TUI.

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never track
  personal information, custom/local data, or IP addresses.

  It will only be used to improve Warband.

  Opt-out with:
  	WARBAND_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runTUI,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Skip for the root TUI command
		if cmd.Name() != "warband" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(darkmodeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(gearCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tasksCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New()
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "warband" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs)
	}

	return err
}

// openStore loads config and opens the snapshot-backed store.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	paths := config.GetPaths(cfg)
	s := store.New(store.Options{
		Path:            paths.Snapshot,
		FallbackCatalog: catalog.Fallback(),
	})
	return s, cfg, nil
}

// openRoster builds the roster adapter over the configured backend:
// the hosted record store when credentials are present, the local
// sqlite one otherwise.
func openRoster(cfg *config.Config) (*roster.Adapter, func(), error) {
	if cfg.Remote.Enabled() {
		rs := remote.NewRESTStore(cfg.Remote.URL, cfg.Remote.Key)
		return roster.NewAdapter(rs), func() { _ = rs.Close() }, nil
	}

	paths := config.GetPaths(cfg)
	local, err := remote.NewLocalStore(remote.DefaultLocalConfig(paths.Records))
	if err != nil {
		return nil, nil, err
	}

	// First open: seed the catalog table from the bundled dataset so
	// search has something to match.
	ctx := context.Background()
	if count, err := local.CatalogCount(ctx); err == nil && count == 0 {
		if err := local.SeedCatalog(ctx, catalog.Fallback()); err != nil {
			log.Warnf("seed local catalog: %v", err)
		}
	}

	return roster.NewAdapter(local), func() { _ = local.Close() }, nil
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "network", "timeout", "connection", "try again"):
		return "network_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format", "duplicate"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// normalizeRarity canonicalizes a user-supplied rarity tier,
// case-insensitively. An empty value passes through unchanged.
func normalizeRarity(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	for _, r := range models.ValidRarities() {
		if strings.EqualFold(r, value) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid rarity %q (valid: %s)", value, strings.Join(models.ValidRarities(), ", "))
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
