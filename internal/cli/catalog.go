package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the character reference catalog",
	RunE:  runCatalogShow,
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the latest catalog from the live source",
	Long: `Fetch the latest character catalog.

Tries the primary source, then the mirror, then falls back to the
bundled dataset. The refreshed catalog is cached in the snapshot.`,
	RunE: runCatalogRefresh,
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the cached catalog and restore the bundled dataset",
	RunE:  runCatalogClear,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the cached catalog by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogSearch,
}

func init() {
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogClearCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("catalog", fmt.Errorf("load config: %w", err))
	}

	entries := s.Catalog()
	fmt.Printf("CATALOG (%d entries)\n", len(entries))
	if fetchedAt := s.CatalogFetchedAt(); fetchedAt != nil {
		fmt.Printf("Last refreshed: %s\n", fetchedAt.Format("2006-01-02 15:04"))
	} else {
		fmt.Println("Using the bundled dataset. Run 'warband catalog refresh' to fetch live data.")
	}
	return nil
}

func runCatalogRefresh(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return trackCLIError("catalog", fmt.Errorf("load config: %w", err))
	}

	fetcher := catalog.NewFetcher(catalog.FetcherOptions{
		PrimaryURL: cfg.Catalog.PrimaryURL,
		MirrorURL:  cfg.Catalog.MirrorURL,
		RateLimit:  cfg.Catalog.RateLimit,
		PageSize:   cfg.Catalog.PageSize,
	})

	result, err := fetcher.Fetch(cmd.Context())
	if err != nil {
		return trackCLIError("catalog", fmt.Errorf("fetch catalog: %w", err))
	}

	now := time.Now().UTC()
	s.SetCatalog(result.Entries, &now)
	telemetryClient.TrackCatalogRefreshed(len(result.Entries), result.Status != "")

	fmt.Printf("Catalog refreshed: %d entries\n", len(result.Entries))
	if result.Status != "" {
		fmt.Printf("Warning: %s\n", result.Status)
	}
	return nil
}

func runCatalogClear(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("catalog", fmt.Errorf("load config: %w", err))
	}

	s.ClearCatalog()
	fmt.Printf("Catalog cleared, bundled dataset restored (%d entries)\n", len(s.Catalog()))
	return nil
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("catalog", fmt.Errorf("load config: %w", err))
	}

	query := strings.Join(args, " ")
	matches := catalog.SearchByName(s.Catalog(), query, 10)
	telemetryClient.TrackSearchPerformed(query, len(matches))

	if len(matches) == 0 {
		fmt.Printf("No catalog entries match %q.\n", query)
		if suggestions := catalog.Suggest(s.Catalog(), query, 3); len(suggestions) > 0 {
			fmt.Printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	for _, entry := range matches {
		fmt.Printf("%-24s %-16s %-10s %-10s %s\n",
			entry.Name, entry.Faction, entry.Type, entry.Rarity, entry.Affinity)
	}
	return nil
}
