package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/roster"
	"github.com/ember-forge/warband/internal/store"
)

var (
	rosterLevel     string
	rosterAscension int
	rosterSoul      int
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the synced roster",
	Long: `Manage the synced roster.

Uses the hosted backend when WARBAND_REMOTE_URL and WARBAND_REMOTE_KEY
are set, and a local database otherwise.`,
	RunE: runRosterList,
}

var rosterAddCmd = &cobra.Command{
	Use:   "add <catalog-id>",
	Short: "Add a catalog character to the synced roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterAdd,
}

var rosterSetCmd = &cobra.Command{
	Use:   "set <catalog-id>",
	Short: "Update a synced roster character",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterSet,
}

var rosterRemoveCmd = &cobra.Command{
	Use:   "remove <catalog-id>",
	Short: "Remove a character from the synced roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterRemove,
}

var rosterSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the backend catalog by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRosterSearch,
}

func init() {
	rosterAddCmd.Flags().StringVar(&rosterLevel, "level", "1", "Level (1-60)")
	rosterAddCmd.Flags().IntVar(&rosterAscension, "ascension", 0, "Ascension stars (0-6)")
	rosterAddCmd.Flags().IntVar(&rosterSoul, "soul", 0, "Soul stars (0-6)")

	rosterSetCmd.Flags().StringVar(&rosterLevel, "level", "", "Level (1-60)")
	rosterSetCmd.Flags().IntVar(&rosterAscension, "ascension", 0, "Ascension stars (0-6)")
	rosterSetCmd.Flags().IntVar(&rosterSoul, "soul", 0, "Soul stars (0-6)")

	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterSetCmd)
	rosterCmd.AddCommand(rosterRemoveCmd)
	rosterCmd.AddCommand(rosterSearchCmd)
}

func runRosterList(cmd *cobra.Command, args []string) error {
	adapter, cleanup, err := rosterAdapter()
	if err != nil {
		return trackCLIError("roster", err)
	}
	defer cleanup()

	entries, err := adapter.FetchRoster(cmd.Context())
	if err != nil {
		return trackCLIError("roster", err)
	}
	telemetryClient.TrackRosterSynced(len(entries))

	if len(entries) == 0 {
		fmt.Println("The synced roster is empty.")
		fmt.Println("\nUse 'warband roster search <name>' to find a catalog id, then 'warband roster add <id>'.")
		return nil
	}

	fmt.Printf("SYNCED ROSTER (%d)\n", len(entries))
	fmt.Println("──────────────────────────────────────────────────")
	for _, e := range entries {
		fmt.Printf("%-10s %-24s %-16s %-10s lvl %-3d asc %d soul %d\n",
			e.CharacterID, e.Name, e.Faction, e.Rarity, e.Level, e.AscensionLevel, e.SoulLevel)
	}
	return nil
}

func runRosterAdd(cmd *cobra.Command, args []string) error {
	adapter, cleanup, err := rosterAdapter()
	if err != nil {
		return trackCLIError("roster", err)
	}
	defer cleanup()

	entries, err := adapter.AddCharacter(cmd.Context(), roster.AddInput{
		CatalogID:      args[0],
		Level:          store.CoerceCount(rosterLevel),
		AscensionLevel: rosterAscension,
		SoulLevel:      rosterSoul,
	})
	if err != nil {
		return trackCLIError("roster", err)
	}

	fmt.Printf("Roster updated, %d characters synced\n", len(entries))
	return nil
}

func runRosterSet(cmd *cobra.Command, args []string) error {
	adapter, cleanup, err := rosterAdapter()
	if err != nil {
		return trackCLIError("roster", err)
	}
	defer cleanup()

	input := roster.UpdateInput{}
	if cmd.Flags().Changed("level") {
		level := store.CoerceCount(rosterLevel)
		input.Level = &level
	}
	if cmd.Flags().Changed("ascension") {
		input.AscensionLevel = &rosterAscension
	}
	if cmd.Flags().Changed("soul") {
		input.SoulLevel = &rosterSoul
	}

	entries, err := adapter.UpdateCharacter(cmd.Context(), args[0], input)
	if err != nil {
		return trackCLIError("roster", err)
	}

	fmt.Printf("Roster updated, %d characters synced\n", len(entries))
	return nil
}

func runRosterRemove(cmd *cobra.Command, args []string) error {
	adapter, cleanup, err := rosterAdapter()
	if err != nil {
		return trackCLIError("roster", err)
	}
	defer cleanup()

	entries, err := adapter.DeleteCharacter(cmd.Context(), args[0])
	if err != nil {
		return trackCLIError("roster", err)
	}

	fmt.Printf("Roster updated, %d characters synced\n", len(entries))
	return nil
}

func runRosterSearch(cmd *cobra.Command, args []string) error {
	adapter, cleanup, err := rosterAdapter()
	if err != nil {
		return trackCLIError("roster", err)
	}
	defer cleanup()

	query := strings.Join(args, " ")
	records, suggestions, err := adapter.SearchCatalog(cmd.Context(), query)
	if err != nil {
		return trackCLIError("roster", err)
	}
	telemetryClient.TrackSearchPerformed(query, len(records))

	if len(records) == 0 {
		fmt.Printf("No catalog entries match %q.\n", query)
		if len(suggestions) > 0 {
			fmt.Printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	for _, record := range records {
		fmt.Printf("%-36s %-24s %-16s %s\n", record.ID, record.Name, record.Faction, record.Rarity)
	}
	return nil
}

// rosterAdapter opens the configured roster backend.
func rosterAdapter() (*roster.Adapter, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return openRoster(cfg)
}
