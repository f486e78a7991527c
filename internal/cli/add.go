package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/store"
)

var (
	addFaction string
	addType    string
	addRarity  string
	addLevel   string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a character to the collection",
	Long: `Add a character to the local collection.

Faction, type, and rarity can be given with flags; when the name
matches a catalog entry, missing fields are filled in from it. The
level is clamped to 1-60 and defaults to 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFaction, "faction", "", "Character faction")
	addCmd.Flags().StringVar(&addType, "type", "", "Character type (Attack, Defense, Support, HP)")
	addCmd.Flags().StringVar(&addRarity, "rarity", "", "Character rarity")
	addCmd.Flags().StringVar(&addLevel, "level", "1", "Character level (1-60)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("add", fmt.Errorf("load config: %w", err))
	}

	rarity, err := normalizeRarity(addRarity)
	if err != nil {
		return trackCLIError("add", err)
	}

	name := strings.Join(args, " ")
	input := store.AddCharacterInput{
		Name:    name,
		Faction: addFaction,
		Type:    addType,
		Rarity:  rarity,
		Level:   addLevel,
	}

	// Autofill missing fields from the cached catalog.
	if entry, ok := catalog.FindByName(s.Catalog(), name); ok {
		if input.Faction == "" {
			input.Faction = entry.Faction
		}
		if input.Type == "" {
			input.Type = entry.Type
		}
		if input.Rarity == "" {
			input.Rarity = entry.Rarity
		}
	}

	result := s.AddCharacter(input)
	if !result.Success {
		switch result.Reason {
		case store.ReasonDuplicate:
			return trackCLIError("add", fmt.Errorf("duplicate character: %q is already tracked", name))
		default:
			return trackCLIError("add", fmt.Errorf("invalid character name %q", name))
		}
	}

	telemetryClient.TrackCharacterAdded(result.Character.Rarity, result.Character.Level)
	fmt.Printf("Added %s (%s) at level %d with id %s\n",
		result.Character.Name, result.Character.Rarity, result.Character.Level, result.Character.ID)

	if suggestions := catalog.Suggest(s.Catalog(), name, 3); len(suggestions) > 0 {
		if _, ok := catalog.FindByName(s.Catalog(), name); !ok {
			fmt.Printf("Not in the catalog. Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
	}
	return nil
}
