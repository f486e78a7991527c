package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/models"
)

var listByRarity bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked characters",
	Long: `List every character in the local collection.

Shows id, name, faction, type, rarity, and level.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listByRarity, "by-rarity", false, "Sort by rarity tier, highest first")
}

func runList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("list", fmt.Errorf("load config: %w", err))
	}

	characters := s.Characters()
	if len(characters) == 0 {
		fmt.Println("No characters tracked yet.")
		fmt.Println("\nUse 'warband add <name>' to add one.")
		return nil
	}

	if listByRarity {
		sortByRarity(characters)
	}

	fmt.Printf("CHARACTERS (%d)\n", len(characters))
	fmt.Println("──────────────────────────────────────────────────")
	for _, c := range characters {
		fmt.Printf("%-10s %-24s %-16s %-10s %-10s lvl %d\n",
			c.ID, c.Name, c.Faction, c.Type, c.Rarity, c.Level)
	}

	stats := s.Stats()
	fmt.Printf("\nTotal: %d tracked, %d six-star\n", stats.TotalCharacters, stats.TotalSixStar)
	return nil
}

// sortByRarity orders characters highest tier first, ties broken by
// name.
func sortByRarity(characters []models.Character) {
	sort.SliceStable(characters, func(i, j int) bool {
		ri, rj := models.RarityRank(characters[i].Rarity), models.RarityRank(characters[j].Rarity)
		if ri != rj {
			return ri > rj
		}
		return strings.ToLower(characters[i].Name) < strings.ToLower(characters[j].Name)
	})
}
