package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/store"
)

var (
	setName    string
	setFaction string
	setType    string
	setRarity  string
	setLevel   string
	setGearSet string
	setNotes   string
)

var setCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update fields of a tracked character",
	Long: `Update fields of a tracked character by id.

Only flags that are provided change anything. The level is clamped to
1-60; a non-numeric level is discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setName, "name", "", "New name")
	setCmd.Flags().StringVar(&setFaction, "faction", "", "New faction")
	setCmd.Flags().StringVar(&setType, "type", "", "New type")
	setCmd.Flags().StringVar(&setRarity, "rarity", "", "New rarity")
	setCmd.Flags().StringVar(&setLevel, "level", "", "New level (1-60)")
	setCmd.Flags().StringVar(&setGearSet, "gear", "", "Equipped gear set")
	setCmd.Flags().StringVar(&setNotes, "notes", "", "Free-form notes")
}

func runSet(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("set", fmt.Errorf("load config: %w", err))
	}

	id := args[0]
	if !hasCharacter(s, id) {
		return trackCLIError("set", fmt.Errorf("character %q not found", id))
	}

	update := store.CharacterUpdate{}
	if cmd.Flags().Changed("name") {
		update.Name = &setName
	}
	if cmd.Flags().Changed("faction") {
		update.Faction = &setFaction
	}
	if cmd.Flags().Changed("type") {
		update.Type = &setType
	}
	if cmd.Flags().Changed("rarity") {
		rarity, err := normalizeRarity(setRarity)
		if err != nil {
			return trackCLIError("set", err)
		}
		update.Rarity = &rarity
	}
	if cmd.Flags().Changed("level") {
		update.Level = &setLevel
	}
	if cmd.Flags().Changed("gear") {
		update.GearSet = &setGearSet
	}
	if cmd.Flags().Changed("notes") {
		update.Notes = &setNotes
	}

	s.UpdateCharacter(id, update)

	for _, c := range s.Characters() {
		if c.ID == id {
			fmt.Printf("Updated %s: %s (%s) lvl %d\n", c.ID, c.Name, c.Rarity, c.Level)
			break
		}
	}
	return nil
}

func hasCharacter(s *store.Store, id string) bool {
	for _, c := range s.Characters() {
		if c.ID == id {
			return true
		}
	}
	return false
}
