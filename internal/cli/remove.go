package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a character from the collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("remove", fmt.Errorf("load config: %w", err))
	}

	id := args[0]
	var rarity string
	for _, c := range s.Characters() {
		if c.ID == id {
			rarity = c.Rarity
			break
		}
	}
	if rarity == "" {
		return trackCLIError("remove", fmt.Errorf("character %q not found", id))
	}

	s.DeleteCharacter(id)
	telemetryClient.TrackCharacterRemoved(rarity)
	fmt.Printf("Removed character %s\n", id)
	return nil
}
