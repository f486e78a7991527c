package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/store"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Show or update resource counts",
	Long: `Show resource counts, or update them with key=value pairs.

Counts are never negative; malformed or negative values coerce to 0.

Example:
  warband resources energy=130 gems=850`,
	RunE: runResources,
}

func runResources(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("resources", fmt.Errorf("load config: %w", err))
	}

	if len(args) > 0 {
		partial, err := parseCountArgs(args)
		if err != nil {
			return trackCLIError("resources", err)
		}
		s.UpdateResources(partial)
	}

	printCounts("RESOURCES", s.Resources())
	return nil
}

var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "Show or update gear inventory counts",
	Long: `Show gear inventory counts, or update them with key=value pairs.

Example:
  warband gear speedBoots=4 savageSets=2`,
	RunE: runGear,
}

func runGear(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("gear", fmt.Errorf("load config: %w", err))
	}

	if len(args) > 0 {
		partial, err := parseCountArgs(args)
		if err != nil {
			return trackCLIError("gear", err)
		}
		s.UpdateGear(partial)
	}

	printCounts("GEAR", s.Gear())
	return nil
}

// parseCountArgs turns key=value pairs into a count map, coercing
// values the same way the store does.
func parseCountArgs(args []string) (map[string]int, error) {
	partial := make(map[string]int, len(args))
	for _, arg := range args {
		key, value, ok := splitPair(arg)
		if !ok {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", arg)
		}
		partial[key] = store.CoerceCount(value)
	}
	return partial, nil
}

func splitPair(arg string) (string, string, bool) {
	for i := 0; i < len(arg); i++ {
		if arg[i] == '=' {
			if i == 0 {
				return "", "", false
			}
			return arg[:i], arg[i+1:], true
		}
	}
	return "", "", false
}

func printCounts(heading string, counts map[string]int) {
	fmt.Println(heading)
	fmt.Println("──────────────────────────────────────────────────")

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-24s %d\n", key, counts[key])
	}
}
