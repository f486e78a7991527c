package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all tracked data to the sample dataset",
	RunE:  runReset,
}

var darkmodeCmd = &cobra.Command{
	Use:   "darkmode",
	Short: "Toggle dark mode",
	RunE:  runDarkmode,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE:  runStats,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("reset", fmt.Errorf("load config: %w", err))
	}

	if !resetForce {
		fmt.Print("This will discard all tracked data. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	s.ResetAll()
	fmt.Println("All data reset to the sample dataset.")
	return nil
}

func runDarkmode(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("darkmode", fmt.Errorf("load config: %w", err))
	}

	enabled := s.ToggleDarkMode()
	telemetryClient.TrackSettingsChanged("dark_mode")
	if enabled {
		fmt.Println("Dark mode enabled.")
	} else {
		fmt.Println("Dark mode disabled.")
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("stats", fmt.Errorf("load config: %w", err))
	}

	stats := s.RecomputeStats()
	fmt.Println("COLLECTION STATS")
	fmt.Println("──────────────────────────────────────────────────")
	fmt.Printf("%-24s %d\n", "Tracked characters", stats.TotalCharacters)
	fmt.Printf("%-24s %d\n", "Six-star characters", stats.TotalSixStar)
	fmt.Printf("%-24s %d\n", "Tasks", len(s.Tasks()))
	fmt.Printf("%-24s %d\n", "Milestones", len(s.Milestones()))
	fmt.Printf("%-24s %d\n", "Catalog entries", len(s.Catalog()))
	return nil
}
