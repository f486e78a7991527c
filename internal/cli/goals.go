package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/store"
)

var (
	goalDescription string
	goalTargetDate  string
	goalProgress    int
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage milestones",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a milestone",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGoalsAdd,
}

var goalsNudgeCmd = &cobra.Command{
	Use:   "nudge <id>",
	Short: "Bump a milestone's progress by one step",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsNudge,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set <id> <progress>",
	Short: "Set a milestone's progress (0-100)",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsSet,
}

var goalsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a milestone",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRemove,
}

func init() {
	goalsAddCmd.Flags().StringVar(&goalDescription, "description", "", "Milestone description")
	goalsAddCmd.Flags().StringVar(&goalTargetDate, "target", "", "Target date")
	goalsAddCmd.Flags().IntVar(&goalProgress, "progress", 0, "Starting progress (0-100)")

	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsNudgeCmd)
	goalsCmd.AddCommand(goalsSetCmd)
	goalsCmd.AddCommand(goalsRemoveCmd)
}

func runGoalsList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("goals", fmt.Errorf("load config: %w", err))
	}

	milestones := s.Milestones()
	if len(milestones) == 0 {
		fmt.Println("No milestones yet.")
		return nil
	}

	fmt.Printf("MILESTONES (%d)\n", len(milestones))
	fmt.Println("──────────────────────────────────────────────────")
	for _, m := range milestones {
		line := fmt.Sprintf("%-10s %-32s %3d%%", m.ID, m.Name, m.Progress)
		if m.TargetDate != "" {
			line += fmt.Sprintf("  (target %s)", m.TargetDate)
		}
		fmt.Println(line)
	}
	return nil
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("goals", fmt.Errorf("load config: %w", err))
	}

	name := args[0]
	for _, extra := range args[1:] {
		name += " " + extra
	}

	m := s.AddMilestone(store.MilestoneInput{
		Name:        name,
		Description: goalDescription,
		TargetDate:  goalTargetDate,
		Progress:    goalProgress,
	})
	fmt.Printf("Added milestone %s at %d%%\n", m.ID, m.Progress)
	return nil
}

func runGoalsNudge(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("goals", fmt.Errorf("load config: %w", err))
	}

	id := args[0]
	s.NudgeMilestone(id)
	for _, m := range s.Milestones() {
		if m.ID == id {
			telemetryClient.TrackMilestoneNudged(m.Progress)
			fmt.Printf("Milestone %s now at %d%%\n", m.ID, m.Progress)
			return nil
		}
	}
	return trackCLIError("goals", fmt.Errorf("milestone %q not found", id))
}

func runGoalsSet(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("goals", fmt.Errorf("load config: %w", err))
	}

	id := args[0]
	progress := store.CoerceCount(args[1])
	s.UpdateMilestone(id, store.MilestoneUpdate{Progress: &progress})

	for _, m := range s.Milestones() {
		if m.ID == id {
			fmt.Printf("Milestone %s now at %d%%\n", m.ID, m.Progress)
			return nil
		}
	}
	return trackCLIError("goals", fmt.Errorf("milestone %q not found", id))
}

func runGoalsRemove(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("goals", fmt.Errorf("load config: %w", err))
	}

	s.DeleteMilestone(args[0])
	fmt.Printf("Removed milestone %s\n", args[0])
	return nil
}
