package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/store"
)

var (
	taskDescription string
	taskPriority    string
	taskDueDate     string
	taskStatus      string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage the task board",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksMoveCmd = &cobra.Command{
	Use:   "move <id> <lane>",
	Short: "Move a task to another lane (todo, in-progress, complete)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksMove,
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksRemove,
}

func init() {
	tasksAddCmd.Flags().StringVar(&taskDescription, "description", "", "Task description")
	tasksAddCmd.Flags().StringVar(&taskPriority, "priority", models.PriorityMedium, "Priority (low, medium, high)")
	tasksAddCmd.Flags().StringVar(&taskDueDate, "due", "", "Due date")
	tasksAddCmd.Flags().StringVar(&taskStatus, "lane", "", "Starting lane (defaults to todo)")

	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksMoveCmd)
	tasksCmd.AddCommand(tasksRemoveCmd)
}

func runTasksList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("tasks", fmt.Errorf("load config: %w", err))
	}

	tasks := s.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks on the board.")
		return nil
	}

	for _, lane := range models.ValidStatuses() {
		fmt.Printf("\n%s\n", laneHeading(lane))
		empty := true
		for _, task := range tasks {
			if task.Status != lane {
				continue
			}
			empty = false
			line := fmt.Sprintf("  %-10s %s", task.ID, task.Title)
			if task.Priority != "" {
				line += fmt.Sprintf(" [%s]", task.Priority)
			}
			if task.DueDate != "" {
				line += fmt.Sprintf(" (due %s)", task.DueDate)
			}
			fmt.Println(line)
		}
		if empty {
			fmt.Println("  (empty)")
		}
	}
	return nil
}

func laneHeading(lane string) string {
	switch lane {
	case models.StatusTodo:
		return "TO DO"
	case models.StatusInProgress:
		return "IN PROGRESS"
	case models.StatusComplete:
		return "COMPLETE"
	default:
		return lane
	}
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("tasks", fmt.Errorf("load config: %w", err))
	}

	title := args[0]
	for _, extra := range args[1:] {
		title += " " + extra
	}

	task := s.AddTask(store.TaskInput{
		Title:       title,
		Description: taskDescription,
		Priority:    taskPriority,
		DueDate:     taskDueDate,
		Status:      taskStatus,
	})
	fmt.Printf("Added task %s in lane %q\n", task.ID, task.Status)
	return nil
}

func runTasksMove(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("tasks", fmt.Errorf("load config: %w", err))
	}

	id, lane := args[0], args[1]
	if !models.IsValidStatus(lane) {
		return trackCLIError("tasks", fmt.Errorf("invalid lane %q (use todo, in-progress, or complete)", lane))
	}

	s.MoveTask(id, lane)
	telemetryClient.TrackTaskMoved(lane)
	fmt.Printf("Moved task %s to %q\n", id, lane)
	return nil
}

func runTasksRemove(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return trackCLIError("tasks", fmt.Errorf("load config: %w", err))
	}

	s.DeleteTask(args[0])
	fmt.Printf("Removed task %s\n", args[0])
	return nil
}
