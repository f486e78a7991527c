package models

// Task board lanes.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusComplete   = "complete"
)

// ValidStatuses returns the three board lanes in display order.
func ValidStatuses() []string {
	return []string{StatusTodo, StatusInProgress, StatusComplete}
}

// IsValidStatus reports whether status names one of the board lanes.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Task priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task is a board card tracked across the three lanes.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Status      string `json:"status"`
}
