package models

// Progress bounds for a milestone, in percent.
const (
	MinProgress = 0
	MaxProgress = 100
)

// ProgressStep is the fixed increment used when nudging a milestone forward.
const ProgressStep = 5

// Milestone is a long-running account goal with a progress percentage.
type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	Progress    int    `json:"progress"`
}

// ClampProgress coerces a progress percentage into [MinProgress, MaxProgress].
func ClampProgress(progress int) int {
	if progress < MinProgress {
		return MinProgress
	}
	if progress > MaxProgress {
		return MaxProgress
	}
	return progress
}
