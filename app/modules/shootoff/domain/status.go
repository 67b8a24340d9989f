// Package shootoffdomain implements the shoot-off aggregate: its status
// machine, round lifecycle, sudden-death elimination, and final placement.
// Every operation validates completely before mutating, so a rejected call
// leaves the aggregate untouched.
package shootoffdomain

// Status is the shoot-off lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// statusTransitions is the legal transition table. Completed and cancelled
// are terminal.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
