package status

import (
	"daydash/internal/tasks"
)

// Status is the three-valued task status shown to the user.
type Status int

const (
	Todo Status = iota
	InProgress
	Completed
)

// String returns the status label shown next to a task.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "In Progress"
	case Completed:
		return "Completed"
	default:
		return "To Do"
	}
}

// Next returns the status a user-initiated cycle moves to. The cycle is
// strict and single-direction: Todo -> InProgress -> Completed -> Todo.
func (s Status) Next() Status {
	switch s {
	case Todo:
		return InProgress
	case InProgress:
		return Completed
	default:
		return Todo
	}
}

// Remote translates the status to the remote service's two-valued domain.
// InProgress has no remote representation and returns the empty string.
func (s Status) Remote() string {
	switch s {
	case Completed:
		return tasks.StatusCompleted
	case Todo:
		return tasks.StatusNeedsAction
	default:
		return ""
	}
}

// Effective computes the status shown to the user: InProgress if the task
// is in the overlay, else Completed if the remote status says so, else
// Todo.
func Effective(t tasks.Task, overlay *Overlay) Status {
	if overlay.InProgress(t.ID) {
		return InProgress
	}
	if t.Status == tasks.StatusCompleted {
		return Completed
	}
	return Todo
}
