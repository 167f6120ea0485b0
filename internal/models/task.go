package models

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses returns every valid task status in display order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a copy that shares no state with t.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}
