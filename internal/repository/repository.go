package repository

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports the first rejected input field
// of a create, update or status change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type TaskRepository interface {
	// List returns a snapshot of the tasks matching the given filter,
	// newest first, and the number of matched tasks.
	//
	// An unrecognized status is ignored rather than rejected, and
	// an empty search term matches every task. The search is a
	// case-insensitive substring match on title and description.
	List(ctx context.Context, params ListParams) ([]*models.Task, int)
	// Get returns ErrTaskNotFound if no task has the given ID.
	Get(ctx context.Context, id string) (*models.Task, error)
	// Create validates the input, assigns a new unique ID and
	// timestamps and appends the task to the collection.
	//
	// It returns a *ValidationError for a blank title, a blank
	// description or an unknown status, checked in that order.
	// An empty status defaults to models.StatusPending.
	Create(ctx context.Context, params CreateTaskParams) (*models.Task, error)
	// Update overwrites the title and description of an existing task,
	// and its status only if one is given.
	//
	// It returns ErrTaskNotFound before any input validation.
	Update(ctx context.Context, params UpdateTaskParams) (*models.Task, error)
	// UpdateStatus overwrites the status of an existing task.
	// The status is mandatory here, unlike in Update.
	UpdateStatus(ctx context.Context, params UpdateTaskStatusParams) (*models.Task, error)
	// Delete removes the task and returns its last state.
	Delete(ctx context.Context, id string) (*models.Task, error)
	Statuses() []models.Status
	Count(ctx context.Context) int
}

type ListParams struct {
	Status models.Status
	Search string
}

type CreateTaskParams struct {
	Title       string
	Description string
	Status      models.Status
}

type UpdateTaskParams struct {
	ID          string
	Title       string
	Description string
	Status      models.Status
}

type UpdateTaskStatusParams struct {
	ID     string
	Status models.Status
}
