package ports

import (
	"context"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
)

// TaskService defines the service port for task operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Each method delegates to exactly one repository call after validating its
// input, so a rejected request never reaches the remote store.
type TaskService interface {
	// ListTasks returns all tasks with their details.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id string) (*task.Task, error)

	// CreateTask creates a task with its details and returns the persisted
	// task.
	// Returns domain.ErrValidation if the input fails validation.
	CreateTask(ctx context.Context, in CreateTaskInput) (*task.Task, error)

	// UpdateTask applies a partial update and returns the persisted task.
	// Returns domain.ErrNotFound if the task does not exist.
	// Returns domain.ErrConflict when reopening a completed task.
	UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*task.Task, error)

	// DeleteTask deletes a task and its details.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id string) error
}

// DetailInput carries the user-supplied fields of one task detail. On update,
// ID names a stored detail to keep or edit; an empty ID adds a new one.
type DetailInput struct {
	ID          string
	Description string
	Notes       *string
}

// CreateTaskInput carries the fields for a new task. An empty Status
// defaults to pending.
type CreateTaskInput struct {
	UserID  int64
	Title   string
	Status  task.Status
	Details []DetailInput
}

// UpdateTaskInput carries a partial update. Nil pointer fields are left
// unchanged. A nil Details slice keeps the stored details; a non-nil slice,
// even an empty one, replaces them.
type UpdateTaskInput struct {
	Title   *string
	Status  *task.Status
	Details []DetailInput
}
