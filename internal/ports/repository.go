package ports

import (
	"context"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
)

// TaskRepository defines the persistence port for the Task aggregate.
// Implemented by the repository adapter; called by the application layer.
// Every mutating method runs as a single unit of work: either all of its
// remote effects stick, or the ones that committed are compensated before
// the triggering error is returned.
type TaskRepository interface {
	// FindAll returns all tasks with their details populated.
	FindAll(ctx context.Context) ([]task.Task, error)

	// FindByID returns a single task with its details.
	// Returns domain.ErrNotFound if the task does not exist.
	FindByID(ctx context.Context, id string) (*task.Task, error)

	// Create persists a new task and its details, linking each detail to
	// the task. Returns the store-assigned task id.
	Create(ctx context.Context, t *task.Task) (string, error)

	// Update persists the task's fields and reconciles its details: stored
	// details missing from t are removed, details without an ID are created
	// and linked, and changed details are rewritten.
	Update(ctx context.Context, t *task.Task) error

	// Delete removes a task and all of its details.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
