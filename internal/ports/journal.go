package ports

import (
	"context"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
)

// CompensationJournal durably records undo operations that failed during
// compensation so they can be inspected and replayed later. Implemented by
// the journal adapter; written by the saga coordinator and drained by the
// replayer.
type CompensationJournal interface {
	// Record stores a failed undo with the attempts already made.
	// CreatedAt/UpdatedAt and ID are assigned by the journal.
	Record(ctx context.Context, f rollback.Failure) error

	// Pending returns unresolved failures, oldest first. A limit <= 0
	// returns all of them.
	Pending(ctx context.Context, limit int) ([]rollback.Failure, error)

	// MarkAttempt records another failed replay attempt with its cause. op
	// replaces the stored operation, carrying refs resolved during the
	// attempt.
	MarkAttempt(ctx context.Context, id int64, op rollback.Operation, cause string) error

	// Resolve marks a failure as successfully replayed.
	Resolve(ctx context.Context, id int64) error
}
