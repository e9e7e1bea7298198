package saga

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// ReplayReport summarizes one replay pass.
type ReplayReport struct {
	Attempted int `json:"attempted"`
	Resolved  int `json:"resolved"`
	Failed    int `json:"failed"`
}

// Replayer retries undo operations that failed during compensation and were
// recorded in the compensation journal.
type Replayer struct {
	store   ports.ItemStore
	journal ports.CompensationJournal
	logger  *slog.Logger
}

// NewReplayer creates a Replayer reading from journal and undoing against
// store.
func NewReplayer(store ports.ItemStore, journal ports.CompensationJournal, logger *slog.Logger) *Replayer {
	return &Replayer{store: store, journal: journal, logger: logger}
}

// Replay attempts each pending failure once, oldest first. Entries of the
// same unit of work share one identity remap, so a recreated item is
// targeted by the unit's later link operations. Successful entries are
// resolved; failed ones get their attempt count bumped and are stored with
// refs resolved through the remap.
//
// A limit <= 0 replays everything pending. Journal errors abort the pass;
// undo errors do not.
func (r *Replayer) Replay(ctx context.Context, limit int) (ReplayReport, error) {
	var report ReplayReport

	pending, err := r.journal.Pending(ctx, limit)
	if err != nil {
		return report, fmt.Errorf("loading pending compensations: %w", err)
	}

	for _, group := range groupByUnit(pending) {
		undo := newUndoer(r.store)

		for _, f := range group {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			report.Attempted++

			if err := undo.apply(ctx, f.Operation); err != nil {
				report.Failed++
				r.logger.WarnContext(ctx, "replay failed",
					slog.String("operation", "Replayer.Replay"),
					slog.Int64("failure_id", f.ID),
					slog.String("unit_id", f.UnitID),
					slog.String("action", f.Operation.Description()),
					slog.Int("attempts", f.Attempts+1),
					slog.Any("error", err),
				)
				if err := r.journal.MarkAttempt(ctx, f.ID, undo.resolved(f.Operation), err.Error()); err != nil {
					return report, fmt.Errorf("marking attempt for failure %d: %w", f.ID, err)
				}
				continue
			}

			if err := r.journal.Resolve(ctx, f.ID); err != nil {
				return report, fmt.Errorf("resolving failure %d: %w", f.ID, err)
			}
			report.Resolved++
			r.logger.InfoContext(ctx, "replayed compensation",
				slog.Int64("failure_id", f.ID),
				slog.String("unit_id", f.UnitID),
				slog.String("action", f.Operation.Description()),
			)
		}
	}

	return report, nil
}

// groupByUnit splits failures by unit id, keeping first-seen unit order and
// the original order within each unit.
func groupByUnit(failures []rollback.Failure) [][]rollback.Failure {
	index := make(map[string]int)
	var groups [][]rollback.Failure

	for _, f := range failures {
		i, ok := index[f.UnitID]
		if !ok {
			i = len(groups)
			index[f.UnitID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], f)
	}
	return groups
}
