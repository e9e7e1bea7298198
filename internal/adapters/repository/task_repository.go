// Package repository implements ports.TaskRepository on top of the remote
// item store. Every mutation runs as one saga unit of work: each remote call
// that commits registers its inverse before the next call is made.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen11/task-saga-service/internal/app/fanout"
	"github.com/jsamuelsen11/task-saga-service/internal/app/saga"
	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/config"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// Unit of work names.
const (
	unitCreate = "task.create"
	unitUpdate = "task.update"
	unitDelete = "task.delete"
)

// Compile-time interface check.
var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository stores tasks in one datastore and their details in another,
// with a link between a task item and each of its detail items.
type TaskRepository struct {
	store     ports.ItemStore
	coord     *saga.Coordinator
	tasksDS   string
	detailsDS string
	pageSize  int
	workers   int
	now       func() time.Time
	logger    *slog.Logger
}

// NewTaskRepository creates a TaskRepository. Mutations run through coord,
// which must compensate against the same store.
func NewTaskRepository(store ports.ItemStore, coord *saga.Coordinator, cfg config.StoreConfig, logger *slog.Logger) *TaskRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskRepository{
		store:     store,
		coord:     coord,
		tasksDS:   cfg.TasksDatastoreID,
		detailsDS: cfg.TaskDetailsDatastoreID,
		pageSize:  max(cfg.PageSize, 1),
		workers:   max(cfg.FetchWorkers, 1),
		now:       time.Now,
		logger:    logger,
	}
}

// FindAll lists every task in creation order. Details are fetched per task
// with bounded concurrency; the first failed fetch fails the call.
func (r *TaskRepository) FindAll(ctx context.Context) ([]task.Task, error) {
	var items []item.Item
	for page := 1; ; page++ {
		p, err := r.store.ListItems(ctx, r.tasksDS, item.Query{
			Page:      page,
			PerPage:   r.pageSize,
			SortField: fieldCreatedAt,
			SortOrder: item.SortAsc,
		})
		if err != nil {
			return nil, fmt.Errorf("listing tasks page %d: %w", page, err)
		}
		items = append(items, p.Items...)
		if len(p.Items) == 0 || len(items) >= p.TotalCount {
			break
		}
	}

	r.logger.DebugContext(ctx, "loading task details",
		slog.String("operation", "repository.FindAll"),
		slog.Int("tasks", len(items)),
		slog.Int("workers", r.workers),
	)

	return fanout.Map(ctx, r.workers, items, func(ctx context.Context, it item.Item) (task.Task, error) {
		details, err := r.store.LinkedItems(ctx, it.Ref, r.detailsDS)
		if err != nil {
			return task.Task{}, fmt.Errorf("loading details of task %s: %w", it.Ref.ID, err)
		}
		return toTask(it, details), nil
	})
}

// FindByID returns one task with its details.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	it, details, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	t := toTask(it, details)
	return &t, nil
}

// Create stores t and its details as one unit of work and returns the new
// task id. Per detail the unit creates the detail item and links it to the
// task.
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (string, error) {
	return saga.Do(ctx, r.coord, unitCreate, func(ctx context.Context, u *saga.UnitOfWork) (string, error) {
		fields := taskFields(t)
		fields[fieldCreatedAt] = r.now().UnixNano()

		created, err := r.store.CreateItem(ctx, r.tasksDS, fields)
		if err != nil {
			return "", fmt.Errorf("creating task item: %w", err)
		}
		if err := u.Register(rollback.DeleteItem(created.Ref)); err != nil {
			return "", err
		}

		for i, d := range t.Details {
			if err := r.addDetail(ctx, u, created.Ref, d); err != nil {
				return "", fmt.Errorf("adding detail %d: %w", i, err)
			}
		}
		return created.Ref.ID, nil
	})
}

// Update writes t's fields and reconciles its details as one unit of work.
// Stored details absent from t are unlinked and deleted, details of t
// without an id are created and linked, and details whose fields changed
// are rewritten. Unknown detail ids are rejected before any write.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	return r.coord.Run(ctx, unitUpdate, func(ctx context.Context, u *saga.UnitOfWork) error {
		current, stored, err := r.fetch(ctx, t.ID)
		if err != nil {
			return err
		}
		ref := current.Ref

		byID := make(map[string]item.Item, len(stored))
		for _, s := range stored {
			byID[s.Ref.ID] = s
		}
		wanted := make(map[string]bool, len(t.Details))
		for _, d := range t.Details {
			if d.ID == "" {
				continue
			}
			if _, ok := byID[d.ID]; !ok {
				return fmt.Errorf("detail %s of task %s: %w", d.ID, t.ID, domain.ErrNotFound)
			}
			wanted[d.ID] = true
		}

		// The update may be partially applied even when it fails, so its
		// inverse goes in first.
		if err := u.Register(rollback.RestoreFields(ref, current.Fields)); err != nil {
			return err
		}
		if err := r.store.UpdateItem(ctx, ref, taskFields(t)); err != nil {
			return fmt.Errorf("updating task item %s: %w", t.ID, err)
		}

		for _, s := range stored {
			if wanted[s.Ref.ID] {
				continue
			}
			if err := r.removeDetail(ctx, u, ref, s); err != nil {
				return fmt.Errorf("removing detail %s: %w", s.Ref.ID, err)
			}
		}

		for i, d := range t.Details {
			if d.ID == "" {
				if err := r.addDetail(ctx, u, ref, d); err != nil {
					return fmt.Errorf("adding detail %d: %w", i, err)
				}
				continue
			}
			s := byID[d.ID]
			if !detailChanged(s, d) {
				continue
			}
			if err := u.Register(rollback.RestoreFields(s.Ref, s.Fields)); err != nil {
				return err
			}
			if err := r.store.UpdateItem(ctx, s.Ref, detailFields(ref.ID, d)); err != nil {
				return fmt.Errorf("updating detail %s: %w", d.ID, err)
			}
		}
		return nil
	})
}

// Delete removes a task and all of its details as one unit of work. Each
// detail is unlinked and deleted before the task item itself. Details go
// last-first, so a compensated delete recreates them in their original order.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.coord.Run(ctx, unitDelete, func(ctx context.Context, u *saga.UnitOfWork) error {
		current, details, err := r.fetch(ctx, id)
		if err != nil {
			return err
		}

		for _, d := range slices.Backward(details) {
			if err := r.removeDetail(ctx, u, current.Ref, d); err != nil {
				return fmt.Errorf("removing detail %s: %w", d.Ref.ID, err)
			}
		}

		if err := r.store.DeleteItem(ctx, current.Ref); err != nil {
			return fmt.Errorf("deleting task item %s: %w", id, err)
		}
		return u.Register(rollback.RecreateItem(current.Ref, current.Fields))
	})
}

// fetch loads a task item and its linked details.
func (r *TaskRepository) fetch(ctx context.Context, id string) (item.Item, []item.Item, error) {
	if id == "" {
		return item.Item{}, nil, domain.NewValidationError("id", domain.MsgRequired)
	}
	ref := item.Ref{Datastore: r.tasksDS, ID: id}

	it, err := r.store.GetItem(ctx, ref)
	if err != nil {
		return item.Item{}, nil, fmt.Errorf("fetching task %s: %w", id, err)
	}
	details, err := r.store.LinkedItems(ctx, ref, r.detailsDS)
	if err != nil {
		return item.Item{}, nil, fmt.Errorf("fetching details of task %s: %w", id, err)
	}
	return it, details, nil
}

// addDetail creates a detail item and links it to parent.
func (r *TaskRepository) addDetail(ctx context.Context, u *saga.UnitOfWork, parent item.Ref, d task.Detail) error {
	created, err := r.store.CreateItem(ctx, r.detailsDS, detailFields(parent.ID, d))
	if err != nil {
		return err
	}
	if err := u.Register(rollback.DeleteItem(created.Ref)); err != nil {
		return err
	}

	if err := r.store.LinkItems(ctx, parent, created.Ref); err != nil {
		return err
	}
	return u.Register(rollback.Unlink(parent, created.Ref))
}

// removeDetail unlinks a stored detail from parent and deletes it. The
// detail's fields were captured when it was fetched.
func (r *TaskRepository) removeDetail(ctx context.Context, u *saga.UnitOfWork, parent item.Ref, d item.Item) error {
	if err := r.store.UnlinkItems(ctx, parent, d.Ref); err != nil {
		return err
	}
	if err := u.Register(rollback.Link(parent, d.Ref)); err != nil {
		return err
	}

	if err := r.store.DeleteItem(ctx, d.Ref); err != nil {
		return err
	}
	return u.Register(rollback.RecreateItem(d.Ref, d.Fields))
}
