// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Input is validated against the
// Task aggregate's rules before the repository is called, so a rejected
// request never opens a unit of work.
type TaskService struct {
	repo   ports.TaskRepository
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by repo. A nil logger discards
// output.
func NewTaskService(repo ports.TaskRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{repo: repo, logger: logger}
}

// ListTasks returns all tasks with their details.
func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks")

	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tasks, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id string) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.String("id", id))

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// CreateTask validates the input, stores the task and its details, and
// returns the stored task.
func (s *TaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task",
		slog.Int64("user_id", in.UserID),
		slog.Int("details", len(in.Details)),
	)

	t, err := task.New(in.UserID, in.Title, in.Status, toDetails(in.Details))
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Int64("user_id", in.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}

	t.ID = id
	return s.reload(ctx, "CreateTask", t), nil
}

// UpdateTask applies a partial update to a stored task. Title and status go
// through the aggregate's rules; a non-nil Details slice replaces the stored
// details.
func (s *TaskService) UpdateTask(ctx context.Context, id string, in ports.UpdateTaskInput) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("id", id))

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task for update",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	if in.Title != nil {
		if err := t.UpdateTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if err := t.UpdateStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.Details != nil {
		if err := t.ReplaceDetails(toDetails(in.Details)); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.reload(ctx, "UpdateTask", t), nil
}

// DeleteTask deletes a task and its details.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// reload reads back a task after a committed write so the caller sees
// store-assigned detail ids. The write already succeeded, so a failed read
// is logged and the in-memory task is returned instead.
func (s *TaskService) reload(ctx context.Context, operation string, t *task.Task) *task.Task {
	stored, err := s.repo.FindByID(ctx, t.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to reload task after write",
			slog.String("operation", operation),
			slog.String("id", t.ID),
			slog.Any("error", err),
		)
		return t
	}
	return stored
}

func toDetails(in []ports.DetailInput) []task.Detail {
	out := make([]task.Detail, 0, len(in))
	for _, d := range in {
		out = append(out, task.Detail{
			ID:          d.ID,
			Description: strings.TrimSpace(d.Description),
			Notes:       d.Notes,
		})
	}
	return out
}
