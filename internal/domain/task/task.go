// Package task defines the Task aggregate and its Detail entities.
package task

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
)

// ErrCompletedTask is returned when a status change would move a task out
// of the completed state.
var ErrCompletedTask = fmt.Errorf("cannot change status of a completed task: %w", domain.ErrConflict)

// Task is the aggregate root: a titled unit of work owned by a user, with an
// ordered list of details. ID is the store-assigned item id and is empty for
// tasks that have not been persisted yet.
type Task struct {
	ID      string
	UserID  int64
	Title   string
	Status  Status
	Details []Detail
}

// New builds a validated, not-yet-persisted Task. The title is trimmed and an
// empty status defaults to pending.
func New(userID int64, title string, status Status, details []Detail) (*Task, error) {
	if status == "" {
		status = StatusPending
	}
	t := &Task{
		UserID:  userID,
		Title:   strings.TrimSpace(title),
		Status:  status,
		Details: slices.Clone(details),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reconstruct rehydrates a Task read back from the store. No validation is
// applied; stored data is taken as-is.
func Reconstruct(id string, userID int64, title string, status Status, details []Detail) *Task {
	return &Task{
		ID:      id,
		UserID:  userID,
		Title:   title,
		Status:  status,
		Details: details,
	}
}

// Validate checks business rules for the Task aggregate.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["task_title"] = domain.MsgRequired
	}
	if t.UserID <= 0 {
		fields["user_id"] = fmt.Sprintf("must be positive, got %d", t.UserID)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	for i := range t.Details {
		if strings.TrimSpace(t.Details[i].Description) == "" {
			fields[fmt.Sprintf("details[%d].description", i)] = domain.MsgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTitle replaces the title. The new title is trimmed and must not be empty.
func (t *Task) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.NewValidationError("task_title", domain.MsgRequired)
	}
	t.Title = title
	return nil
}

// UpdateStatus moves the task to s. A completed task stays completed.
func (t *Task) UpdateStatus(s Status) error {
	if !s.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", s))
	}
	if t.Status == StatusCompleted && s != StatusCompleted {
		return ErrCompletedTask
	}
	t.Status = s
	return nil
}

// AddDetail appends a detail to the task.
func (t *Task) AddDetail(d Detail) {
	t.Details = append(t.Details, d)
}

// RemoveDetail drops the detail with the given id. Unknown ids are ignored.
func (t *Task) RemoveDetail(id string) {
	t.Details = slices.DeleteFunc(t.Details, func(d Detail) bool {
		return d.ID == id
	})
}

// ReplaceDetails swaps the full detail list. Each detail must have a description.
func (t *Task) ReplaceDetails(details []Detail) error {
	fields := make(map[string]string)
	for i := range details {
		if strings.TrimSpace(details[i].Description) == "" {
			fields[fmt.Sprintf("details[%d].description", i)] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	t.Details = slices.Clone(details)
	return nil
}
