package task

import (
	"strings"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
)

// Detail is a line item belonging to a Task. TaskID is derived from the link
// to the parent task item and is empty until persisted.
type Detail struct {
	ID          string
	TaskID      string
	Description string
	Notes       *string
}

// NewDetail builds a not-yet-persisted Detail.
func NewDetail(description string, notes *string) (Detail, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Detail{}, domain.NewValidationError("description", domain.MsgRequired)
	}
	return Detail{Description: description, Notes: notes}, nil
}

// ReconstructDetail rehydrates a Detail read back from the store.
func ReconstructDetail(id, taskID, description string, notes *string) Detail {
	return Detail{ID: id, TaskID: taskID, Description: description, Notes: notes}
}
