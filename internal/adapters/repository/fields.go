package repository

import (
	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
)

// Field ids in the tasks and task details datastores.
const (
	fieldUserID      = "user_id"
	fieldTaskTitle   = "task_title"
	fieldStatus      = "status"
	fieldCreatedAt   = "created_at"
	fieldTaskID      = "task_id"
	fieldDescription = "description"
	fieldNotes       = "notes"
)

func taskFields(t *task.Task) item.Fields {
	return item.Fields{
		fieldUserID:    t.UserID,
		fieldTaskTitle: t.Title,
		fieldStatus:    t.Status.String(),
	}
}

func detailFields(taskID string, d task.Detail) item.Fields {
	var notes any
	if d.Notes != nil {
		notes = *d.Notes
	}
	return item.Fields{
		fieldTaskID:      taskID,
		fieldDescription: d.Description,
		fieldNotes:       notes,
	}
}

// toTask rebuilds the aggregate from a task item and its linked detail items.
// A detail's TaskID comes from the link, not from its stored task_id field,
// which goes stale when compensation recreates the parent.
func toTask(it item.Item, details []item.Item) task.Task {
	ds := make([]task.Detail, 0, len(details))
	for _, d := range details {
		ds = append(ds, task.ReconstructDetail(
			d.Ref.ID,
			it.Ref.ID,
			d.Fields.String(fieldDescription),
			d.Fields.StringPtr(fieldNotes),
		))
	}
	return *task.Reconstruct(
		it.Ref.ID,
		it.Fields.Int64(fieldUserID),
		it.Fields.String(fieldTaskTitle),
		task.Status(it.Fields.String(fieldStatus)),
		ds,
	)
}

// detailChanged reports whether d differs from what is stored.
func detailChanged(stored item.Item, d task.Detail) bool {
	if stored.Fields.String(fieldDescription) != d.Description {
		return true
	}
	notes := stored.Fields.StringPtr(fieldNotes)
	switch {
	case notes == nil && d.Notes == nil:
		return false
	case notes == nil || d.Notes == nil:
		return true
	default:
		return *notes != *d.Notes
	}
}
