// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/task-saga-service/internal/domain/task"

// TaskResponse represents a single task with its details in HTTP responses.
type TaskResponse struct {
	ID      string           `json:"id"`
	UserID  int64            `json:"user_id"`
	Title   string           `json:"task_title"`
	Status  string           `json:"status"`
	Details []DetailResponse `json:"details"`
}

// DetailResponse represents one task detail in HTTP responses. Notes is
// null when the detail has none.
type DetailResponse struct {
	ID          string  `json:"id"`
	TaskID      string  `json:"task_id"`
	Description string  `json:"description"`
	Notes       *string `json:"notes"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO. Details is
// always a JSON array, never null.
func ToTaskResponse(t *task.Task) TaskResponse {
	details := make([]DetailResponse, len(t.Details))
	for i, d := range t.Details {
		details[i] = DetailResponse{
			ID:          d.ID,
			TaskID:      d.TaskID,
			Description: d.Description,
			Notes:       d.Notes,
		}
	}

	return TaskResponse{
		ID:      t.ID,
		UserID:  t.UserID,
		Title:   t.Title,
		Status:  t.Status.String(),
		Details: details,
	}
}

// ToTaskListResponse converts a slice of domain Tasks to an HTTP list
// response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}
