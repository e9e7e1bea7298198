package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req:  dto.CreateTaskRequest{UserID: 1, Title: "Read book"},
		},
		{
			name: "valid request with all fields",
			req: dto.CreateTaskRequest{
				UserID: 1,
				Title:  "Read book",
				Status: "in_progress",
				Details: []dto.DetailRequest{
					{Description: "chapter 1", Notes: stringPtr("skim")},
					{Description: "chapter 2"},
				},
			},
		},
		{
			name:      "missing title",
			req:       dto.CreateTaskRequest{UserID: 1},
			wantErr:   true,
			wantField: "task_title",
		},
		{
			name:      "non-positive user id",
			req:       dto.CreateTaskRequest{UserID: 0, Title: "Read book"},
			wantErr:   true,
			wantField: "user_id",
		},
		{
			name:      "unknown status",
			req:       dto.CreateTaskRequest{UserID: 1, Title: "Read book", Status: "done"},
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "title too long",
			req:       dto.CreateTaskRequest{UserID: 1, Title: strings.Repeat("x", 256)},
			wantErr:   true,
			wantField: "task_title",
		},
		{
			name: "detail without description",
			req: dto.CreateTaskRequest{
				UserID:  1,
				Title:   "Read book",
				Details: []dto.DetailRequest{{Description: "ok"}, {Description: ""}},
			},
			wantErr:   true,
			wantField: "details[1].description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTaskRequest_ValidateMessages(t *testing.T) {
	t.Parallel()

	req := dto.CreateTaskRequest{UserID: -3, Status: "done"}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if verr.Fields["task_title"] != domain.MsgRequired {
		t.Errorf("task_title = %q, want %q", verr.Fields["task_title"], domain.MsgRequired)
	}
	if verr.Fields["status"] != `invalid: "done"` {
		t.Errorf("status = %q", verr.Fields["status"])
	}
	if !strings.Contains(verr.Fields["user_id"], "-3") {
		t.Errorf("user_id = %q, want value in message", verr.Fields["user_id"])
	}
}

func TestCreateTaskRequest_ToInputDropsDetailIDs(t *testing.T) {
	t.Parallel()

	req := dto.CreateTaskRequest{
		UserID:  4,
		Title:   "Read book",
		Details: []dto.DetailRequest{{ID: "d-9", Description: "chapter 1"}},
	}

	in := req.ToInput()
	if in.UserID != 4 || in.Title != "Read book" || in.Status != "" {
		t.Errorf("ToInput() = %+v", in)
	}
	if len(in.Details) != 1 || in.Details[0].ID != "" || in.Details[0].Description != "chapter 1" {
		t.Errorf("Details = %+v, want id dropped", in.Details)
	}
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "empty update passes",
			req:  dto.UpdateTaskRequest{},
		},
		{
			name: "all fields",
			req: dto.UpdateTaskRequest{
				Title:   stringPtr("Renamed"),
				Status:  stringPtr("completed"),
				Details: []dto.DetailRequest{{ID: "d-1", Description: "kept"}, {Description: "new"}},
			},
		},
		{
			name:      "empty title",
			req:       dto.UpdateTaskRequest{Title: stringPtr("")},
			wantErr:   true,
			wantField: "task_title",
		},
		{
			name:      "unknown status",
			req:       dto.UpdateTaskRequest{Status: stringPtr("archived")},
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "detail missing description",
			req:       dto.UpdateTaskRequest{Details: []dto.DetailRequest{{ID: "d-1"}}},
			wantErr:   true,
			wantField: "details[0].description",
		},
		{
			name: "duplicate detail id",
			req: dto.UpdateTaskRequest{Details: []dto.DetailRequest{
				{ID: "d-1", Description: "a"},
				{ID: "d-1", Description: "b"},
			}},
			wantErr:   true,
			wantField: "details[1].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTaskRequest_ToInput(t *testing.T) {
	t.Parallel()

	t.Run("omitted details stay nil", func(t *testing.T) {
		t.Parallel()

		in := (&dto.UpdateTaskRequest{Status: stringPtr("completed")}).ToInput()
		if in.Details != nil {
			t.Errorf("Details = %v, want nil", in.Details)
		}
		if in.Status == nil || *in.Status != task.StatusCompleted {
			t.Errorf("Status = %v, want completed", in.Status)
		}
		if in.Title != nil {
			t.Errorf("Title = %v, want nil", in.Title)
		}
	})

	t.Run("empty details clear", func(t *testing.T) {
		t.Parallel()

		in := (&dto.UpdateTaskRequest{Details: []dto.DetailRequest{}}).ToInput()
		if in.Details == nil || len(in.Details) != 0 {
			t.Errorf("Details = %#v, want empty non-nil", in.Details)
		}
	})

	t.Run("detail ids kept", func(t *testing.T) {
		t.Parallel()

		in := (&dto.UpdateTaskRequest{Details: []dto.DetailRequest{{ID: "d-1", Description: "x"}}}).ToInput()
		if in.Details[0].ID != "d-1" {
			t.Errorf("Details[0].ID = %q, want d-1", in.Details[0].ID)
		}
	})
}
