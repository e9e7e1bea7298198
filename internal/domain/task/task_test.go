package task

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
)

func strPtr(s string) *string { return &s }

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("got nil error, want validation error")
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

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{status: StatusPending, want: true},
		{status: StatusInProgress, want: true},
		{status: StatusCompleted, want: true},
		{status: "", want: false},
		{status: "done", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userID    int64
		title     string
		status    Status
		details   []Detail
		wantField string
		wantTitle string
		wantState Status
	}{
		{
			name:      "trims title and defaults status",
			userID:    1,
			title:     "  Buy milk  ",
			wantTitle: "Buy milk",
			wantState: StatusPending,
		},
		{
			name:      "keeps explicit status",
			userID:    1,
			title:     "Ship it",
			status:    StatusInProgress,
			wantTitle: "Ship it",
			wantState: StatusInProgress,
		},
		{
			name:      "empty title rejected",
			userID:    1,
			title:     "   ",
			wantField: "task_title",
		},
		{
			name:      "non-positive user rejected",
			userID:    0,
			title:     "x",
			wantField: "user_id",
		},
		{
			name:      "unknown status rejected",
			userID:    1,
			title:     "x",
			status:    "archived",
			wantField: "status",
		},
		{
			name:      "detail without description rejected",
			userID:    1,
			title:     "x",
			details:   []Detail{{Description: " "}},
			wantField: "details[0].description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.userID, tt.title, tt.status, tt.details)
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Status != tt.wantState {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantState)
			}
			if got.ID != "" {
				t.Errorf("ID = %q, want empty for a new task", got.ID)
			}
		})
	}
}

func TestNew_CopiesDetails(t *testing.T) {
	t.Parallel()

	details := []Detail{{Description: "one"}}
	got, err := New(1, "t", "", details)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	details[0].Description = "changed"
	if got.Details[0].Description != "one" {
		t.Errorf("Details[0].Description = %q, want %q", got.Details[0].Description, "one")
	}
}

func TestUpdateTitle(t *testing.T) {
	t.Parallel()

	tk := Reconstruct("1", 1, "A", StatusPending, nil)

	if err := tk.UpdateTitle(" B "); err != nil {
		t.Fatalf("UpdateTitle() error = %v", err)
	}
	if tk.Title != "B" {
		t.Errorf("Title = %q, want B", tk.Title)
	}

	requireValidationField(t, tk.UpdateTitle(""), "task_title")
	if tk.Title != "B" {
		t.Errorf("Title changed on rejected update: %q", tk.Title)
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
	}{
		{name: "pending to in_progress", from: StatusPending, to: StatusInProgress},
		{name: "in_progress to completed", from: StatusInProgress, to: StatusCompleted},
		{name: "completed stays completed", from: StatusCompleted, to: StatusCompleted},
		{name: "completed to pending rejected", from: StatusCompleted, to: StatusPending, wantErr: domain.ErrConflict},
		{name: "invalid status rejected", from: StatusPending, to: "nope", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tk := Reconstruct("1", 1, "A", tt.from, nil)
			err := tk.UpdateStatus(tt.to)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
				}
				if tk.Status != tt.from {
					t.Errorf("Status = %q, want unchanged %q", tk.Status, tt.from)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus() error = %v", err)
			}
			if tk.Status != tt.to {
				t.Errorf("Status = %q, want %q", tk.Status, tt.to)
			}
		})
	}
}

func TestAddRemoveDetail(t *testing.T) {
	t.Parallel()

	tk := Reconstruct("1", 1, "A", StatusPending, nil)
	tk.AddDetail(ReconstructDetail("d1", "1", "first", nil))
	tk.AddDetail(ReconstructDetail("d2", "1", "second", strPtr("n")))

	tk.RemoveDetail("d1")
	tk.RemoveDetail("missing")

	if len(tk.Details) != 1 || tk.Details[0].ID != "d2" {
		t.Fatalf("Details = %+v, want only d2", tk.Details)
	}
}

func TestReplaceDetails(t *testing.T) {
	t.Parallel()

	tk := Reconstruct("1", 1, "A", StatusPending, []Detail{{ID: "old", Description: "old"}})

	err := tk.ReplaceDetails([]Detail{{Description: "ok"}, {Description: ""}})
	requireValidationField(t, err, "details[1].description")
	if tk.Details[0].ID != "old" {
		t.Error("details replaced despite validation failure")
	}

	if err := tk.ReplaceDetails([]Detail{{Description: "new"}}); err != nil {
		t.Fatalf("ReplaceDetails() error = %v", err)
	}
	if len(tk.Details) != 1 || tk.Details[0].Description != "new" {
		t.Errorf("Details = %+v, want single new detail", tk.Details)
	}
}

func TestNewDetail(t *testing.T) {
	t.Parallel()

	d, err := NewDetail("  desc ", strPtr("note"))
	if err != nil {
		t.Fatalf("NewDetail() error = %v", err)
	}
	if d.Description != "desc" || d.Notes == nil || *d.Notes != "note" {
		t.Errorf("NewDetail() = %+v", d)
	}

	_, err = NewDetail("", nil)
	requireValidationField(t, err, "description")
}
