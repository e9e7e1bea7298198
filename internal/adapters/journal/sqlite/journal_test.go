package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
)

func openMemory(t *testing.T) *Journal {
	t.Helper()

	j, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func failure(unit string, step int, op rollback.Operation) rollback.Failure {
	return rollback.Failure{
		UnitID:    unit,
		UnitName:  "task.delete",
		Step:      step,
		Operation: op,
		Cause:     "item store unavailable",
	}
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer j.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestOpen_ReopenKeepsPendingRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	j1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	if err := j1.Record(ctx, failure("u1", 0, rollback.DeleteItem(item.Ref{Datastore: "tasks", ID: "t1"}))); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := j1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	j2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer j2.Close()

	got, err := j2.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if len(got) != 1 || got[0].UnitID != "u1" {
		t.Errorf("Pending() = %+v, want the recorded failure", got)
	}
}

func TestJournal_RecordAndPending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openMemory(t)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	task := item.Ref{Datastore: "tasks", ID: "t1"}
	detail := item.Ref{Datastore: "task_details", ID: "d1"}
	snapshot := item.Fields{"description": "read chapter 3", "notes": nil}

	if err := j.Record(ctx, failure("u1", 2, rollback.RecreateItem(detail, snapshot))); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := j.Record(ctx, failure("u1", 1, rollback.Link(task, detail))); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Pending()) = %d, want 2", len(got))
	}

	first := got[0]
	if first.ID == 0 {
		t.Error("ID was not assigned")
	}
	if first.Step != 2 || first.UnitName != "task.delete" || first.Cause != "item store unavailable" {
		t.Errorf("first = %+v", first)
	}
	if first.Operation.Kind != rollback.KindRecreateItem || first.Operation.Item != detail {
		t.Errorf("first.Operation = %+v", first.Operation)
	}
	if first.Operation.Fields.String("description") != "read chapter 3" {
		t.Errorf("snapshot = %v, want description preserved", first.Operation.Fields)
	}
	if !first.CreatedAt.Equal(fixed) || !first.UpdatedAt.Equal(fixed) {
		t.Errorf("timestamps = %v/%v, want %v", first.CreatedAt, first.UpdatedAt, fixed)
	}
	if first.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0 for a failure recorded without attempts", first.Attempts)
	}

	if got[1].Operation.Kind != rollback.KindLink || got[1].Operation.Other != detail {
		t.Errorf("second.Operation = %+v", got[1].Operation)
	}
	if got[1].ID <= first.ID {
		t.Errorf("ids out of order: %d then %d", first.ID, got[1].ID)
	}
}

func TestJournal_RecordKeepsAttempts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openMemory(t)

	f := failure("u1", 1, rollback.DeleteItem(item.Ref{Datastore: "tasks", ID: "t1"}))
	f.Attempts = 1
	if err := j.Record(ctx, f); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if got[0].Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1", got[0].Attempts)
	}

	if err := j.MarkAttempt(ctx, got[0].ID, got[0].Operation, "still down"); err != nil {
		t.Fatalf("MarkAttempt() error = %v", err)
	}
	got, err = j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if got[0].Attempts != 2 {
		t.Errorf("Attempts after MarkAttempt = %d, want 2", got[0].Attempts)
	}
}

func TestJournal_SnapshotKeepsInt64Precision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openMemory(t)

	const createdAt = int64(1792345678901234567) // above 2^53
	ref := item.Ref{Datastore: "tasks", ID: "t1"}
	snapshot := item.Fields{
		"task_title": "A",
		"created_at": createdAt,
		"meta":       map[string]any{"seq": createdAt},
	}

	if err := j.Record(ctx, failure("u1", 1, rollback.RecreateItem(ref, snapshot))); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	got, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	fields := got[0].Operation.Fields

	if n := fields.Int64("created_at"); n != createdAt {
		t.Errorf("created_at = %d, want %d", n, createdAt)
	}
	nested, ok := fields["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta = %T, want map", fields["meta"])
	}
	if n := item.Fields(nested).Int64("seq"); n != createdAt {
		t.Errorf("meta.seq = %d, want %d", n, createdAt)
	}
	if fields.String("task_title") != "A" {
		t.Errorf("task_title = %q, want A", fields.String("task_title"))
	}
}

func TestJournal_PendingLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openMemory(t)

	for i := range 3 {
		ref := item.Ref{Datastore: "tasks", ID: string(rune('a' + i))}
		if err := j.Record(ctx, failure("u1", i, rollback.DeleteItem(ref))); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := j.Pending(ctx, 2)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if len(got) != 2 || got[0].Operation.Item.ID != "a" || got[1].Operation.Item.ID != "b" {
		t.Errorf("Pending(2) = %+v, want the two oldest", got)
	}
}

func TestJournal_MarkAttempt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openMemory(t)

	task := item.Ref{Datastore: "tasks", ID: "t1"}
	detail := item.Ref{Datastore: "task_details", ID: "d1"}
	if err := j.Record(ctx, failure("u1", 0, rollback.Link(task, detail))); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	pending, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}

	later := pending[0].CreatedAt.Add(time.Minute)
	j.now = func() time.Time { return later }

	recreated := item.Ref{Datastore: "task_details", ID: "d2"}
	if err := j.MarkAttempt(ctx, pending[0].ID, rollback.Link(task, recreated), "still down"); err != nil {
		t.Fatalf("MarkAttempt() error = %v", err)
	}

	got, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if got[0].Attempts != 1 || got[0].Cause != "still down" {
		t.Errorf("after MarkAttempt: attempts=%d cause=%q", got[0].Attempts, got[0].Cause)
	}
	if !got[0].UpdatedAt.Equal(later.UTC()) {
		t.Errorf("UpdatedAt = %v, want %v", got[0].UpdatedAt, later)
	}
	if got[0].Operation.Other != recreated {
		t.Errorf("Operation = %s, want link to %s", got[0].Operation.Description(), recreated)
	}
}

func TestJournal_ResolveRemovesFromPending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openMemory(t)

	for _, id := range []string{"t1", "t2"} {
		if err := j.Record(ctx, failure("u1", 0, rollback.DeleteItem(item.Ref{Datastore: "tasks", ID: id}))); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	pending, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}

	if err := j.Resolve(ctx, pending[0].ID); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	got, err := j.Pending(ctx, 0)
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if len(got) != 1 || got[0].Operation.Item.ID != "t2" {
		t.Errorf("Pending() = %+v, want only t2", got)
	}

	if err := j.Resolve(ctx, pending[0].ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Resolve() error = %v, want ErrNotFound", err)
	}
	if err := j.MarkAttempt(ctx, pending[0].ID, pending[0].Operation, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MarkAttempt() on resolved error = %v, want ErrNotFound", err)
	}
}

func TestJournal_UnknownID(t *testing.T) {
	t.Parallel()

	j := openMemory(t)

	if err := j.Resolve(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Resolve(42) error = %v, want ErrNotFound", err)
	}
}

func TestJournal_Health(t *testing.T) {
	t.Parallel()

	j, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if j.Name() != "compensation-journal" {
		t.Errorf("Name() = %q", j.Name())
	}
	if err := j.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}

	_ = j.Close()
	if err := j.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after Close = nil, want error")
	}
}
