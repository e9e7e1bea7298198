// Package sqlite implements the compensation journal on a local SQLite
// database. Each row is one undo operation that failed while a unit of work
// was compensating; rows stay pending until a replay resolves them.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time interface check.
var _ ports.CompensationJournal = (*Journal)(nil)

// Journal is a [ports.CompensationJournal] backed by SQLite.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the journal database at path. ":memory:" gives a
// private in-memory journal.
//
// The database is configured with:
//   - WAL mode so the compensator CLI can read while the service writes
//   - a 5-second busy timeout for lock contention
//   - a single connection, since SQLite allows one writer at a time
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to journal %s: %w", path, err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("executing %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying journal schema: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Name identifies the journal in health reports.
func (j *Journal) Name() string {
	return "compensation-journal"
}

// HealthCheck pings the database.
func (j *Journal) HealthCheck(ctx context.Context) error {
	if err := j.db.PingContext(ctx); err != nil {
		return fmt.Errorf("compensation journal: %w", err)
	}
	return nil
}

// Record stores f as pending with f.Attempts attempts already made. f.ID and
// the timestamps are assigned here.
func (j *Journal) Record(ctx context.Context, f rollback.Failure) error {
	op, err := json.Marshal(f.Operation)
	if err != nil {
		return fmt.Errorf("encoding operation: %w", err)
	}

	ts := j.now().UnixNano()
	_, err = j.db.ExecContext(ctx, `
		INSERT INTO compensation_failures
			(unit_id, unit_name, step, operation, cause, attempts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.UnitID, f.UnitName, f.Step, string(op), f.Cause, max(f.Attempts, 0), ts, ts,
	)
	if err != nil {
		return fmt.Errorf("recording compensation failure for unit %s: %w", f.UnitID, err)
	}
	return nil
}

// Pending returns unresolved failures oldest first. limit <= 0 returns all.
func (j *Journal) Pending(ctx context.Context, limit int) ([]rollback.Failure, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, unit_id, unit_name, step, operation, cause, attempts, created_at, updated_at
		FROM compensation_failures
		WHERE resolved_at IS NULL
		ORDER BY id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying pending compensations: %w", err)
	}
	defer rows.Close()

	var out []rollback.Failure
	for rows.Next() {
		f, err := scanFailure(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending compensations: %w", err)
	}
	return out, nil
}

// MarkAttempt bumps the attempt count of a pending failure and replaces its
// operation and cause.
func (j *Journal) MarkAttempt(ctx context.Context, id int64, op rollback.Operation, cause string) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("encoding operation of failure %d: %w", id, err)
	}

	res, err := j.db.ExecContext(ctx, `
		UPDATE compensation_failures
		SET attempts = attempts + 1, operation = ?, cause = ?, updated_at = ?
		WHERE id = ? AND resolved_at IS NULL`,
		string(data), cause, j.now().UnixNano(), id,
	)
	if err != nil {
		return fmt.Errorf("marking attempt for failure %d: %w", id, err)
	}
	return requireRow(res, id)
}

// Resolve marks a pending failure as replayed. Resolved rows are kept for
// audit and no longer returned by Pending.
func (j *Journal) Resolve(ctx context.Context, id int64) error {
	ts := j.now().UnixNano()
	res, err := j.db.ExecContext(ctx, `
		UPDATE compensation_failures
		SET resolved_at = ?, updated_at = ?
		WHERE id = ? AND resolved_at IS NULL`,
		ts, ts, id,
	)
	if err != nil {
		return fmt.Errorf("resolving failure %d: %w", id, err)
	}
	return requireRow(res, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFailure(s scanner) (rollback.Failure, error) {
	var (
		f                rollback.Failure
		op               string
		created, updated int64
	)
	if err := s.Scan(&f.ID, &f.UnitID, &f.UnitName, &f.Step, &op, &f.Cause, &f.Attempts, &created, &updated); err != nil {
		return rollback.Failure{}, fmt.Errorf("scanning compensation failure: %w", err)
	}
	// Numbers stay json.Number so int64 snapshot values survive the trip.
	dec := json.NewDecoder(strings.NewReader(op))
	dec.UseNumber()
	if err := dec.Decode(&f.Operation); err != nil {
		return rollback.Failure{}, fmt.Errorf("decoding operation of failure %d: %w", f.ID, err)
	}
	f.CreatedAt = time.Unix(0, created).UTC()
	f.UpdatedAt = time.Unix(0, updated).UTC()
	return f, nil
}

// requireRow maps an update that touched nothing to domain.ErrNotFound.
func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows for failure %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("pending failure %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
