// Package saga implements compensating transactions over the remote item
// store, which offers no multi-item atomicity.
//
// A Coordinator runs one unit of work per call. The unit's function performs
// remote calls strictly in sequence and, right after each call commits,
// registers the operation that inverts it:
//
//	err := coord.Run(ctx, "task.create", func(ctx context.Context, u *saga.UnitOfWork) error {
//	    created, err := store.CreateItem(ctx, "tasks", fields)
//	    if err != nil {
//	        return err
//	    }
//	    return u.Register(rollback.DeleteItem(created.Ref))
//	})
//
// When the function succeeds the log is discarded. When it fails or panics,
// the log is replayed newest-first. Undo failures are logged and journaled
// but never replace the error that triggered compensation: Run returns that
// original error value unchanged.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// Results recorded on spans and metrics.
const (
	resultCommitted   = "committed"
	resultCompensated = "compensated"
	stepOK            = "ok"
	stepFailed        = "failed"
)

// errNilUnit is returned by Run when fn is nil.
var errNilUnit = errors.New("saga: nil unit function")

// Coordinator executes units of work with reverse-order compensation. A
// single Coordinator is safe for concurrent use: every Run call gets its
// own UnitOfWork and log.
type Coordinator struct {
	store               ports.ItemStore
	journal             ports.CompensationJournal
	metrics             *telemetry.Metrics
	logger              *slog.Logger
	compensationTimeout time.Duration
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithJournal records every failed undo to j.
func WithJournal(j ports.CompensationJournal) Option {
	return func(c *Coordinator) { c.journal = j }
}

// WithMetrics records unit and compensation step metrics. Nil disables them.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// WithCompensationTimeout bounds the whole compensation pass. Zero means no
// bound beyond what the store's own client enforces.
func WithCompensationTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.compensationTimeout = d }
}

// NewCoordinator creates a Coordinator that compensates against store.
func NewCoordinator(store ports.ItemStore, logger *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{store: store, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes fn as one unit of work named name.
//
// On success the log is discarded without running any undo. On error the
// registered operations are undone newest-first and the error fn returned is
// returned as-is. A panic in fn is compensated the same way and then
// re-raised.
//
// Compensation ignores cancellation of ctx: once a unit has started it runs
// to commit or to a full compensation attempt.
func (c *Coordinator) Run(ctx context.Context, name string, fn func(context.Context, *UnitOfWork) error) error {
	if fn == nil {
		return errNilUnit
	}

	u := newUnit(name)
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer("saga").Start(ctx, "saga "+name,
		trace.WithAttributes(
			attribute.String("saga.unit_id", u.ID()),
			attribute.String("saga.unit", name),
		),
	)
	defer span.End()

	u.transition(StateRunning)

	finished := false
	defer func() {
		if finished {
			return
		}
		// fn panicked or called runtime.Goexit.
		r := recover()
		cause := fmt.Errorf("saga: unit %s aborted: %v", name, r)
		c.compensate(ctx, u, cause)
		c.finish(ctx, span, u, start, cause)
		if r != nil {
			panic(r)
		}
	}()

	err := fn(ctx, u)
	finished = true

	if err == nil {
		span.SetAttributes(attribute.Int("saga.steps", u.Len()))
		u.transition(StateCommitted)
		c.finish(ctx, span, u, start, nil)
		return nil
	}

	c.compensate(ctx, u, err)
	c.finish(ctx, span, u, start, err)
	return err
}

// Do is the result-returning form of Coordinator.Run.
func Do[T any](ctx context.Context, c *Coordinator, name string, fn func(context.Context, *UnitOfWork) (T, error)) (T, error) {
	var out T
	err := c.Run(ctx, name, func(ctx context.Context, u *UnitOfWork) error {
		v, err := fn(ctx, u)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// compensate replays the unit's log newest-first. Each undo failure is
// logged and journaled, and the loop moves on to the next entry.
func (c *Coordinator) compensate(ctx context.Context, u *UnitOfWork, cause error) {
	ops := u.transition(StateCompensating)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("saga.steps", len(ops)))

	ctx = context.WithoutCancel(ctx)
	if c.compensationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.compensationTimeout)
		defer cancel()
	}

	if len(ops) > 0 {
		c.logger.WarnContext(ctx, "unit of work failed, compensating",
			slog.String("operation", u.Name()),
			slog.String("unit_id", u.ID()),
			slog.Int("steps", len(ops)),
			slog.Any("error", cause),
		)
	}

	undo := newUndoer(c.store)
	failed := 0

	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]

		c.logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", u.Name()),
			slog.String("unit_id", u.ID()),
			slog.Int("step", i+1),
			slog.String("action", op.Description()),
		)

		if err := undo.apply(ctx, op); err != nil {
			failed++
			c.logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", u.Name()),
				slog.String("unit_id", u.ID()),
				slog.Int("step", i+1),
				slog.String("action", op.Description()),
				slog.Any("error", err),
			)
			c.recordStep(ctx, op, stepFailed)
			c.journalFailure(ctx, u, i+1, undo.resolved(op), err)
			continue
		}
		c.recordStep(ctx, op, stepOK)
	}

	if failed > 0 {
		c.logger.ErrorContext(ctx, "compensation incomplete, remote store may be inconsistent",
			slog.String("operation", u.Name()),
			slog.String("unit_id", u.ID()),
			slog.Int("failed_steps", failed),
			slog.Int("steps", len(ops)),
		)
	}

	u.transition(StateFailed)
}

func (c *Coordinator) journalFailure(ctx context.Context, u *UnitOfWork, step int, op rollback.Operation, cause error) {
	if c.journal == nil {
		return
	}

	err := c.journal.Record(ctx, rollback.Failure{
		UnitID:    u.ID(),
		UnitName:  u.Name(),
		Step:      step,
		Operation: op,
		Cause:     cause.Error(),
		Attempts:  1,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to journal rollback failure",
			slog.String("operation", u.Name()),
			slog.String("unit_id", u.ID()),
			slog.Int("step", step),
			slog.String("action", op.Description()),
			slog.Any("error", err),
		)
	}
}

func (c *Coordinator) recordStep(ctx context.Context, op rollback.Operation, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.SagaCompensationStepTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrRollbackKind.String(op.Kind.String()),
		telemetry.AttrResult.String(result),
	))
}

// finish closes out the span and records unit metrics.
func (c *Coordinator) finish(ctx context.Context, span trace.Span, u *UnitOfWork, start time.Time, err error) {
	result := resultCommitted
	if err != nil {
		result = resultCompensated
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("saga.result", result))

	if c.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrSagaUnit.String(u.Name()),
		telemetry.AttrResult.String(result),
	)
	c.metrics.SagaUnitDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.SagaUnitTotal.Add(ctx, 1, attrs)
}
