package saga

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
)

// ErrNotRunning is returned by Register when the unit of work is not in the
// Running state, e.g. after it has committed or while it is compensating.
var ErrNotRunning = errors.New("saga: unit of work is not running")

// State is the lifecycle state of a unit of work.
//
//	Idle -> Running -> Committed
//	                -> Compensating -> Failed
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCommitted
	StateCompensating
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCommitted:
		return "committed"
	case StateCompensating:
		return "compensating"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// UnitOfWork is the rollback log for one logical multi-step mutation. The
// function passed to Coordinator.Run registers the inverse of each remote
// effect immediately after that effect commits; the log is append-only and
// owned by a single Run call.
type UnitOfWork struct {
	id   string
	name string

	mu    sync.Mutex
	state State
	log   []rollback.Operation
}

func newUnit(name string) *UnitOfWork {
	return &UnitOfWork{id: uuid.NewString(), name: name, state: StateIdle}
}

// ID returns the unique id of this unit of work.
func (u *UnitOfWork) ID() string { return u.id }

// Name returns the logical operation name, e.g. "task.create".
func (u *UnitOfWork) Name() string { return u.name }

// State returns the current lifecycle state.
func (u *UnitOfWork) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Len returns the number of registered operations.
func (u *UnitOfWork) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.log)
}

// Operations returns a copy of the registered operations in registration
// order.
func (u *UnitOfWork) Operations() []rollback.Operation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.log)
}

// Register appends the inverse of a remote effect that has just committed.
// Call it before starting the next step so the effect can be compensated if
// that step fails.
//
// Returns ErrNotRunning outside the Running state and wraps
// rollback.ErrInvalidOperation when op is malformed.
func (u *UnitOfWork) Register(op rollback.Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.state != StateRunning {
		return fmt.Errorf("%w: %s is %s", ErrNotRunning, u.name, u.state)
	}
	u.log = append(u.log, op)
	return nil
}

// transition moves the unit to the next state and returns the log as it was.
// Entering a terminal state clears the log.
func (u *UnitOfWork) transition(to State) []rollback.Operation {
	u.mu.Lock()
	defer u.mu.Unlock()

	ops := u.log
	u.state = to
	if to == StateCommitted || to == StateFailed {
		u.log = nil
	}
	return ops
}
