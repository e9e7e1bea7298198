// Package health keeps the set of components the readiness probe asks about:
// the item store (client breaker or in-memory store) and, when enabled, the
// compensation journal.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// DefaultCheckTimeout bounds each individual check.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry runs registered checks concurrently. Safe for concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A later checker with the same name replaces the
// earlier one in CheckAll results.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check in parallel, each under its own timeout, and
// returns the results by name. A nil value means healthy. A check that
// overruns its timeout is reported as failing even if it ignores ctx.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.checkers))
	index := make(map[string]int, len(r.checkers))
	for _, c := range r.checkers {
		name := c.Name()
		if i, ok := index[name]; ok {
			checkers[i] = c
			continue
		}
		index[name] = len(checkers)
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = r.check(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return fmt.Errorf("%s: health check timed out after %s", c.Name(), r.timeout)
	}
}
