package health_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-saga-service/internal/platform/health"
	"github.com/jsamuelsen11/task-saga-service/mocks"
)

// funcChecker adapts a function to ports.HealthChecker.
type funcChecker struct {
	name  string
	check func(context.Context) error
}

func (f funcChecker) Name() string                          { return f.name }
func (f funcChecker) HealthCheck(ctx context.Context) error { return f.check(ctx) }

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil || len(results) != 0 {
		t.Errorf("CheckAll() = %v, want an empty non-nil map", results)
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockHealthChecker(t)
	store.EXPECT().Name().Return("item-store")
	store.EXPECT().HealthCheck(mock.Anything).Return(errors.New("item-store: failing (circuit breaker open)"))

	journal := mocks.NewMockHealthChecker(t)
	journal.EXPECT().Name().Return("compensation-journal")
	journal.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(store)
	r.Register(journal)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results["compensation-journal"] != nil {
		t.Errorf("journal = %v, want nil", results["compensation-journal"])
	}
	if err := results["item-store"]; err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
		t.Errorf("item-store = %v, want breaker error", err)
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("item-store")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	if err := r.CheckAll(ctx)["item-store"]; !errors.Is(err, context.Canceled) {
		t.Errorf("item-store = %v, want context.Canceled", err)
	}
}

func TestCheckAll_ChecksCarryDeadline(t *testing.T) {
	t.Parallel()

	var got time.Duration
	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(funcChecker{name: "journal", check: func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		if !ok {
			return errors.New("no deadline")
		}
		got = time.Until(deadline)
		return nil
	}})

	if err := r.CheckAll(context.Background())["journal"]; err != nil {
		t.Fatalf("journal = %v, want nil", err)
	}
	if got <= 0 || got > time.Second {
		t.Errorf("remaining deadline = %s, want within (0, 1s]", got)
	}
}

func TestCheckAll_SlowCheckTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(funcChecker{name: "stuck", check: func(context.Context) error {
		<-release // ignores ctx
		return nil
	}})
	r.Register(funcChecker{name: "fast", check: func(context.Context) error { return nil }})

	start := time.Now()
	results := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %s, want it bounded by the check timeout", elapsed)
	}
	if err := results["stuck"]; err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Errorf("stuck = %v, want timeout error", err)
	}
	if results["fast"] != nil {
		t.Errorf("fast = %v, want nil", results["fast"])
	}
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	const n = 3
	var arrived sync.WaitGroup
	arrived.Add(n)

	r := health.New(health.WithCheckTimeout(time.Second))
	for _, name := range []string{"a", "b", "c"} {
		r.Register(funcChecker{name: name, check: func(context.Context) error {
			arrived.Done()
			arrived.Wait() // only returns once all n checks are running
			return nil
		}})
	}

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s = %v, want nil", name, err)
		}
	}
}

func TestCheckAll_DuplicateNamesLastRegisteredWins(t *testing.T) {
	t.Parallel()

	secondErr := errors.New("second failure")

	r := health.New()
	r.Register(funcChecker{name: "item-store", check: func(context.Context) error { return nil }})
	r.Register(funcChecker{name: "item-store", check: func(context.Context) error { return secondErr }})

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if !errors.Is(results["item-store"], secondErr) {
		t.Errorf("item-store = %v, want %v", results["item-store"], secondErr)
	}
}

func TestCheckAll_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				r.Register(funcChecker{name: "checker", check: func(context.Context) error { return nil }})
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
