package ports

import "context"

// HealthChecker reports whether one dependency can serve traffic. The item
// store client and the compensation journal implement it.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "item-store".
	Name() string
	// HealthCheck returns nil when healthy. It must honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check and returns the results by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
