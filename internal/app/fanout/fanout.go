// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer reads. It runs a function across a slice of items using
// at most a fixed number of goroutines and preserves input order in the
// results.
//
// Fan-out is only for independent reads. Mutations that belong to a unit of
// work run strictly in sequence and never go through this package.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for each item using at most maxWorkers concurrent goroutines
// and returns the results in input order.
//
// The first error cancels the context passed to the remaining calls and is
// returned; the results slice is nil in that case. Items not yet started when
// the context is canceled are skipped.
//
// maxWorkers < 1 means no limit. If items is empty, Map returns an empty
// non-nil slice without calling fn.
func Map[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	results := make([]R, len(items))
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
