package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Fork runs action once per worker index in [0, workers), each in its own goroutine.
// It waits for all goroutines to finish and returns the first error encountered.
// Workers are not cancelled when a sibling fails; ctx is handed through untouched.
func Fork(ctx context.Context, workers int, action func(ctx context.Context, worker int) error) error {
	errGroup := errgroup.Group{}
	for w := 0; w < workers; w++ {
		errGroup.Go(func() error {
			return action(ctx, w)
		})
	}
	return errGroup.Wait()
}

// Collect runs mapFn per worker index and gathers the results in index order.
func Collect[R any](ctx context.Context, workers int, mapFn func(ctx context.Context, worker int) (R, error)) ([]R, error) {
	out := make([]R, max(workers, 0))
	err := Fork(ctx, workers, func(ctx context.Context, worker int) error {
		r, err := mapFn(ctx, worker)
		out[worker] = r
		return err
	})
	return out, err
}
