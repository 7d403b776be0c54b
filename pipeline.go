package collide

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// task calls fn for every element of data, running at most workersCount calls at once.
// The first error cancels the context handed to the remaining calls and is returned.
func task[T any](ctx context.Context, workersCount int, data []T, fn func(ctx context.Context, i int, data T) error) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(workersCount, 1))

	for i, d := range data {
		i, d := i, d
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i, d)
		})
	}

	return group.Wait()
}
