// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach calls fn for every index in [0, n) with at most MaxTasks calls
// running at once. The first error cancels the context passed to the
// remaining calls and is returned; indices not yet started are skipped.
func ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error, opts ...Option) error {
	if n <= 0 {
		return ctx.Err()
	}
	o := gatherOptions(opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxTasks)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// Map applies fn to every element of in and returns the results in input
// order. On error the partial results are discarded.
func Map[In, Out any](ctx context.Context, in []In, fn func(ctx context.Context, x In) (Out, error), opts ...Option) ([]Out, error) {
	out := make([]Out, len(in))
	err := ForEach(ctx, len(in), func(ctx context.Context, i int) error {
		y, err := fn(ctx, in[i])
		if err != nil {
			return err
		}
		out[i] = y
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}
