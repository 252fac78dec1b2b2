package utils

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is what one item of a ParallelMap produced
type Outcome[R any] struct {
	Value R
	Err   error
}

// ParallelMap calls fn for every item with at most workers calls in flight
// and returns the outcomes in item order. A failing item does not stop the
// others; cancel ctx for that. Items not yet started when ctx is done are
// not run and carry ctx.Err().
func ParallelMap[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) []Outcome[R] {
	outcomes := make([]Outcome[R], len(items))
	if workers <= 0 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			value, err := fn(ctx, item)
			outcomes[i] = Outcome[R]{Value: value, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

// Errors returns the non-nil errors of outcomes, in item order
func Errors[R any](outcomes []Outcome[R]) []error {
	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errs
}
