package arrowprime

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

var errNotPrime = errors.New("non-prime value found")

// ParallelIsPrimeMask computes the same mask as IsPrimeMask, splitting the
// column into chunks evaluated across opts.Workers goroutines. The values
// must be safe for concurrent reads. The only error returned is the error
// of ctx, in which case no mask is returned.
func ParallelIsPrimeMask(ctx context.Context, values NullableUint64s, opts ParallelOptions) ([]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := values.Len()
	if opts.workers() == 1 || n <= opts.chunkSize() {
		return IsPrimeMask(values), nil
	}

	mask := make([]bool, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for start := 0; start < n; start += opts.chunkSize() {
		end := min(start+opts.chunkSize(), n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillMask(values, mask[start:end], start)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mask, nil
}

// ParallelAreAllPrimes computes the same result as AreAllPrimes across
// opts.Workers goroutines. The first worker to find a non-prime value
// cancels the rest, which give up at their next context check.
func ParallelAreAllPrimes(ctx context.Context, values NullableUint64s, opts ParallelOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	n := values.Len()
	if opts.workers() == 1 || n <= opts.chunkSize() {
		return AreAllPrimes(values), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for start := 0; start < n && gctx.Err() == nil; start += opts.chunkSize() {
		end := min(start+opts.chunkSize(), n)
		g.Go(func() error {
			for lo := start; lo < end; lo += cancelCheckInterval {
				if err := gctx.Err(); err != nil {
					return err
				}
				if !allPrimes(values, lo, min(lo+cancelCheckInterval, end)) {
					return errNotPrime
				}
			}
			return nil
		})
	}

	err := g.Wait()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errNotPrime):
		return false, nil
	default:
		return false, err
	}
}
