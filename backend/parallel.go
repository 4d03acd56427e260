package backend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelReduce computes the associative fold
//
//	combine(combine(fn(0), fn(1)), ..., fn(n-1))
//
// starting from identity, splitting [0, n) into fixed-size chunks run
// concurrently via errgroup.Group, then sequentially combining the
// per-chunk partial results. This is the Go analogue of the source's
// par_iter().map().reduce(identity, op): the split point does not
// affect the result because every fold here is over an associative
// group operation (point addition, pairing-target multiplication, or
// boolean AND) with a true identity element.
//
// n <= 0 returns identity without spawning any goroutine.
func ParallelReduce[T any](n int, identity T, combine func(a, b T) T, fn func(i int) T) T {
	if n <= 0 {
		return identity
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		acc := identity
		for i := 0; i < n; i++ {
			acc = combine(acc, fn(i))
		}
		return acc
	}

	chunk := (n + workers - 1) / workers
	partials := make([]T, workers)
	for w := range partials {
		partials[w] = identity
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			acc := identity
			for i := start; i < end; i++ {
				acc = combine(acc, fn(i))
			}
			partials[w] = acc
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error; reductions are pure.

	acc := identity
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}
