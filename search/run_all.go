package search

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazesearch/maze"
)

// RunAll runs every algorithm in algs on m concurrently, one goroutine per
// algorithm, and returns their metrics in the order of algs. An empty algs
// means All().
//
// A run that aborts on a broken invariant or hook error does not affect the
// others: its slot holds Metrics with only Algorithm, Name, Optimal and Err
// set. RunAll itself fails for a nil maze, an unknown algorithm, an invalid
// option, or when ctx is cancelled.
//
// Hooks passed in opts are shared by all goroutines and must be safe for
// concurrent use.
func RunAll(ctx context.Context, m *maze.Maze, algs []Algorithm, opts ...Option) ([]*Metrics, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if len(algs) == 0 {
		algs = All()
	}
	for _, a := range algs {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
		}
	}

	out := make([]*Metrics, len(algs))
	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		g.Go(func() error {
			runOpts := make([]Option, 0, len(opts)+1)
			runOpts = append(runOpts, opts...)
			runOpts = append(runOpts, WithContext(gctx))

			res, err := Run(m, alg, runOpts...)
			switch {
			case err == nil:
				out[i] = res
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrOptionViolation):
				return err
			default:
				out[i] = &Metrics{
					Algorithm: alg,
					Name:      alg.Name(),
					Path:      []maze.Position{},
					Optimal:   alg.Optimal(),
					Err:       err,
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
