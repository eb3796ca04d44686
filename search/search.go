package search

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/heuristic"
	"github.com/katalvlaran/mazesearch/maze"
)

// Run searches m from its start to its goal with alg.
// Returns ErrNilMaze, ErrUnknownAlgorithm or ErrOptionViolation for bad
// input; a wrapped hook, context or invariant error if the run aborted.
// An unreachable goal is reported through Metrics.Success, not as an error.
func Run(m *maze.Maze, alg Algorithm, opts ...Option) (*Metrics, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := newWalker(m, alg, strategies[alg], o)
	began := o.Clock()
	w.init()
	err := w.loop()
	w.res.Elapsed = o.Clock().Sub(began)
	if err != nil {
		o.Logger.Debug("search aborted", "algorithm", alg.String(), "expanded", w.res.Expanded, "error", err)
		return nil, fmt.Errorf("search: %s: %w", alg, err)
	}
	w.finish()

	o.Logger.Debug("search finished",
		"algorithm", alg.String(),
		"success", w.res.Success,
		"cost", w.res.Cost,
		"expanded", w.res.Expanded,
		"peak_memory", w.res.PeakMemory,
		"elapsed", w.res.Elapsed,
	)

	return w.res, nil
}

// BFS runs breadth-first search.
func BFS(m *maze.Maze, opts ...Option) (*Metrics, error) {
	return Run(m, BreadthFirst, opts...)
}

// DFS runs depth-first search.
func DFS(m *maze.Maze, opts ...Option) (*Metrics, error) {
	return Run(m, DepthFirst, opts...)
}

// UCS runs uniform-cost search.
func UCS(m *maze.Maze, opts ...Option) (*Metrics, error) {
	return Run(m, UniformCost, opts...)
}

// Greedy runs greedy best-first search with heuristic k
// (KindManhattan or KindChebyshev).
func Greedy(m *maze.Maze, k heuristic.Kind, opts ...Option) (*Metrics, error) {
	switch k {
	case heuristic.KindManhattan:
		return Run(m, GreedyManhattan, opts...)
	case heuristic.KindChebyshev:
		return Run(m, GreedyChebyshev, opts...)
	}

	return nil, fmt.Errorf("%w: greedy with %s heuristic", ErrUnknownAlgorithm, k)
}

// AStar runs A* with heuristic k (KindManhattan or KindChebyshev).
func AStar(m *maze.Maze, k heuristic.Kind, opts ...Option) (*Metrics, error) {
	switch k {
	case heuristic.KindManhattan:
		return Run(m, AStarManhattan, opts...)
	case heuristic.KindChebyshev:
		return Run(m, AStarChebyshev, opts...)
	}

	return nil, fmt.Errorf("%w: A* with %s heuristic", ErrUnknownAlgorithm, k)
}
