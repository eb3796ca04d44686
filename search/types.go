package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/mazesearch/internal/logging"
	"github.com/katalvlaran/mazesearch/maze"
)

// Sentinel errors for search execution.
var (
	// ErrNilMaze is returned when a nil *maze.Maze is passed.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside All().
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidPath is returned by ValidatePath for a path that is not a
	// legal start-to-goal walk.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Algorithm selects one of the seven search strategies.
type Algorithm int

// Supported algorithms, in reporting order.
const (
	BreadthFirst Algorithm = iota
	DepthFirst
	UniformCost
	GreedyManhattan
	AStarManhattan
	GreedyChebyshev
	AStarChebyshev
	algorithmCount
)

// All returns every algorithm in reporting order.
func All() []Algorithm {
	out := make([]Algorithm, 0, algorithmCount)
	for a := BreadthFirst; a < algorithmCount; a++ {
		out = append(out, a)
	}

	return out
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return a >= BreadthFirst && a < algorithmCount }

// String returns the stable identifier of a, e.g. "astar-manhattan".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return strategies[a].id
}

// Name returns the human-readable name of a, e.g. "A* (Manhattan)".
func (a Algorithm) Name() string {
	if !a.Valid() {
		return a.String()
	}

	return strategies[a].name
}

// Optimal reports whether a always returns a minimum-cost path on a
// unit-cost maze. It is a property of the algorithm, not of a result.
func (a Algorithm) Optimal() bool {
	return a.Valid() && strategies[a].optimal
}

// MarshalText encodes a as its identifier.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText decodes an identifier produced by MarshalText.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// ParseAlgorithm maps an identifier (case-insensitive; "a*" is accepted
// for "astar") to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "a*", "astar")
	key = strings.ReplaceAll(key, "_", "-")
	for a := BreadthFirst; a < algorithmCount; a++ {
		if strategies[a].id == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Metrics is the outcome of one search run.
type Metrics struct {
	Algorithm Algorithm
	Name      string

	// Success is true when the goal was popped from the frontier.
	Success bool
	// Cost is the accumulated cost of Path, 0 when Success is false.
	Cost float64
	// Path runs from start to goal inclusive; empty when Success is false.
	Path []maze.Position

	// Expanded counts popped non-goal nodes; ExpandedOrder lists their
	// positions in expansion order (a position may repeat in UCS/A*).
	Expanded      int
	ExpandedOrder []maze.Position
	// Generated counts nodes created, root included.
	Generated int
	// PeakMemory is the largest frontier+visited size sampled before a pop.
	PeakMemory int

	Elapsed time.Duration

	// Optimal mirrors Algorithm.Optimal; Complete mirrors Success.
	Optimal  bool
	Complete bool

	// Err is set only by RunAll when this run aborted on an invariant
	// violation; the other fields then hold zero values.
	Err error
}

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// OnExpand is called after a node is counted as expanded with its
	// position and the running expanded count. An error aborts the run.
	OnExpand func(p maze.Position, expanded int) error

	// OnGenerate is called for every successor pushed to the frontier.
	OnGenerate func(p maze.Position)

	// Logger receives a Debug record per finished run.
	Logger *slog.Logger

	// Clock supplies timestamps for Elapsed.
	Clock func() time.Time

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// a discarding logger and time.Now as clock.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnExpand:   func(maze.Position, int) error { return nil },
		OnGenerate: func(maze.Position) {},
		Logger:     logging.NewNop(),
		Clock:      time.Now,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a hook run on every expansion.
func WithOnExpand(fn func(p maze.Position, expanded int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a hook run on every pushed successor.
func WithOnGenerate(fn func(p maze.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces time.Now for Elapsed measurement.
// A nil clock is an ErrOptionViolation.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now == nil {
			o.err = fmt.Errorf("%w: clock is nil", ErrOptionViolation)
			return
		}
		o.Clock = now
	}
}
