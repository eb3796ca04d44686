// Package heuristic provides admissible distance estimates between grid
// positions for informed search.
//
// Under 4-directional unit-cost movement the true shortest-path length
// between a and b is at least their Manhattan distance, which in turn is
// at least their Euclidean and Chebyshev distances. All three are
// therefore admissible; Manhattan is the tightest.
//
// Heuristics form a closed set selected by Kind, so callers dispatch on a
// value rather than on an open interface.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mazesearch/maze"
)

// ErrUnknownKind is returned by ParseKind for an unrecognised name.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Func estimates the remaining cost from a to b. Results are non-negative.
type Func func(a, b maze.Position) float64

// Kind enumerates the available heuristics.
type Kind int

const (
	// KindNone is the zero heuristic used by uninformed searches.
	KindNone Kind = iota
	// KindManhattan is |Δrow| + |Δcol|.
	KindManhattan
	// KindEuclidean is sqrt(Δrow² + Δcol²).
	KindEuclidean
	// KindChebyshev is max(|Δrow|, |Δcol|).
	KindChebyshev
)

// Zero always returns 0.
func Zero(_, _ maze.Position) float64 { return 0 }

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b maze.Position) float64 {
	dr, dc := absDelta(a, b)

	return float64(dr + dc)
}

// Euclidean returns the straight-line distance sqrt(Δrow² + Δcol²).
func Euclidean(a, b maze.Position) float64 {
	dr, dc := absDelta(a, b)

	return math.Sqrt(float64(dr*dr + dc*dc))
}

// Chebyshev returns max(|Δrow|, |Δcol|).
func Chebyshev(a, b maze.Position) float64 {
	dr, dc := absDelta(a, b)

	return float64(max(dr, dc))
}

func absDelta(a, b maze.Position) (int, int) {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr, dc
}

// Func returns the distance function for k. Unknown kinds map to Zero.
func (k Kind) Func() Func {
	switch k {
	case KindManhattan:
		return Manhattan
	case KindEuclidean:
		return Euclidean
	case KindChebyshev:
		return Chebyshev
	}

	return Zero
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindManhattan:
		return "manhattan"
	case KindEuclidean:
		return "euclidean"
	case KindChebyshev:
		return "chebyshev"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return KindNone, nil
	case "manhattan":
		return KindManhattan, nil
	case "euclidean":
		return KindEuclidean, nil
	case "chebyshev":
		return KindChebyshev, nil
	}

	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
