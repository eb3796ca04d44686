package report

import (
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// MarkKind classifies one cell of an Overlay.
type MarkKind int

const (
	MarkOpen MarkKind = iota
	MarkWall
	MarkExpanded
	MarkPath
	MarkStart
	MarkGoal
)

// Mark is the state of one cell after a run.
// Rank is the 0-based order of the cell's first expansion, -1 if never expanded.
type Mark struct {
	Kind MarkKind
	Rank int
}

// Overlay is a maze annotated with the trace of one run.
type Overlay struct {
	Marks [][]Mark
	// Ranked is the number of distinct expanded positions.
	Ranked int
}

// NewOverlay classifies every cell of m. res may be nil, in which case only
// walls, start and goal are marked.
// Precedence: start and goal, then path, then expanded, then open.
func NewOverlay(m *maze.Maze, res *search.Metrics) Overlay {
	ranks := make(map[maze.Position]int)
	onPath := make(map[maze.Position]bool)
	if res != nil {
		for _, p := range res.ExpandedOrder {
			if _, ok := ranks[p]; !ok {
				ranks[p] = len(ranks)
			}
		}
		for _, p := range res.Path {
			onPath[p] = true
		}
	}

	marks := make([][]Mark, m.Height())
	for r := range marks {
		marks[r] = make([]Mark, m.Width())
		for c := range marks[r] {
			p := maze.Position{Row: r, Col: c}
			rank, ok := ranks[p]
			if !ok {
				rank = -1
			}
			mk := Mark{Kind: MarkOpen, Rank: rank}
			cell, _ := m.At(p)
			switch {
			case cell == maze.CellWall:
				mk.Kind = MarkWall
			case p == m.Start():
				mk.Kind = MarkStart
			case p == m.Goal():
				mk.Kind = MarkGoal
			case onPath[p]:
				mk.Kind = MarkPath
			case ok:
				mk.Kind = MarkExpanded
			}
			marks[r][c] = mk
		}
	}

	return Overlay{Marks: marks, Ranked: len(ranks)}
}

// Shade maps a rank to a bucket in [0, buckets). Earlier expansions get
// lower buckets. A negative rank yields -1.
func (o Overlay) Shade(rank, buckets int) int {
	if rank < 0 || buckets <= 0 || o.Ranked == 0 {
		return -1
	}
	b := rank * buckets / o.Ranked
	if b >= buckets {
		b = buckets - 1
	}

	return b
}
