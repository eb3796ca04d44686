package maze

import (
	"fmt"
	"strings"
)

// unitStepCost is the price of every move.
const unitStepCost = 1.0

// Maze is an immutable rectangular grid with one start and one goal cell.
// It is safe for concurrent reads; searches never modify it.
type Maze struct {
	height, width int
	cells         [][]Cell
	start, goal   Position
}

// New constructs a Maze from a non-empty rectangular grid.
// The input is deep-copied; later changes to grid do not affect the Maze.
// Returns an error wrapping ErrMalformedMaze on empty or ragged input,
// unknown symbols, a missing or duplicated start/goal cell, or a side
// longer than MaxDimension.
// Complexity: O(H×W) time and memory.
func New(grid [][]Cell) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	if h > MaxDimension || w > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrTooLarge, h, w, MaxDimension)
	}

	cells := make([][]Cell, h)
	var start, goal Position
	var starts, goals int
	for r, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = make([]Cell, w)
		copy(cells[r], row)
		for c, cell := range row {
			switch cell {
			case CellStart:
				starts++
				start = Position{Row: r, Col: c}
			case CellGoal:
				goals++
				goal = Position{Row: r, Col: c}
			case CellOpen, CellWall:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, rune(cell), r, c)
			}
		}
	}

	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	case goals == 0:
		return nil, ErrMissingGoal
	case goals > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateGoal, goals)
	}

	return &Maze{height: h, width: w, cells: cells, start: start, goal: goal}, nil
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Start returns the cached start position.
func (m *Maze) Start() Position { return m.start }

// Goal returns the cached goal position.
func (m *Maze) Goal() Position { return m.goal }

// InBounds reports whether p lies inside the grid.
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// Passable reports whether p is inside the grid and not a wall.
func (m *Maze) Passable(p Position) bool {
	return m.InBounds(p) && m.cells[p.Row][p.Col] != CellWall
}

// At returns the symbol at p, or false when p is out of bounds.
func (m *Maze) At(p Position) (Cell, bool) {
	if !m.InBounds(p) {
		return 0, false
	}

	return m.cells[p.Row][p.Col], true
}

// Actions returns the legal moves from p in the fixed order
// North, South, West, East. A move is legal when its destination
// is in bounds and not a wall.
func (m *Maze) Actions(p Position) []Action {
	out := make([]Action, 0, len(actionOrder))
	for _, a := range actionOrder {
		if m.Passable(a.Apply(p)) {
			out = append(out, a)
		}
	}

	return out
}

// Result applies a to p. It fails with ErrInvalidAction when a is not one
// of the four moves or the destination is out of bounds or a wall.
func (m *Maze) Result(p Position, a Action) (Position, error) {
	if !a.Valid() {
		return Position{}, fmt.Errorf("%w: unknown action %d", ErrInvalidAction, int(a))
	}
	q := a.Apply(p)
	if !m.Passable(q) {
		return Position{}, fmt.Errorf("%w: %s from %s leads to blocked cell %s", ErrInvalidAction, a, p, q)
	}

	return q, nil
}

// StepCost returns the cost of moving from p1 to p2 via a. Always 1.
func (m *Maze) StepCost(_ Position, _ Action, _ Position) float64 {
	return unitStepCost
}

// GoalTest reports whether p is the goal.
func (m *Maze) GoalTest(p Position) bool {
	return p == m.goal
}

// OpenCells counts the non-wall cells, start and goal included.
func (m *Maze) OpenCells() int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c != CellWall {
				n++
			}
		}
	}

	return n
}

// Rows returns a deep copy of the grid.
func (m *Maze) Rows() [][]Cell {
	out := make([][]Cell, m.height)
	for r := range m.cells {
		out[r] = make([]Cell, m.width)
		copy(out[r], m.cells[r])
	}

	return out
}

// String renders the maze in the text format accepted by Parse,
// one line per row with a trailing newline.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))
	for _, row := range m.cells {
		for _, c := range row {
			sb.WriteByte(byte(c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
