package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and movement.
// MaxDimension bounds the height and the width of any maze.
const MaxDimension = 1 << 15

var (
	// ErrMalformedMaze is the parent of every construction error.
	ErrMalformedMaze = errors.New("maze: malformed maze")

	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedMaze)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedMaze)
	// ErrUnknownCell indicates a symbol outside {'.', '#', 'S', 'G'}.
	ErrUnknownCell = fmt.Errorf("%w: unknown cell symbol", ErrMalformedMaze)
	// ErrMissingStart indicates no 'S' cell.
	ErrMissingStart = fmt.Errorf("%w: start cell not found", ErrMalformedMaze)
	// ErrMissingGoal indicates no 'G' cell.
	ErrMissingGoal = fmt.Errorf("%w: goal cell not found", ErrMalformedMaze)
	// ErrDuplicateStart indicates more than one 'S' cell.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start cell", ErrMalformedMaze)
	// ErrDuplicateGoal indicates more than one 'G' cell.
	ErrDuplicateGoal = fmt.Errorf("%w: more than one goal cell", ErrMalformedMaze)
	// ErrTooLarge indicates a grid with more than MaxDimension rows or columns.
	ErrTooLarge = fmt.Errorf("%w: grid exceeds maximum dimension", ErrMalformedMaze)

	// ErrFileNotFound is returned by Load when the maze file does not exist.
	ErrFileNotFound = errors.New("maze: file not found")

	// ErrInvalidAction is returned by Result for an unknown action or a
	// destination that is out of bounds or a wall.
	ErrInvalidAction = errors.New("maze: invalid action")

	// ErrInvalidConfig is returned by Generate for unusable parameters.
	ErrInvalidConfig = errors.New("maze: invalid generator config")
)

// Position is a (row, column) grid coordinate. Row 0 is the top line.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is one grid symbol.
type Cell byte

// Cell symbols of the text format.
const (
	CellOpen  Cell = '.'
	CellWall  Cell = '#'
	CellStart Cell = 'S'
	CellGoal  Cell = 'G'
)

// Valid reports whether c is one of the four known symbols.
func (c Cell) Valid() bool {
	switch c {
	case CellOpen, CellWall, CellStart, CellGoal:
		return true
	}

	return false
}

// Action is one of the four orthogonal moves.
type Action int

// Moves in their canonical order. ActionNone marks the root of a search tree.
const (
	ActionNone Action = iota
	North
	South
	West
	East
)

// actionOrder is the fixed enumeration order used by Actions.
var actionOrder = [...]Action{North, South, West, East}

// deltas holds (dRow, dCol) per action, indexed by Action.
var deltas = [...][2]int{
	ActionNone: {0, 0},
	North:      {-1, 0},
	South:      {1, 0},
	West:       {0, -1},
	East:       {0, 1},
}

// Ordered returns the four moves in canonical order.
func Ordered() []Action {
	out := make([]Action, len(actionOrder))
	copy(out, actionOrder[:])

	return out
}

// Valid reports whether a is one of North, South, West, East.
func (a Action) Valid() bool {
	return a >= North && a <= East
}

// Delta returns the (dRow, dCol) offset of a. Invalid actions return (0, 0).
func (a Action) Delta() (dRow, dCol int) {
	if !a.Valid() {
		return 0, 0
	}
	d := deltas[a]

	return d[0], d[1]
}

// Apply returns p shifted by the offset of a, without bounds checks.
func (a Action) Apply(p Position) Position {
	dr, dc := a.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns "N", "S", "W", "E" or "-" for ActionNone and unknown values.
func (a Action) String() string {
	switch a {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	}

	return "-"
}

// ActionBetween returns the single move that leads from p to q,
// or false if they are not orthogonal neighbours.
func ActionBetween(p, q Position) (Action, bool) {
	for _, a := range actionOrder {
		if a.Apply(p) == q {
			return a, true
		}
	}

	return ActionNone, false
}
