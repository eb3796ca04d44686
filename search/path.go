package search

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/maze"
)

// PathActions converts a position sequence into the moves between
// consecutive positions. It fails with ErrInvalidPath when two neighbours
// in the sequence are not one orthogonal step apart.
func PathActions(path []maze.Position) ([]maze.Action, error) {
	if len(path) < 2 {
		return []maze.Action{}, nil
	}
	out := make([]maze.Action, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		a, ok := maze.ActionBetween(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("%w: %s to %s at step %d is not a single move", ErrInvalidPath, path[i-1], path[i], i)
		}
		out = append(out, a)
	}

	return out, nil
}

// ValidatePath checks that path starts at m.Start(), ends at m.Goal(),
// and that every step is a legal action in m. Returns the path cost.
func ValidatePath(m *maze.Maze, path []maze.Position) (float64, error) {
	if m == nil {
		return 0, ErrNilMaze
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != m.Start() {
		return 0, fmt.Errorf("%w: starts at %s, want %s", ErrInvalidPath, path[0], m.Start())
	}
	if last := path[len(path)-1]; last != m.Goal() {
		return 0, fmt.Errorf("%w: ends at %s, want %s", ErrInvalidPath, last, m.Goal())
	}
	acts, err := PathActions(path)
	if err != nil {
		return 0, err
	}
	cost := 0.0
	for i, a := range acts {
		next, err := m.Result(path[i], a)
		if err != nil {
			return 0, fmt.Errorf("%w: step %d: %w", ErrInvalidPath, i+1, err)
		}
		cost += m.StepCost(path[i], a, next)
	}

	return cost, nil
}
