package maze_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/maze"
)

const corridor = `
S.....#.
.###..#.
..#...#.
.#.#..#.
...#G.#.
`

func mustParse(t *testing.T, s string) *maze.Maze {
	t.Helper()
	m, err := maze.ParseString(s)
	require.NoError(t, err)

	return m
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestParse_Corridor(t *testing.T) {
	m := mustParse(t, corridor)
	assert.Equal(t, 5, m.Height())
	assert.Equal(t, 8, m.Width())
	assert.Equal(t, maze.Position{Row: 0, Col: 0}, m.Start())
	assert.Equal(t, maze.Position{Row: 4, Col: 4}, m.Goal())
	assert.Equal(t, 28, m.OpenCells())
}

func TestParse_TrimsAndSkipsBlankLines(t *testing.T) {
	m := mustParse(t, "\n   S.G  \n\n\t...\t\n\n")
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, "S.G\n...\n", m.String())
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", maze.ErrEmptyGrid},
		{"BlankOnly", "\n  \n", maze.ErrEmptyGrid},
		{"Ragged", "S..\n.G", maze.ErrNonRectangular},
		{"UnknownSymbol", "S.x\n..G", maze.ErrUnknownCell},
		{"MissingStart", "...\n..G", maze.ErrMissingStart},
		{"MissingGoal", "S..\n...", maze.ErrMissingGoal},
		{"DuplicateStart", "S.S\n..G", maze.ErrDuplicateStart},
		{"DuplicateGoal", "S.G\n..G", maze.ErrDuplicateGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.ParseString(tc.text)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, maze.ErrMalformedMaze)
		})
	}
}

func TestParse_TooLarge(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"LongLine", "S" + strings.Repeat(".", 2*maze.MaxDimension) + "G"},
		{"TooWide", "S" + strings.Repeat(".", maze.MaxDimension-1) + "G"},
		{"TooTall", "S\n" + strings.Repeat(".\n", maze.MaxDimension-1) + "G"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.ParseString(tc.text)
			assert.ErrorIs(t, err, maze.ErrTooLarge)
			assert.ErrorIs(t, err, maze.ErrMalformedMaze)
		})
	}

	m := mustParse(t, "S"+strings.Repeat(".", maze.MaxDimension-2)+"G")
	assert.Equal(t, maze.MaxDimension, m.Width())
}

func TestNew_DeepCopy(t *testing.T) {
	grid := [][]maze.Cell{
		{maze.CellStart, maze.CellOpen},
		{maze.CellOpen, maze.CellGoal},
	}
	m, err := maze.New(grid)
	require.NoError(t, err)

	grid[0][1] = maze.CellWall
	assert.True(t, m.Passable(maze.Position{Row: 0, Col: 1}))

	rows := m.Rows()
	rows[1][0] = maze.CellWall
	assert.True(t, m.Passable(maze.Position{Row: 1, Col: 0}))
}

//----------------------------------------------------------------------------//
// Movement
//----------------------------------------------------------------------------//

func TestActions_FixedOrder(t *testing.T) {
	m := mustParse(t, `
...
.S.
..G
`)
	assert.Equal(t,
		[]maze.Action{maze.North, maze.South, maze.West, maze.East},
		m.Actions(m.Start()))
}

func TestActions_WallsAndBounds(t *testing.T) {
	m := mustParse(t, corridor)
	// (0,0): north and west out of bounds, south and east open
	assert.Equal(t, []maze.Action{maze.South, maze.East}, m.Actions(maze.Position{Row: 0, Col: 0}))
	// (1,0): north back to S, south open, east is a wall
	assert.Equal(t, []maze.Action{maze.North, maze.South}, m.Actions(maze.Position{Row: 1, Col: 0}))
	// (0,5): east is a wall
	assert.Equal(t, []maze.Action{maze.South, maze.West}, m.Actions(maze.Position{Row: 0, Col: 5}))
}

func TestResult(t *testing.T) {
	m := mustParse(t, corridor)
	cases := []struct {
		name string
		from maze.Position
		act  maze.Action
		want maze.Position
		err  error
	}{
		{"South", maze.Position{Row: 0, Col: 0}, maze.South, maze.Position{Row: 1, Col: 0}, nil},
		{"East", maze.Position{Row: 0, Col: 0}, maze.East, maze.Position{Row: 0, Col: 1}, nil},
		{"IntoWall", maze.Position{Row: 0, Col: 1}, maze.South, maze.Position{}, maze.ErrInvalidAction},
		{"OutOfBounds", maze.Position{Row: 0, Col: 0}, maze.North, maze.Position{}, maze.ErrInvalidAction},
		{"Unknown", maze.Position{Row: 0, Col: 0}, maze.Action(42), maze.Position{}, maze.ErrInvalidAction},
		{"None", maze.Position{Row: 0, Col: 0}, maze.ActionNone, maze.Position{}, maze.ErrInvalidAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Result(tc.from, tc.act)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStepCostAndGoalTest(t *testing.T) {
	m := mustParse(t, corridor)
	a, b := maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 1}
	assert.Equal(t, 1.0, m.StepCost(a, maze.East, b))
	assert.True(t, m.GoalTest(maze.Position{Row: 4, Col: 4}))
	assert.False(t, m.GoalTest(m.Start()))
}

func TestActionBetween(t *testing.T) {
	p := maze.Position{Row: 3, Col: 3}
	for _, a := range maze.Ordered() {
		got, ok := maze.ActionBetween(p, a.Apply(p))
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	_, ok := maze.ActionBetween(p, maze.Position{Row: 4, Col: 4})
	assert.False(t, ok, "diagonal is not a move")
	_, ok = maze.ActionBetween(p, p)
	assert.False(t, ok, "staying put is not a move")
}

func TestAt(t *testing.T) {
	m := mustParse(t, corridor)
	c, ok := m.At(maze.Position{Row: 0, Col: 6})
	assert.True(t, ok)
	assert.Equal(t, maze.CellWall, c)
	_, ok = m.At(maze.Position{Row: 5, Col: 0})
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Load / Save
//----------------------------------------------------------------------------//

func TestLoad_NotFound(t *testing.T) {
	_, err := maze.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, maze.ErrFileNotFound)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("...\n..."), 0o644))
	_, err := maze.Load(path)
	assert.ErrorIs(t, err, maze.ErrMissingStart)
	assert.False(t, errors.Is(err, maze.ErrFileNotFound))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	m := mustParse(t, corridor)
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, maze.Save(path, m))

	got, err := maze.Load(path)
	require.NoError(t, err)
	assert.Equal(t, m.String(), got.String())
	assert.Equal(t, m.Start(), got.Start())
	assert.Equal(t, m.Goal(), got.Goal())
}
