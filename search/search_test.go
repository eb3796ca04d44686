package search_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesearch/heuristic"
	"github.com/katalvlaran/mazesearch/internal/logging"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// corridorMaze is 5×8 with S at (0,0) and G at (4,5).
const corridorMaze = `
S.....#.
.###..#.
..#...#.
.#.#..#.
...#.G#.
`

// walledMaze has its goal sealed off; 8 non-goal cells are reachable.
const walledMaze = `
S..#...
.#.#.G.
...#...
`

// staleMaze has an unreachable goal; A* (Manhattan) improves the cost of
// (4,1) and (5,1) after they were first pushed and expands both twice.
const staleMaze = `
S..#.
##..#
.....
..#..
....#
#..#G
`

func mustParse(t testing.TB, s string) *maze.Maze {
	t.Helper()
	m, err := maze.ParseString(s)
	require.NoError(t, err)

	return m
}

func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }

//----------------------------------------------------------------------------//
// Reference results
//----------------------------------------------------------------------------//

func TestRun_CorridorMetrics(t *testing.T) {
	m := mustParse(t, corridorMaze)
	cases := []struct {
		alg      search.Algorithm
		cost     float64
		expanded int
		peak     int
	}{
		{search.BreadthFirst, 9, 22, 26},
		{search.DepthFirst, 11, 12, 20},
		{search.UniformCost, 9, 22, 26},
		{search.GreedyManhattan, 9, 17, 29},
		{search.AStarManhattan, 9, 20, 27},
		{search.GreedyChebyshev, 9, 9, 23},
		{search.AStarChebyshev, 9, 20, 27},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			res, err := search.Run(m, tc.alg)
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.True(t, res.Complete)
			assert.Equal(t, tc.alg.Optimal(), res.Optimal)
			assert.Equal(t, tc.alg.Name(), res.Name)
			assert.Equal(t, tc.cost, res.Cost)
			assert.Equal(t, tc.expanded, res.Expanded)
			assert.Len(t, res.ExpandedOrder, tc.expanded)
			assert.Equal(t, tc.peak, res.PeakMemory)
			assert.Len(t, res.Path, int(tc.cost)+1)

			cost, err := search.ValidatePath(m, res.Path)
			require.NoError(t, err)
			assert.Equal(t, res.Cost, cost)
		})
	}
}

func TestBFS_CorridorPathAndOrder(t *testing.T) {
	m := mustParse(t, corridorMaze)
	res, err := search.BFS(m)
	require.NoError(t, err)

	assert.Equal(t, []maze.Position{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4),
		pos(1, 4), pos(2, 4), pos(3, 4), pos(4, 4), pos(4, 5),
	}, res.Path)
	assert.Equal(t, []maze.Position{
		pos(0, 0), pos(1, 0), pos(0, 1), pos(2, 0), pos(0, 2), pos(3, 0),
		pos(2, 1), pos(0, 3), pos(4, 0), pos(0, 4), pos(4, 1), pos(1, 4),
		pos(0, 5), pos(4, 2), pos(2, 4), pos(1, 5), pos(3, 2), pos(3, 4),
		pos(2, 3), pos(2, 5), pos(4, 4), pos(3, 5),
	}, res.ExpandedOrder)
}

func TestDFS_CorridorPath(t *testing.T) {
	m := mustParse(t, corridorMaze)
	res, err := search.DFS(m)
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4), pos(0, 5),
		pos(1, 5), pos(2, 5), pos(2, 4), pos(3, 4), pos(4, 4), pos(4, 5),
	}, res.Path)
}

func TestAStar_ExpandsFewerThanBFS(t *testing.T) {
	m := mustParse(t, corridorMaze)
	bfs, err := search.BFS(m)
	require.NoError(t, err)
	astar, err := search.AStar(m, heuristic.KindManhattan)
	require.NoError(t, err)

	assert.Equal(t, bfs.Cost, astar.Cost)
	assert.Less(t, astar.Expanded, bfs.Expanded)
}

func TestGreedyChebyshev_ExpansionOrder(t *testing.T) {
	m := mustParse(t, corridorMaze)
	res, err := search.Greedy(m, heuristic.KindChebyshev)
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4),
		pos(1, 4), pos(2, 4), pos(3, 4), pos(4, 4),
	}, res.ExpandedOrder)
}

//----------------------------------------------------------------------------//
// Failure outcomes
//----------------------------------------------------------------------------//

func TestRun_UnreachableGoal(t *testing.T) {
	m := mustParse(t, walledMaze)
	for _, alg := range search.All() {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := search.Run(m, alg)
			require.NoError(t, err, "an unreachable goal is not an error")
			assert.False(t, res.Success)
			assert.False(t, res.Complete)
			assert.NotNil(t, res.Path)
			assert.Empty(t, res.Path)
			assert.Equal(t, 0.0, res.Cost)
			assert.Equal(t, 8, res.Expanded)
			assert.Equal(t, 10, res.PeakMemory)
			assert.Equal(t, alg.Optimal(), res.Optimal)
		})
	}
}

func TestRun_UnreachableGoal_OrderPerFrontier(t *testing.T) {
	m := mustParse(t, walledMaze)
	bfs, err := search.BFS(m)
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{
		pos(0, 0), pos(1, 0), pos(0, 1), pos(2, 0), pos(0, 2), pos(2, 1), pos(1, 2), pos(2, 2),
	}, bfs.ExpandedOrder)

	dfs, err := search.DFS(m)
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{
		pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2), pos(2, 2), pos(2, 1), pos(2, 0), pos(1, 0),
	}, dfs.ExpandedOrder)
	assert.Equal(t, 8, dfs.Generated)
}

// TestAStar_StaleEntriesAreExpanded checks that superseded frontier copies
// are popped and expanded rather than skipped.
func TestAStar_StaleEntriesAreExpanded(t *testing.T) {
	m := mustParse(t, staleMaze)
	res, err := search.AStar(m, heuristic.KindManhattan)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 22, res.Expanded)

	seen := map[maze.Position]int{}
	for _, p := range res.ExpandedOrder {
		seen[p]++
	}
	assert.Len(t, seen, 20)
	assert.Equal(t, 2, seen[pos(4, 1)])
	assert.Equal(t, 2, seen[pos(5, 1)])
}

func TestRun_StartNextToGoal(t *testing.T) {
	m := mustParse(t, "SG")
	for _, alg := range search.All() {
		res, err := search.Run(m, alg)
		require.NoError(t, err)
		assert.True(t, res.Success, alg.String())
		assert.Equal(t, 1.0, res.Cost, alg.String())
		assert.Equal(t, []maze.Position{pos(0, 0), pos(0, 1)}, res.Path, alg.String())
		assert.Equal(t, 1, res.Expanded, alg.String())
		assert.Equal(t, 2, res.Generated, alg.String())
	}
}

//----------------------------------------------------------------------------//
// Input validation and options
//----------------------------------------------------------------------------//

func TestRun_Errors(t *testing.T) {
	m := mustParse(t, corridorMaze)

	_, err := search.Run(nil, search.BreadthFirst)
	assert.ErrorIs(t, err, search.ErrNilMaze)

	_, err = search.Run(m, search.Algorithm(99))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Run(m, search.BreadthFirst, search.WithClock(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Greedy(m, heuristic.KindEuclidean)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.AStar(m, heuristic.KindNone)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRun_OnExpandAborts(t *testing.T) {
	m := mustParse(t, corridorMaze)
	stop := errors.New("stop")
	var seen []maze.Position
	_, err := search.UCS(m, search.WithOnExpand(func(p maze.Position, n int) error {
		seen = append(seen, p)
		if n == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Len(t, seen, 3)
}

func TestRun_OnGenerateCountsPushes(t *testing.T) {
	m := mustParse(t, corridorMaze)
	pushed := 0
	res, err := search.AStar(m, heuristic.KindChebyshev, search.WithOnGenerate(func(maze.Position) { pushed++ }))
	require.NoError(t, err)
	assert.Equal(t, res.Generated-1, pushed)
}

func TestRun_Cancelled(t *testing.T) {
	m := mustParse(t, corridorMaze)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.BFS(m, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Clock(t *testing.T) {
	m := mustParse(t, corridorMaze)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return t0.Add(time.Duration(calls-1) * 5 * time.Millisecond)
	}
	res, err := search.BFS(m, search.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, res.Elapsed)
}

func TestRun_LogsFinishedRun(t *testing.T) {
	m := mustParse(t, corridorMaze)
	var buf bytes.Buffer
	_, err := search.BFS(m, search.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "search finished")
	assert.Contains(t, buf.String(), "algorithm=bfs")
	assert.Contains(t, buf.String(), "expanded=22")
}

//----------------------------------------------------------------------------//
// Algorithm identifiers
//----------------------------------------------------------------------------//

func TestParseAlgorithm(t *testing.T) {
	for _, a := range search.All() {
		got, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := search.ParseAlgorithm("A*-Manhattan")
	require.NoError(t, err)
	assert.Equal(t, search.AStarManhattan, got)

	got, err = search.ParseAlgorithm("greedy_chebyshev")
	require.NoError(t, err)
	assert.Equal(t, search.GreedyChebyshev, got)

	_, err = search.ParseAlgorithm("ida*")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	text, err := search.UniformCost.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ucs", string(text))

	var a search.Algorithm
	require.NoError(t, a.UnmarshalText([]byte("astar-chebyshev")))
	assert.Equal(t, search.AStarChebyshev, a)

	_, err = search.Algorithm(-1).MarshalText()
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_Optimality(t *testing.T) {
	want := map[search.Algorithm]bool{
		search.BreadthFirst:    true,
		search.DepthFirst:      false,
		search.UniformCost:     true,
		search.GreedyManhattan: false,
		search.AStarManhattan:  true,
		search.GreedyChebyshev: false,
		search.AStarChebyshev:  true,
	}
	require.Len(t, search.All(), len(want))
	for a, opt := range want {
		assert.Equal(t, opt, a.Optimal(), a.String())
	}
	assert.False(t, search.Algorithm(42).Optimal())
}
