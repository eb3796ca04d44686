package search_test

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/heuristic"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/search"
)

// ExampleAStar finds the shortest route through a small maze.
func ExampleAStar() {
	m, _ := maze.ParseString(`
S.#
..#
#.G
`)
	res, _ := search.AStar(m, heuristic.KindManhattan)
	fmt.Println(res.Success, res.Cost, res.Path)
	// Output: true 4 [(0,0) (1,0) (1,1) (2,1) (2,2)]
}

// ExampleRun_unreachable shows that a sealed goal is a result, not an error.
func ExampleRun_unreachable() {
	m, _ := maze.ParseString("S#G")
	res, err := search.Run(m, search.BreadthFirst)
	fmt.Println(err, res.Success, res.Cost, len(res.Path), res.Expanded)
	// Output: <nil> false 0 0 1
}
