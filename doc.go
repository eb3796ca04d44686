// Package mazesearch compares classic search algorithms on grid mazes.
//
// What is mazesearch?
//
//	A small library and CLI that runs seven strategies over the same maze
//	and reports what each one cost:
//		• Uninformed: breadth-first, depth-first, uniform-cost
//		• Informed: greedy best-first and A*, each with Manhattan or Chebyshev
//		• Metrics: path cost, nodes expanded, peak memory, time, optimality
//
// Packages:
//
//	frontier/ : Stack, Queue and a stable PriorityQueue behind one interface
//	heuristic/: Manhattan, Euclidean and Chebyshev distance estimates
//	maze/     : Position, Action and the immutable Maze; parser and generator
//	search/   : the shared search loop, the seven algorithms and RunAll
//	report/   : tables, text and PNG heat-maps, JSON/YAML records
//	telemetry/: Prometheus collectors fed from search results
//
// Quick example:
//
//	m, _ := maze.ParseString("S.#\n..#\n#.G")
//	res, _ := search.AStar(m, heuristic.KindManhattan)
//	fmt.Println(res.Cost, res.Path) // 4 [(0,0) (1,0) (1,1) (2,1) (2,2)]
//
// The mazesearch command wraps the same API:
//
//	mazesearch generate --height 20 --width 30 --seed 7 -o maze.txt
//	mazesearch run maze.txt --out plots/
//	mazesearch serve --addr :8080
package mazesearch
