package search

import (
	"github.com/katalvlaran/mazesearch/frontier"
	"github.com/katalvlaran/mazesearch/heuristic"
	"github.com/katalvlaran/mazesearch/maze"
)

// frontierKind selects the container an algorithm pulls from.
type frontierKind int

const (
	fifoFrontier frontierKind = iota
	lifoFrontier
	priorityFrontier
)

// priorityKey selects the key used with a priority frontier.
type priorityKey int

const (
	keyNone      priorityKey = iota
	keyCost                  // g(n)
	keyHeuristic             // h(n)
	keyScore                 // f(n)
)

// visitPolicy selects how duplicates are suppressed.
type visitPolicy int

const (
	visitSet      visitPolicy = iota // mark on generate, never revisit
	visitBestCost                    // reinsert when strictly cheaper
)

// strategy is one row of the algorithm table.
type strategy struct {
	id        string
	name      string
	frontier  frontierKind
	key       priorityKey
	visit     visitPolicy
	heuristic heuristic.Kind
	optimal   bool
}

// strategies is indexed by Algorithm.
var strategies = [algorithmCount]strategy{
	BreadthFirst:    {id: "bfs", name: "BFS", frontier: fifoFrontier, visit: visitSet, optimal: true},
	DepthFirst:      {id: "dfs", name: "DFS", frontier: lifoFrontier, visit: visitSet},
	UniformCost:     {id: "ucs", name: "UCS", frontier: priorityFrontier, key: keyCost, visit: visitBestCost, optimal: true},
	GreedyManhattan: {id: "greedy-manhattan", name: "Greedy (Manhattan)", frontier: priorityFrontier, key: keyHeuristic, visit: visitSet, heuristic: heuristic.KindManhattan},
	AStarManhattan:  {id: "astar-manhattan", name: "A* (Manhattan)", frontier: priorityFrontier, key: keyScore, visit: visitBestCost, heuristic: heuristic.KindManhattan, optimal: true},
	GreedyChebyshev: {id: "greedy-chebyshev", name: "Greedy (Chebyshev)", frontier: priorityFrontier, key: keyHeuristic, visit: visitSet, heuristic: heuristic.KindChebyshev},
	AStarChebyshev:  {id: "astar-chebyshev", name: "A* (Chebyshev)", frontier: priorityFrontier, key: keyScore, visit: visitBestCost, heuristic: heuristic.KindChebyshev, optimal: true},
}

// priority returns the frontier key of n under s.
func (s strategy) priority(n Node) float64 {
	switch s.key {
	case keyCost:
		return n.Cost
	case keyHeuristic:
		return n.Heuristic
	case keyScore:
		return n.Score
	}

	return 0
}

// nodeFrontier adapts the three containers to a single push that knows
// about priorities.
type nodeFrontier struct {
	frontier.Frontier[NodeID]
	pq       *frontier.PriorityQueue[NodeID]
	strategy strategy
}

// newFrontier builds the container s asks for.
func (s strategy) newFrontier(capacity int) nodeFrontier {
	switch s.frontier {
	case lifoFrontier:
		return nodeFrontier{Frontier: frontier.NewStack[NodeID](capacity), strategy: s}
	case priorityFrontier:
		pq := frontier.NewPriorityQueue[NodeID](capacity)
		return nodeFrontier{Frontier: pq, pq: pq, strategy: s}
	}

	return nodeFrontier{Frontier: frontier.NewQueue[NodeID](capacity), strategy: s}
}

// pushNode inserts id, keyed by n when the frontier is prioritised.
func (f nodeFrontier) pushNode(id NodeID, n Node) {
	if f.pq != nil {
		f.pq.PushPriority(f.strategy.priority(n), id)
		return
	}
	f.Push(id)
}

// visitRecord decides which successors are admitted to the frontier.
type visitRecord interface {
	// seed registers the start position at cost 0.
	seed(p maze.Position)
	// admit reports whether a successor reaching p at cost g should be
	// pushed, recording it when so.
	admit(p maze.Position, g float64) bool
	// size is the number of recorded positions.
	size() int
}

// newVisitRecord builds the record s asks for.
func (s strategy) newVisitRecord(capacity int) visitRecord {
	if s.visit == visitBestCost {
		return make(bestCost, capacity)
	}

	return make(seenSet, capacity)
}

// seenSet marks positions on generation.
type seenSet map[maze.Position]struct{}

func (s seenSet) seed(p maze.Position) { s[p] = struct{}{} }

func (s seenSet) admit(p maze.Position, _ float64) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}

	return true
}

func (s seenSet) size() int { return len(s) }

// bestCost keeps the cheapest known g per position.
type bestCost map[maze.Position]float64

func (b bestCost) seed(p maze.Position) { b[p] = 0 }

func (b bestCost) admit(p maze.Position, g float64) bool {
	if old, ok := b[p]; ok && g >= old {
		return false
	}
	b[p] = g

	return true
}

func (b bestCost) size() int { return len(b) }
