package search

import (
	"fmt"

	"github.com/katalvlaran/mazesearch/heuristic"
	"github.com/katalvlaran/mazesearch/maze"
)

// walker holds the mutable state of a single run.
type walker struct {
	maze     *maze.Maze
	strategy strategy
	opts     Options
	h        heuristic.Func
	tree     *tree
	frontier nodeFrontier
	visited  visitRecord
	solution NodeID
	res      *Metrics
}

// newWalker prepares the arena, frontier and visited record for alg.
func newWalker(m *maze.Maze, alg Algorithm, s strategy, o Options) *walker {
	n := m.OpenCells()

	return &walker{
		maze:     m,
		strategy: s,
		opts:     o,
		h:        s.heuristic.Func(),
		tree:     newTree(n),
		frontier: s.newFrontier(n),
		visited:  s.newVisitRecord(n),
		solution: NoParent,
		res: &Metrics{
			Algorithm:     alg,
			Name:          s.name,
			Path:          []maze.Position{},
			ExpandedOrder: make([]maze.Position, 0, n),
			PeakMemory:    1,
			Optimal:       s.optimal,
		},
	}
}

// init pushes the root and seeds the visited record.
func (w *walker) init() {
	start := w.maze.Start()
	root := newNode(start, NoParent, maze.ActionNone, 0, w.h(start, w.maze.Goal()))
	w.frontier.pushNode(w.tree.add(root), root)
	w.visited.seed(start)
}

// loop pops until the goal is found, the frontier empties, or an error
// (cancellation, hook, broken invariant) aborts the run.
func (w *walker) loop() error {
	for !w.frontier.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if mem := w.frontier.Len() + w.visited.size(); mem > w.res.PeakMemory {
			w.res.PeakMemory = mem
		}

		id, err := w.frontier.Pop()
		if err != nil {
			return err
		}
		n := w.tree.node(id)

		if w.maze.GoalTest(n.State) {
			w.solution = id
			return nil
		}

		w.res.Expanded++
		w.res.ExpandedOrder = append(w.res.ExpandedOrder, n.State)
		if err := w.opts.OnExpand(n.State, w.res.Expanded); err != nil {
			return fmt.Errorf("OnExpand error at %s: %w", n.State, err)
		}
		if err := w.expand(id, n); err != nil {
			return err
		}
	}

	return nil
}

// expand generates the successors of n in the maze's action order and
// pushes those the visited record admits.
func (w *walker) expand(id NodeID, n Node) error {
	goal := w.maze.Goal()
	for _, a := range w.maze.Actions(n.State) {
		next, err := w.maze.Result(n.State, a)
		if err != nil {
			return err
		}
		g := n.Cost + w.maze.StepCost(n.State, a, next)
		if !w.visited.admit(next, g) {
			continue
		}
		child := newNode(next, id, a, g, w.h(next, goal))
		w.frontier.pushNode(w.tree.add(child), child)
		w.opts.OnGenerate(next)
	}

	return nil
}

// finish fills the solution fields of the result.
func (w *walker) finish() {
	w.res.Generated = w.tree.len()
	if w.solution == NoParent {
		return
	}
	w.res.Success = true
	w.res.Complete = true
	w.res.Path = w.tree.path(w.solution)
	w.res.Cost = w.tree.node(w.solution).Cost
}
