package search

import "github.com/katalvlaran/mazesearch/maze"

// NodeID is a stable handle into a run's node arena.
type NodeID int

// NoParent is the parent handle of the root node.
const NoParent NodeID = -1

// Node is an immutable snapshot of one reached state.
// A cheaper route to the same position is a new Node, never an update.
type Node struct {
	State     maze.Position
	Parent    NodeID
	Action    maze.Action // ActionNone for the root
	Cost      float64     // g(n)
	Heuristic float64     // h(n)
	Score     float64     // f(n) = g(n) + h(n)
}

// newNode builds a Node and derives its score.
func newNode(state maze.Position, parent NodeID, action maze.Action, cost, h float64) Node {
	return Node{
		State:     state,
		Parent:    parent,
		Action:    action,
		Cost:      cost,
		Heuristic: h,
		Score:     cost + h,
	}
}

// tree is an append-only arena of nodes. Parents always have smaller
// handles than their children, so parent chains cannot cycle.
type tree struct {
	nodes []Node
}

func newTree(capacity int) *tree {
	return &tree{nodes: make([]Node, 0, capacity)}
}

// add stores n and returns its handle.
func (t *tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)

	return NodeID(len(t.nodes) - 1)
}

// node returns the node behind id.
func (t *tree) node(id NodeID) Node {
	return t.nodes[id]
}

// len returns the number of stored nodes.
func (t *tree) len() int { return len(t.nodes) }

// path walks parent handles from id to the root and returns the states
// in root-to-id order.
func (t *tree) path(id NodeID) []maze.Position {
	var rev []maze.Position
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		rev = append(rev, t.nodes[cur].State)
	}
	// reverse to get root → id
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
