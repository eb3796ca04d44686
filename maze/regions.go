package maze

import "container/list"

// Regions returns the 4-connected components of non-wall cells. Regions are
// ordered by their first cell in row-major order; cells within a region are
// in flood-fill order.
//
// Time: O(H×W). Memory: O(H×W).
func (m *Maze) Regions() [][]Position {
	seen := make([]bool, m.height*m.width)
	var regions [][]Position
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			p := Position{Row: r, Col: c}
			if m.cells[r][c] == CellWall || seen[m.index(p)] {
				continue
			}
			regions = append(regions, m.flood(p, seen))
		}
	}

	return regions
}

// Reachable returns every cell reachable from p, p included, in flood-fill
// order. It returns nil when p is out of bounds or a wall.
func (m *Maze) Reachable(p Position) []Position {
	if !m.Passable(p) {
		return nil
	}

	return m.flood(p, make([]bool, m.height*m.width))
}

// Solvable reports whether the goal is reachable from the start.
func (m *Maze) Solvable() bool {
	for _, p := range m.Reachable(m.start) {
		if p == m.goal {
			return true
		}
	}

	return false
}

// flood collects the region of p, marking cells in seen.
func (m *Maze) flood(p Position, seen []bool) []Position {
	seen[m.index(p)] = true
	queue := []Position{p}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, a := range actionOrder {
			v := a.Apply(u)
			if !m.Passable(v) || seen[m.index(v)] {
				continue
			}
			seen[m.index(v)] = true
			queue = append(queue, v)
		}
	}

	return queue
}

// WallBreaks finds the fewest walls that must be removed to connect start
// and goal. It returns one such start-to-goal route and the number of walls
// on it; walls is 0 exactly when the maze is Solvable.
//
// Stepping onto an open cell costs 0 and onto a wall 1, so a 0-1 BFS over a
// deque finds the optimum.
//
// Time: O(H×W). Memory: O(H×W).
func (m *Maze) WallBreaks() (route []Position, walls int) {
	n := m.height * m.width
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src := m.index(m.start)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(m.start)

	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(Position)
		if u == m.goal {
			break
		}
		ui := m.index(u)
		for _, a := range actionOrder {
			v := a.Apply(u)
			if !m.InBounds(v) {
				continue
			}
			step := 0
			if m.cells[v.Row][v.Col] == CellWall {
				step = 1
			}
			vi := m.index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := m.index(m.goal); at >= 0; at = prev[at] {
		route = append(route, m.position(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[m.index(m.goal)]
}

// index maps p to its row-major offset.
func (m *Maze) index(p Position) int { return p.Row*m.width + p.Col }

// position is the inverse of index.
func (m *Maze) position(i int) Position { return Position{Row: i / m.width, Col: i % m.width} }
