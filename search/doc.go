// Package search runs uninformed and informed graph search over a maze.Maze
// and reports comparable metrics for each run.
//
// What
//
//   - Seven algorithms: breadth-first, depth-first, uniform-cost, greedy
//     best-first (Manhattan, Chebyshev) and A* (Manhattan, Chebyshev).
//   - One traversal loop shared by all of them. An algorithm is a row of data:
//     frontier kind, priority key, and visited policy.
//   - Metrics per run: success, cost, path, expanded count and order, peak
//     frontier+visited size, elapsed time, optimality and completeness flags.
//   - RunAll executes several algorithms concurrently on one immutable maze.
//
// Loop
//
//  1. Push the root node (cost 0, h(start) for informed searches) and seed the
//     visited record with the start.
//  2. While the frontier is non-empty: sample frontier+visited size for the
//     peak, pop, goal-test, then expand in the maze's fixed action order.
//  3. On goal, walk parent handles back to the root to rebuild the path.
//
// Visited policies
//
//   - set:       a position is marked when generated and never pushed again
//     (BFS, DFS, greedy).
//   - best-cost: a successor is pushed when unseen or strictly cheaper than
//     the recorded cost (UCS, A*). Superseded entries stay in the frontier and
//     are expanded again if popped; the best-cost map is never corrupted by
//     them because their cost is never below the recorded value.
//
// Nodes
//
//	Nodes live in a per-run arena and point to their parent by NodeID, so
//	parent chains are acyclic by construction and freed with the run.
//
// Complexity (N = open cells)
//
//   - BFS, DFS, greedy: O(N) pushes, O(N log N) with a priority queue.
//   - UCS, A*:          O(N) pushes under unit costs plus stale duplicates.
//   - Memory:           O(N) for arena, frontier and visited record.
//
// Errors
//
//   - ErrNilMaze, ErrUnknownAlgorithm, ErrOptionViolation for bad input.
//   - Wrapped frontier.ErrEmptyContainer or maze.ErrInvalidAction signal a
//     broken invariant and abort only that run.
//   - Errors from WithOnExpand hooks and context cancellation abort the run.
//
// Not reaching the goal is not an error: Metrics.Success is false, the path
// is empty and the cost is 0.
package search
