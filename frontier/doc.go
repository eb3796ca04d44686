// Package frontier provides the containers that hold generated-but-not-yet-expanded
// search nodes: a LIFO Stack, a FIFO Queue and a stable PriorityQueue.
//
// What
//
//   - Stack:         push/pop at the tail, last in first out.
//   - Queue:         ring buffer, first in first out, O(1) amortized pop.
//   - PriorityQueue: binary min-heap keyed by (priority, insertion sequence);
//     among equal priorities the earliest inserted item is popped first.
//   - All three satisfy Frontier[T], so a traversal can be written once and
//     parameterised by container.
//
// Determinism
//
//	The PriorityQueue embeds a monotonically increasing sequence number in every
//	entry. Equal priorities therefore never fall back to heap layout order and
//	the pop sequence is fully reproducible.
//
// Complexity
//
//   - Stack:         Push O(1) amortized, Pop O(1).
//   - Queue:         Push O(1) amortized, Pop O(1).
//   - PriorityQueue: Push O(log n), Pop O(log n).
//
// Errors
//
//   - ErrEmptyContainer  when Pop is called on an empty container.
//
// Containers are not safe for concurrent use; each search run owns its own.
package frontier
