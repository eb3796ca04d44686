package frontier

import (
	"container/heap"
	"fmt"
)

// entry is one heap slot: the priority key, the insertion sequence used to
// break ties, and the payload.
type entry[T any] struct {
	priority float64
	seq      uint64
	item     T
}

// entryHeap is a min-heap of entries ordered by (priority, seq).
type entryHeap[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence (earliest first).
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return e
}

// PriorityQueue pops the item with the lowest priority value; equal priorities
// come out in insertion order. The sequence counter never resets, so the
// tie-break holds across interleaved pushes and pops.
// The zero value is an empty queue ready to use.
type PriorityQueue[T any] struct {
	h    entryHeap[T]
	next uint64
}

// NewPriorityQueue returns an empty PriorityQueue with room for capacity items.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T]{h: make(entryHeap[T], 0, capacity)}
}

// PushPriority inserts item keyed by priority.
func (pq *PriorityQueue[T]) PushPriority(priority float64, item T) {
	heap.Push(&pq.h, entry[T]{priority: priority, seq: pq.next, item: item})
	pq.next++
}

// Push inserts item with priority 0, which degrades to FIFO order
// when used exclusively.
func (pq *PriorityQueue[T]) Push(item T) {
	pq.PushPriority(0, item)
}

// Pop removes and returns the item with the lowest priority.
func (pq *PriorityQueue[T]) Pop() (T, error) {
	item, _, err := pq.PopPriority()

	return item, err
}

// PopPriority is Pop that also reports the priority the item was pushed with.
func (pq *PriorityQueue[T]) PopPriority() (T, float64, error) {
	if len(pq.h) == 0 {
		var zero T
		return zero, 0, fmt.Errorf("%w: priority queue", ErrEmptyContainer)
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.item, e.priority, nil
}

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.h) == 0 }

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }
