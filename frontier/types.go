package frontier

import "errors"

// ErrEmptyContainer is returned by Pop on an empty container.
var ErrEmptyContainer = errors.New("frontier: pop from empty container")

// Frontier is the capability shared by Stack, Queue and PriorityQueue.
type Frontier[T any] interface {
	// Push inserts item. PriorityQueue uses priority 0 for this form.
	Push(item T)
	// Pop removes and returns the next item, or ErrEmptyContainer.
	Pop() (T, error)
	// IsEmpty reports whether no items remain.
	IsEmpty() bool
	// Len returns the number of held items.
	Len() int
}

// Compile-time conformance checks.
var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*PriorityQueue[int])(nil)
)
