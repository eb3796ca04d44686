package frontier

import "fmt"

// minQueueCapacity is the ring size allocated on the first Push.
const minQueueCapacity = 8

// Queue is a FIFO container backed by a growable ring buffer.
// Pop is O(1); the buffer doubles when full, so Push is O(1) amortized.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf  []T
	head int // index of the oldest item
	size int // number of live items
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < minQueueCapacity {
		capacity = minQueueCapacity
	}

	return &Queue[T]{buf: make([]T, capacity)}
}

// Push appends item at the tail.
func (q *Queue[T]) Push(item T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = item
	q.size++
}

// Pop removes and returns the item at the head.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, fmt.Errorf("%w: queue", ErrEmptyContainer)
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return item, nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// grow doubles the ring and unwraps it so head lands at index 0.
func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n < minQueueCapacity {
		n = minQueueCapacity
	}
	buf := make([]T, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
