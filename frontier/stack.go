package frontier

import "fmt"

// Stack is a LIFO container backed by a slice.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push appends item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, fmt.Errorf("%w: stack", ErrEmptyContainer)
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]

	return item, nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }
