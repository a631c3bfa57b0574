package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a typed FIFO queue backed by ef-ds/deque. Enqueue and Dequeue are
// O(1) amortized.
type Q[T any] struct {
	d deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Peek returns the first item without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}
