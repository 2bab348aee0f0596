// Package instantiate forces the compiler to emit a monomorphized copy of
// each container shape for every element type in a curated table. Generic
// code that is never instantiated in source is simply absent from the
// binary, so each table row exists to make one List and one Queue
// specialization real enough to survive the link.
package instantiate

import "sync"

// List is a growable sequence. The methods are trivial on purpose; what
// matters is that each element type gets its own compiled copy of them.
type List[T any] struct {
	items []T
}

// NewList creates an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Append adds one element to the end of the list.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Queue is a mutex-guarded FIFO, the concurrent counterpart to List.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends one element to the tail of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, v)
}

// Dequeue removes and returns the head of the queue. The second return
// is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
