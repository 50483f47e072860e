package sequence

import (
	"fmt"
	"sync"
)

// BoundedQueue is a concurrency-safe FIFO queue with a fixed capacity.
// Pushing into a full queue drops the oldest element instead of blocking,
// which makes it suitable for keeping "last N" samples.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	ring     *Deque[T]
	capacity int
}

// NewBoundedQueue creates a queue that holds at most capacity elements.
func NewBoundedQueue[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("sequence: bounded queue capacity must be positive, got %d", capacity)
	}
	return &BoundedQueue[T]{
		ring:     NewDeque[T](capacity),
		capacity: capacity,
	}, nil
}

// Push appends v. When the queue is full the oldest element is removed to
// make room and returned with dropped set to true.
func (q *BoundedQueue[T]) Push(v T) (oldest T, dropped bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.Len() == q.capacity {
		oldest, _ = q.ring.PopFront()
		dropped = true
	}
	q.ring.PushBack(v)
	return oldest, dropped
}

// Pop removes and returns the oldest element. ErrEmpty is reported when
// the queue holds nothing.
func (q *BoundedQueue[T]) Pop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.PopFront()
}

// Len returns the number of stored elements.
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Len()
}

// Cap returns the fixed capacity.
func (q *BoundedQueue[T]) Cap() int {
	return q.capacity
}

// Snapshot returns a copy of the current contents in FIFO order.
func (q *BoundedQueue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, 0, q.ring.Len())
	for i := 0; i < q.ring.Len(); i++ {
		v, _ := q.ring.PopFront()
		q.ring.PushBack(v)
		out = append(out, v)
	}
	return out
}

// Clear removes all elements.
func (q *BoundedQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ring.Clear()
}
