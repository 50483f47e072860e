// Package sequence provides generic linear containers: a growable
// double-ended ring buffer and a fixed-capacity queue that sheds its
// oldest element under pressure.
package sequence

import "errors"

// ErrEmpty is reported by pops on an empty container.
var ErrEmpty = errors.New("sequence: container is empty")

const minDequeCapacity = 8

// Deque is a double-ended queue backed by a circular buffer. Pushes are
// amortized O(1) on either end; the buffer doubles when full.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

// NewDeque creates a deque with room for at least capacity elements
// before the first growth.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < minDequeCapacity {
		capacity = minDequeCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (d *Deque[T]) Len() int {
	return d.size
}

// PushBack appends v at the tail.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.size)%len(d.buf)] = v
	d.size++
}

// PushFront prepends v at the head.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.size++
}

// PopFront removes and returns the head element.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return v, nil
}

// PopBack removes and returns the tail element.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	i := (d.head + d.size - 1) % len(d.buf)
	v := d.buf[i]
	d.buf[i] = zero
	d.size--
	return v, nil
}

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the tail element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[(d.head+d.size-1)%len(d.buf)], true
}

// Clear removes all elements, keeping the allocated buffer.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.size; i++ {
		d.buf[(d.head+i)%len(d.buf)] = zero
	}
	d.head = 0
	d.size = 0
}

func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	next := make([]T, max(minDequeCapacity, len(d.buf)*2))
	n := copy(next, d.buf[d.head:])
	copy(next[n:], d.buf[:d.head])
	d.buf = next
	d.head = 0
}
