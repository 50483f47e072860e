package collection

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SyncMap makes any Map safe for concurrent use by guarding it with a
// read/write mutex. Reads take the shared lock, so concurrent Gets do not
// serialize against each other.
type SyncMap[K constraints.Ordered, V any] struct {
	mu    sync.RWMutex
	inner Map[K, V]
}

var _ Map[int, int] = (*SyncMap[int, int])(nil)

// NewSyncMap wraps inner. When inner is nil a fresh OrderedMap is used.
func NewSyncMap[K constraints.Ordered, V any](inner Map[K, V]) *SyncMap[K, V] {
	if inner == nil {
		inner = NewOrderedMap[K, V]()
	}
	return &SyncMap[K, V]{inner: inner}
}

// Get returns the value stored under key, if any.
func (m *SyncMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Get(key)
}

// Insert stores value under key and returns the displaced value, if any.
func (m *SyncMap[K, V]) Insert(key K, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Insert(key, value)
}

// Erase removes key and returns the value that was stored under it.
func (m *SyncMap[K, V]) Erase(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Erase(key)
}

// Len returns the number of stored entries.
func (m *SyncMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inner.Len()
}
