//go:generate mockgen -package=mocks -destination=mocks/mock_map.go -source=map.go

// Package collection provides generic key/value containers built around a
// common Map contract: an ordered balanced-tree implementation and a
// lock-guarded wrapper for concurrent use.
package collection

import "golang.org/x/exp/constraints"

// Map is the common contract for key/value containers in this package.
// This is also used to allow for mock maps in tests.
type Map[K constraints.Ordered, V any] interface {
	// Get returns the value stored under key, if any.
	Get(key K) (V, bool)
	// Insert stores value under key and returns the displaced value when
	// the key was already present.
	Insert(key K, value V) (V, bool)
	// Erase removes key and returns the value that was stored under it.
	Erase(key K) (V, bool)
	// Len returns the number of stored entries.
	Len() int
}
