package collection

import "golang.org/x/exp/constraints"

// OrderedMap is a Map that keeps its keys in sorted order, backed by an
// AVL tree. Get, Insert and Erase run in O(log n); in-order traversal via
// Range runs in O(n). The zero value is not usable, call NewOrderedMap.
type OrderedMap[K constraints.Ordered, V any] struct {
	root *avlNode[K, V]
	size int
}

var _ Map[int, int] = (*OrderedMap[int, int])(nil)

type avlNode[K constraints.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   *avlNode[K, V]
	right  *avlNode[K, V]
}

// NewOrderedMap creates an empty ordered map.
func NewOrderedMap[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// Len returns the number of stored entries.
func (m *OrderedMap[K, V]) Len() int {
	return m.size
}

// Get returns the value stored under key, if any.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	n := m.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Insert stores value under key. If the key was already present the old
// value is returned and the entry count is unchanged.
func (m *OrderedMap[K, V]) Insert(key K, value V) (V, bool) {
	var prev V
	var replaced bool
	m.root, prev, replaced = avlInsert(m.root, key, value)
	if !replaced {
		m.size++
	}
	return prev, replaced
}

// Erase removes key and returns the value that was stored under it.
func (m *OrderedMap[K, V]) Erase(key K) (V, bool) {
	var removed V
	var ok bool
	m.root, removed, ok = avlErase(m.root, key)
	if ok {
		m.size--
	}
	return removed, ok
}

// Min returns the smallest key and its value. ok is false when the map is
// empty.
func (m *OrderedMap[K, V]) Min() (key K, value V, ok bool) {
	if m.root == nil {
		return
	}
	n := m.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the largest key and its value. ok is false when the map is
// empty.
func (m *OrderedMap[K, V]) Max() (key K, value V, ok bool) {
	if m.root == nil {
		return
	}
	n := m.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Range calls fn for every entry in ascending key order. Traversal stops
// early when fn returns false. The map must not be mutated during Range.
func (m *OrderedMap[K, V]) Range(fn func(key K, value V) bool) {
	inorder(m.root, fn)
}

// Keys returns all keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Clear removes all entries.
func (m *OrderedMap[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

func inorder[K constraints.Ordered, V any](n *avlNode[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !inorder(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return inorder(n.right, fn)
}

func avlInsert[K constraints.Ordered, V any](n *avlNode[K, V], key K, value V) (*avlNode[K, V], V, bool) {
	if n == nil {
		var zero V
		return &avlNode[K, V]{key: key, value: value, height: 1}, zero, false
	}

	var prev V
	var replaced bool
	switch {
	case key < n.key:
		n.left, prev, replaced = avlInsert(n.left, key, value)
	case key > n.key:
		n.right, prev, replaced = avlInsert(n.right, key, value)
	default:
		prev, n.value = n.value, value
		return n, prev, true
	}
	return rebalance(n), prev, replaced
}

func avlErase[K constraints.Ordered, V any](n *avlNode[K, V], key K) (*avlNode[K, V], V, bool) {
	if n == nil {
		var zero V
		return nil, zero, false
	}

	var removed V
	var ok bool
	switch {
	case key < n.key:
		n.left, removed, ok = avlErase(n.left, key)
	case key > n.key:
		n.right, removed, ok = avlErase(n.right, key)
	default:
		removed, ok = n.value, true
		switch {
		case n.left == nil:
			return n.right, removed, true
		case n.right == nil:
			return n.left, removed, true
		default:
			// Two children: replace with the in-order successor and
			// delete it from the right subtree.
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.key, n.value = succ.key, succ.value
			n.right, _, _ = avlErase(n.right, succ.key)
		}
	}
	return rebalance(n), removed, ok
}

func nodeHeight[K constraints.Ordered, V any](n *avlNode[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K constraints.Ordered, V any](n *avlNode[K, V]) int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

func rebalance[K constraints.Ordered, V any](n *avlNode[K, V]) *avlNode[K, V] {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))

	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func rotateRight[K constraints.Ordered, V any](n *avlNode[K, V]) *avlNode[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
	l.height = 1 + max(nodeHeight(l.left), nodeHeight(l.right))
	return l
}

func rotateLeft[K constraints.Ordered, V any](n *avlNode[K, V]) *avlNode[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
	r.height = 1 + max(nodeHeight(r.left), nodeHeight(r.right))
	return r
}
