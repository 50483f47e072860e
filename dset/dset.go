// Package dset provides a disjoint-set (union-find) structure with path
// compression and union by rank; Find and Union run in near-constant
// amortized time.
package dset

// DisjointSet partitions elements into non-overlapping sets. Elements are
// added lazily: Find and Union create singleton sets for unseen elements.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int
}

// New creates an empty disjoint-set structure.
func New[T comparable]() *DisjointSet[T] {
	return &DisjointSet[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
	}
}

// Add registers v as a singleton set. Adding a known element is a no-op.
func (d *DisjointSet[T]) Add(v T) {
	if _, ok := d.parent[v]; ok {
		return
	}
	d.parent[v] = v
	d.sets++
}

// Find returns the representative of the set containing v, adding v as a
// singleton when unseen. Visited chains are compressed onto the root.
func (d *DisjointSet[T]) Find(v T) T {
	d.Add(v)

	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		d.parent[v], v = root, d.parent[v]
	}
	return root
}

// Union merges the sets containing a and b and reports whether two
// distinct sets were actually joined.
func (d *DisjointSet[T]) Union(a, b T) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.sets--
	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet[T]) Connected(a, b T) bool {
	return d.Find(a) == d.Find(b)
}

// Sets returns the number of distinct sets.
func (d *DisjointSet[T]) Sets() int {
	return d.sets
}

// Len returns the number of known elements.
func (d *DisjointSet[T]) Len() int {
	return len(d.parent)
}
