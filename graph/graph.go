// Package graph provides a generic directed weighted graph with the
// standard traversal and ordering algorithms: BFS, DFS, Dijkstra shortest
// paths and Kahn topological sort.
package graph

import "errors"

var (
	// ErrVertexNotFound is reported when an operation names an unknown vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
	// ErrNegativeWeight is reported by Dijkstra when it meets a negative edge.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
	// ErrCycle is reported by TopoSort on cyclic input.
	ErrCycle = errors.New("graph: graph contains a cycle")
)

type edge[K comparable] struct {
	to     K
	weight float64
}

// Graph is a directed weighted graph over comparable vertex keys.
// Vertices and edges iterate in insertion order, which keeps traversals
// deterministic. The zero value is not usable, call New.
type Graph[K comparable] struct {
	order    []K
	adj      map[K][]edge[K]
	vertices map[K]struct{}
}

// New creates an empty graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		adj:      make(map[K][]edge[K]),
		vertices: make(map[K]struct{}),
	}
}

// AddVertex registers v. Adding a known vertex is a no-op.
func (g *Graph[K]) AddVertex(v K) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.order = append(g.order, v)
}

// AddEdge adds a directed edge from→to, registering unseen endpoints.
// Adding an existing edge updates its weight.
func (g *Graph[K]) AddEdge(from, to K, weight float64) {
	g.AddVertex(from)
	g.AddVertex(to)

	for i, e := range g.adj[from] {
		if e.to == to {
			g.adj[from][i].weight = weight
			return
		}
	}
	g.adj[from] = append(g.adj[from], edge[K]{to: to, weight: weight})
}

// RemoveEdge deletes the edge from→to and reports whether it existed.
// The endpoints stay registered.
func (g *Graph[K]) RemoveEdge(from, to K) bool {
	edges := g.adj[from]
	for i, e := range edges {
		if e.to == to {
			g.adj[from] = append(edges[:i], edges[i+1:]...)
			return true
		}
	}
	return false
}

// HasVertex reports whether v is registered.
func (g *Graph[K]) HasVertex(v K) bool {
	_, ok := g.vertices[v]
	return ok
}

// Weight returns the weight of the edge from→to, if present.
func (g *Graph[K]) Weight(from, to K) (float64, bool) {
	for _, e := range g.adj[from] {
		if e.to == to {
			return e.weight, true
		}
	}
	return 0, false
}

// Neighbors returns the direct successors of v in insertion order.
func (g *Graph[K]) Neighbors(v K) []K {
	edges := g.adj[v]
	out := make([]K, len(edges))
	for i, e := range edges {
		out[i] = e.to
	}
	return out
}

// Vertices returns all vertices in insertion order.
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of vertices.
func (g *Graph[K]) Len() int {
	return len(g.order)
}
