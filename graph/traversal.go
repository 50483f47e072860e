package graph

import (
	"fmt"

	"github.com/FilaCo/ads/sequence"
)

// BFS walks the graph breadth-first from start, calling visit for every
// reachable vertex. Traversal stops early when visit returns false.
func (g *Graph[K]) BFS(start K, visit func(v K) bool) error {
	if !g.HasVertex(start) {
		return fmt.Errorf("bfs from %v: %w", start, ErrVertexNotFound)
	}

	seen := map[K]struct{}{start: {}}
	queue := sequence.NewDeque[K](g.Len())
	queue.PushBack(start)

	for queue.Len() > 0 {
		v, _ := queue.PopFront()
		if !visit(v) {
			return nil
		}
		for _, e := range g.adj[v] {
			if _, ok := seen[e.to]; ok {
				continue
			}
			seen[e.to] = struct{}{}
			queue.PushBack(e.to)
		}
	}
	return nil
}

// DFS walks the graph depth-first (pre-order) from start, calling visit
// for every reachable vertex. Traversal stops early when visit returns
// false.
func (g *Graph[K]) DFS(start K, visit func(v K) bool) error {
	if !g.HasVertex(start) {
		return fmt.Errorf("dfs from %v: %w", start, ErrVertexNotFound)
	}

	seen := make(map[K]struct{})
	var walk func(v K) bool
	walk = func(v K) bool {
		seen[v] = struct{}{}
		if !visit(v) {
			return false
		}
		for _, e := range g.adj[v] {
			if _, ok := seen[e.to]; ok {
				continue
			}
			if !walk(e.to) {
				return false
			}
		}
		return true
	}
	walk(start)
	return nil
}
