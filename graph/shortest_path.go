package graph

import (
	"fmt"

	"github.com/FilaCo/ads/heap"
)

type pathItem[K comparable] struct {
	vertex K
	dist   float64
}

// Dijkstra computes shortest-path distances from start to every reachable
// vertex. It returns the distance map and a predecessor map from which
// paths can be reconstructed (start has no predecessor entry). Edge
// weights must be non-negative.
func (g *Graph[K]) Dijkstra(start K) (dist map[K]float64, prev map[K]K, err error) {
	if !g.HasVertex(start) {
		return nil, nil, fmt.Errorf("dijkstra from %v: %w", start, ErrVertexNotFound)
	}

	dist = map[K]float64{start: 0}
	prev = make(map[K]K)
	done := make(map[K]struct{})

	pq := heap.New(func(a, b pathItem[K]) bool { return a.dist < b.dist })
	pq.Push(pathItem[K]{vertex: start, dist: 0})

	for pq.Len() > 0 {
		item, _ := pq.Pop()
		if _, ok := done[item.vertex]; ok {
			// Stale queue entry superseded by a shorter path.
			continue
		}
		done[item.vertex] = struct{}{}

		for _, e := range g.adj[item.vertex] {
			if e.weight < 0 {
				return nil, nil, fmt.Errorf("edge %v->%v weight %v: %w",
					item.vertex, e.to, e.weight, ErrNegativeWeight)
			}
			next := item.dist + e.weight
			if cur, ok := dist[e.to]; ok && cur <= next {
				continue
			}
			dist[e.to] = next
			prev[e.to] = item.vertex
			pq.Push(pathItem[K]{vertex: e.to, dist: next})
		}
	}
	return dist, prev, nil
}

// ShortestPath returns the vertices of a shortest start→end path,
// inclusive, together with its total weight.
func (g *Graph[K]) ShortestPath(start, end K) ([]K, float64, error) {
	dist, prev, err := g.Dijkstra(start)
	if err != nil {
		return nil, 0, err
	}

	total, ok := dist[end]
	if !ok {
		return nil, 0, fmt.Errorf("no path %v->%v: %w", start, end, ErrVertexNotFound)
	}

	var path []K
	for at := end; ; {
		path = append(path, at)
		if at == start {
			break
		}
		at = prev[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, total, nil
}
