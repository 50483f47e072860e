package graph

import "github.com/FilaCo/ads/sequence"

// TopoSort returns a topological ordering of all vertices using Kahn's
// algorithm. Vertices with equal in-degree come out in insertion order.
// ErrCycle is reported when the graph contains a cycle.
func (g *Graph[K]) TopoSort() ([]K, error) {
	indegree := make(map[K]int, g.Len())
	for _, v := range g.order {
		indegree[v] = 0
	}
	for _, v := range g.order {
		for _, e := range g.adj[v] {
			indegree[e.to]++
		}
	}

	ready := sequence.NewDeque[K](g.Len())
	for _, v := range g.order {
		if indegree[v] == 0 {
			ready.PushBack(v)
		}
	}

	out := make([]K, 0, g.Len())
	for ready.Len() > 0 {
		v, _ := ready.PopFront()
		out = append(out, v)
		for _, e := range g.adj[v] {
			indegree[e.to]--
			if indegree[e.to] == 0 {
				ready.PushBack(e.to)
			}
		}
	}

	if len(out) != g.Len() {
		return nil, ErrCycle
	}
	return out, nil
}
