package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddVertexAndEdge(t *testing.T) {
	g := New[string]()

	g.AddVertex("a")
	g.AddVertex("a")
	assert.Equal(t, 1, g.Len())

	g.AddEdge("a", "b", 2.5)
	assert.Equal(t, 2, g.Len(), "AddEdge must register unseen endpoints")
	assert.True(t, g.HasVertex("b"))

	w, ok := g.Weight("a", "b")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)

	// Re-adding an edge updates the weight in place.
	g.AddEdge("a", "b", 7)
	w, ok = g.Weight("a", "b")
	require.True(t, ok)
	assert.Equal(t, 7.0, w)
	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
}

func TestGraphRemoveEdge(t *testing.T) {
	g := New[int]()
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 1)

	assert.True(t, g.RemoveEdge(1, 2))
	assert.False(t, g.RemoveEdge(1, 2), "second removal must report a miss")

	_, ok := g.Weight(1, 2)
	assert.False(t, ok)
	assert.Equal(t, []int{3}, g.Neighbors(1))
	assert.True(t, g.HasVertex(2), "endpoints must survive edge removal")
}

func TestGraphInsertionOrder(t *testing.T) {
	g := New[string]()
	g.AddEdge("c", "a", 1)
	g.AddEdge("c", "b", 1)
	g.AddVertex("d")

	assert.Equal(t, []string{"c", "a", "b", "d"}, g.Vertices())
	assert.Equal(t, []string{"a", "b"}, g.Neighbors("c"))
}

func TestGraphNeighborsOfUnknownVertex(t *testing.T) {
	g := New[int]()
	assert.Empty(t, g.Neighbors(99))
}
