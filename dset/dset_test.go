package dset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointSetSingletons(t *testing.T) {
	d := New[string]()

	d.Add("a")
	d.Add("b")
	d.Add("a")

	assert.Equal(t, 2, d.Sets())
	assert.Equal(t, 2, d.Len())
	assert.False(t, d.Connected("a", "b"))
}

func TestDisjointSetUnion(t *testing.T) {
	d := New[int]()

	assert.True(t, d.Union(1, 2))
	assert.True(t, d.Union(3, 4))
	assert.Equal(t, 2, d.Sets())

	assert.True(t, d.Connected(1, 2))
	assert.False(t, d.Connected(1, 3))

	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Connected(1, 4))
	assert.Equal(t, 1, d.Sets())

	assert.False(t, d.Union(1, 4), "joining an already joined pair must report false")
	assert.Equal(t, 1, d.Sets())
}

func TestDisjointSetLazyAddThroughFind(t *testing.T) {
	d := New[int]()

	root := d.Find(42)
	assert.Equal(t, 42, root)
	assert.Equal(t, 1, d.Sets())
	assert.Equal(t, 1, d.Len())
}

func TestDisjointSetChainCompression(t *testing.T) {
	d := New[int]()

	// Build one long component pairwise.
	const n = 1000
	for i := 0; i < n-1; i++ {
		require.True(t, d.Union(i, i+1))
	}
	require.Equal(t, 1, d.Sets())
	require.Equal(t, n, d.Len())

	root := d.Find(0)
	for i := 1; i < n; i++ {
		require.Equal(t, root, d.Find(i), "all elements must share one representative")
	}
}

func TestDisjointSetStructKeys(t *testing.T) {
	type cell struct{ x, y int }
	d := New[cell]()

	d.Union(cell{0, 0}, cell{0, 1})
	d.Union(cell{5, 5}, cell{5, 6})

	assert.True(t, d.Connected(cell{0, 0}, cell{0, 1}))
	assert.False(t, d.Connected(cell{0, 0}, cell{5, 5}))
}
