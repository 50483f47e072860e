package heap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapOrderedDrain(t *testing.T) {
	h := NewOrdered[int]()
	rng := rand.New(rand.NewSource(7))

	const n = 1000
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(10 * n)
		h.Push(values[i])
	}
	require.Equal(t, n, h.Len())

	sort.Ints(values)
	for i := 0; i < n; i++ {
		v, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, values[i], v, "drain must come out sorted")
	}
	assert.Equal(t, 0, h.Len())
}

func TestHeapCustomOrdering(t *testing.T) {
	type job struct {
		name     string
		priority int
	}

	h := New(func(a, b job) bool { return a.priority < b.priority })
	h.Push(job{name: "compact", priority: 9})
	h.Push(job{name: "flush", priority: 1})
	h.Push(job{name: "merge", priority: 4})

	v, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, "flush", v.name)

	v, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, "merge", v.name)
}

func TestHeapPeek(t *testing.T) {
	h := NewOrdered[int]()

	_, err := h.Peek()
	assert.ErrorIs(t, err, ErrEmpty)

	h.Push(3)
	h.Push(1)

	v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, h.Len(), "peek must not consume")
}

func TestHeapEmptyPop(t *testing.T) {
	h := NewOrdered[int]()
	_, err := h.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestHeapDuplicates(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{5, 5, 1, 5, 1} {
		h.Push(v)
	}

	var got []int
	for h.Len() > 0 {
		v, err := h.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 5, 5, 5}, got)
}

func TestHeapInterleavedPushPop(t *testing.T) {
	h := NewOrdered[int]()

	h.Push(10)
	h.Push(2)

	v, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	h.Push(1)
	h.Push(20)

	v, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}
