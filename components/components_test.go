package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphq/components"
	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/dfs"
)

func build(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Unweighted(p[0], p[1]))
	}
	g, err := core.Build(n, edges)
	require.NoError(t, err)

	return g
}

func TestFind_Nil(t *testing.T) {
	assert.Nil(t, components.Find(nil))
	assert.Zero(t, components.Count(nil))
	assert.False(t, components.IsConnected(nil))
}

func TestFind_TwoComponentsAndIsolated(t *testing.T) {
	// vertex 6 has no edges
	g := build(t, 6, [2]int{1, 2}, [2]int{2, 3}, [2]int{4, 5})

	comps := components.Find(g)
	require.Len(t, comps, 2)
	assert.Equal(t, []int{1, 2, 3}, comps[0].Vertices)
	assert.Equal(t, 3, comps[0].Size())
	assert.Equal(t, "[1 2 3]", comps[0].String())
	assert.Equal(t, []int{4, 5}, comps[1].Vertices)
	assert.False(t, components.IsConnected(g))
	assert.Equal(t, 2, components.Count(g))
}

func TestFind_SeedOrderFollowsEdgeList(t *testing.T) {
	g := build(t, 5, [2]int{5, 4}, [2]int{1, 2}, [2]int{3, 3})

	comps := components.Find(g)
	require.Len(t, comps, 3)
	assert.Equal(t, []int{5, 4}, comps[0].Vertices)
	assert.Equal(t, []int{1, 2}, comps[1].Vertices)
	assert.Equal(t, []int{3}, comps[2].Vertices)
}

func TestIsConnected(t *testing.T) {
	g := build(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1})
	assert.True(t, components.IsConnected(g))
}

// TestFind_Partition checks that components partition the adjacency keys and
// each matches the DFS reach of its first vertex.
func TestFind_Partition(t *testing.T) {
	g := build(t, 10,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1},
		[2]int{4, 5}, [2]int{5, 6}, [2]int{6, 7},
		[2]int{8, 9},
	)

	seen := map[int]bool{}
	for _, c := range components.Find(g) {
		res, err := dfs.DFS(g, c.Vertices[0])
		require.NoError(t, err)
		assert.Equal(t, res.Order, c.Vertices)
		for _, v := range c.Vertices {
			assert.False(t, seen[v], "vertex %d in two components", v)
			seen[v] = true
		}
	}
	assert.Len(t, seen, len(g.Vertices()))
	assert.NotContains(t, seen, 10)
}

func TestFind_LongChain(t *testing.T) {
	const n = 150_000
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Unweighted(i, i+1))
	}
	g, err := core.Build(n, edges)
	require.NoError(t, err)

	comps := components.Find(g)
	require.Len(t, comps, 1)
	assert.Equal(t, n, comps[0].Size())
}
