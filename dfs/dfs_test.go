package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/dfs"
)

// build creates an unweighted graph over [1, n] from vertex pairs.
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

// buildChain creates the path 1-2-…-n.
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Unweighted(i, i+1))
	}
	g, err := core.Build(n, edges)
	require.NoError(t, err)

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := build(t, 4, [2]int{1, 2})

	for _, start := range []int{0, 3, 5} {
		_, err := dfs.DFS(g, start)
		assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound, "start %d", start)
		assert.ErrorIs(t, err, core.ErrUnknownVertex, "start %d", start)
	}
}

func TestDFS_NegativeDepth(t *testing.T) {
	g := build(t, 2, [2]int{1, 2})
	_, err := dfs.DFS(g, 1, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

// TestDFS_Square follows the square 1-2-3-4 with chord 1-4.
func TestDFS_Square(t *testing.T) {
	g := build(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{1, 4})

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []dfs.Visit{
		{Vertex: 1, Level: 0, Parent: core.None},
		{Vertex: 2, Level: 1, Parent: 1},
		{Vertex: 3, Level: 2, Parent: 2},
		{Vertex: 4, Level: 3, Parent: 3},
	}, res.Visits)
	assert.Equal(t, "1 -> 2 -> 3 -> 4", res.Path())
}

// TestDFS_Backtrack exercises backtracking to a shallower frame.
//
//	1 - 2 - 3
//	|
//	4 - 5
func TestDFS_Backtrack(t *testing.T) {
	g := build(t, 5, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 4}, [2]int{4, 5})

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 2, 4: 1, 5: 2}, res.Level)
	assert.Equal(t, map[int]int{1: core.None, 2: 1, 3: 2, 4: 1, 5: 4}, res.Parent)
}

func TestDFS_Disconnected(t *testing.T) {
	g := build(t, 6, [2]int{1, 2}, [2]int{4, 5}, [2]int{5, 6})

	res, err := dfs.DFS(g, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 6}, res.Order)
	assert.NotContains(t, res.Level, 1)
}

func TestDFS_SelfLoop(t *testing.T) {
	g := build(t, 2, [2]int{1, 1}, [2]int{1, 2})

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 6)

	res, err := dfs.DFS(g, 1, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := buildChain(t, 5)
	boom := errors.New("boom")

	var seen []int
	res, err := dfs.DFS(g, 1, dfs.WithOnVisit(func(v, level int) error {
		seen = append(seen, v)
		if level == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}

// TestDFS_LongChain walks a path far deeper than a recursive walk could afford.
func TestDFS_LongChain(t *testing.T) {
	const n = 200_000
	g := buildChain(t, n)

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Level[n])
	assert.Equal(t, n-1, res.Parent[n])
}

// TestDFS_EachVertexOnce checks the pre-order invariant on a dense graph.
func TestDFS_EachVertexOnce(t *testing.T) {
	var pairs [][2]int
	for u := 1; u <= 7; u++ {
		for v := u + 1; v <= 7; v++ {
			pairs = append(pairs, [2]int{u, v})
		}
	}
	g := build(t, 7, pairs...)

	res, err := dfs.DFS(g, 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, res.Order)
	for _, v := range res.Order[1:] {
		assert.Equal(t, res.Level[res.Parent[v]]+1, res.Level[v])
	}
}
