package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphq/bfs"
	"github.com/katalvlaran/graphq/core"
	"github.com/stretchr/testify/require"
)

// mustBuild builds an unweighted graph from vertex pairs.
func mustBuild(t *testing.T, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Unweighted(p[0], p[1]))
	}
	g, err := core.Build(n, edges)
	require.NoError(t, err)

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustBuild(t, 3, [2]int{1, 2})
	_, err = bfs.BFS(g, 3) // in range, but no edges
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleLevels covers a 4-cycle: 1-2-3-4-1.
func TestBFS_CycleLevels(t *testing.T) {
	g := mustBuild(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1})

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 3}, res.Order)
	require.Equal(t, []bfs.Visit{
		{Vertex: 1, Level: 0, Parent: core.None},
		{Vertex: 2, Level: 1, Parent: 1},
		{Vertex: 4, Level: 1, Parent: 1},
		{Vertex: 3, Level: 2, Parent: 2},
	}, res.Visits)
	require.Equal(t, "1 -> 2 -> 4 -> 3", res.Path())
}

// TestBFS_DuplicateEnqueue shows that a vertex can be enqueued twice before
// its first dequeue without changing its level or parent.
func TestBFS_DuplicateEnqueue(t *testing.T) {
	g := mustBuild(t, 3, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})

	var enqueued []int
	res, err := bfs.BFS(g, 1, bfs.WithOnEnqueue(func(v, _ int) {
		enqueued = append(enqueued, v)
	}))
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 3}, enqueued)
	require.Equal(t, 2, res.MaxQueueLen)
	require.Equal(t, []int{1, 2, 3}, res.Order)
	require.Equal(t, 1, res.Level[3])
	require.Equal(t, 1, res.Parent[3])
}

// TestBFS_LevelInvariant checks Level[v] == Level[Parent[v]] + 1 on a denser graph.
func TestBFS_LevelInvariant(t *testing.T) {
	g := mustBuild(t, 8,
		[2]int{1, 2}, [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 4}, [2]int{4, 5},
		[2]int{5, 6}, [2]int{2, 6}, [2]int{6, 7}, [2]int{3, 7}, [2]int{7, 8},
	)
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.Len(t, res.Order, 8)

	require.Zero(t, res.Level[1])
	for _, v := range res.Order[1:] {
		p := res.Parent[v]
		require.Equal(t, res.Level[p]+1, res.Level[v], "vertex %d parent %d", v, p)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := mustBuild(t, 4, [2]int{1, 2}, [2]int{3, 4})

	res, err := bfs.BFS(g, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, res.Order)
	_, ok := res.Level[1]
	require.False(t, ok)

	_, err = res.PathTo(1)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustBuild(t, 3, [2]int{1, 2}, [2]int{2, 3})

	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Order)

	res, err = bfs.BFS(g, 1, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Order)
}

// TestBFS_OnVisitAbort propagates a hook error.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := mustBuild(t, 3, [2]int{1, 2}, [2]int{2, 3})
	stop := errors.New("stop")

	res, err := bfs.BFS(g, 1, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2}, res.Order)
}

// TestBFS_PathTo reconstructs a BFS-tree path.
func TestBFS_PathTo(t *testing.T) {
	g := mustBuild(t, 5, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{1, 5}, [2]int{5, 4})

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	p, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 5, 4}, p)
}

// TestBFS_FreshStatePerCall runs two unrelated traversals on one graph.
func TestBFS_FreshStatePerCall(t *testing.T) {
	g := mustBuild(t, 4, [2]int{1, 2}, [2]int{3, 4})

	first, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	second, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	require.Equal(t, first.Visits, second.Visits)
}
