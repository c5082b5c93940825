package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/paths"
)

// ShortestPaths computes hop-count distances from source on a unit-weight
// graph. Unlike BFS, vertices are marked at ENQUEUE time, so each vertex is
// enqueued once and its distance is final when it is discovered.
//
// target == core.None runs the full pass and returns a complete Tree. A
// non-zero target stops the search as soon as the target is discovered; the
// returned Tree then has Complete == false and is authoritative only for the
// target and the vertices discovered before it. A target that is never
// discovered simply runs the pass to exhaustion.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound (source not an adjacency-map key).
//   - ErrWeightedGraph if g.IsUnitWeight() is false.
//
// Complexity: O(V + E).
func ShortestPaths(g *core.Graph, source, target int) (*paths.Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, source)
	}
	if !g.IsUnitWeight() {
		return nil, ErrWeightedGraph
	}

	tree := paths.New(source, paths.BFS, g.Vertices())
	if target == source {
		tree.Complete = false
		return tree, nil
	}

	visited := make([]bool, g.VertexCount()+1)
	visited[source] = true
	queue := arrayqueue.New()
	queue.Enqueue(source)

	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		u := raw.(int)
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			if visited[v] {
				continue
			}
			visited[v] = true
			tree.Dist[v] = tree.Dist[u] + 1
			tree.Prev[v] = u
			if v == target {
				tree.Complete = false
				return tree, nil
			}
			queue.Enqueue(v)
		}
	}

	return tree, nil
}
