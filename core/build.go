// SPDX-License-Identifier: MIT
// File: build.go
// Role: the single construction path of Graph.
// Policy:
//   - Validate everything first; build only when the whole input is valid.
//   - Both adjacency views are derived from the same edge slice, in order;
//     the matrix is filled lazily so large sparse graphs never pay O(N²).

package core

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/graphq/matrix"
)

// Build constructs a Graph of vertexCount vertices from edges.
//
// Implementation:
//   - Stage 1: validate vertexCount ≥ 1 and every edge (endpoints in
//     [1, vertexCount], finite weight).
//   - Stage 2: insert (u→v: w) and (v→u: w) into the adjacency map.
//   - The adjacency matrix is derived from the same edges on first use
//     (see (*Graph).adjacencyMatrix).
//
// Behavior highlights:
//   - A repeated pair overwrites the earlier weight (last write wins) in both
//     views; the neighbor keeps the position of its first insertion.
//   - A self-loop (u == v) is stored once, as v→v.
//   - Vertices that never occur in an edge are valid identifiers but are not
//     keys of the adjacency map, so traversals and components never see them.
//
// Errors:
//   - ErrMalformedInput (wrapped with the edge index) for any invalid input.
//
// Complexity:
//   - Time O(E), Space O(E); the matrix adds O(N²) once it is requested.
func Build(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 1 {
		return nil, fmt.Errorf("%w: vertex count %d < 1", ErrMalformedInput, vertexCount)
	}
	var e Edge
	for i := range edges {
		e = edges[i]
		if e.U < 1 || e.U > vertexCount || e.V < 1 || e.V > vertexCount {
			return nil, fmt.Errorf("%w: edge %d (%d,%d): vertex outside [1,%d]",
				ErrMalformedInput, i, e.U, e.V, vertexCount)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edge %d (%d,%d): weight %v is not finite",
				ErrMalformedInput, i, e.U, e.V, e.Weight)
		}
	}

	g := &Graph{
		n:     vertexCount,
		adj:   linkedhashmap.New(),
		edges: make([]Edge, len(edges)),
	}
	copy(g.edges, edges)

	for _, e = range edges {
		if g.insert(e.U, e.V, e.Weight) {
			g.pairs++
		}
		if e.U != e.V {
			g.insert(e.V, e.U, e.Weight)
		}
	}

	return g, nil
}

// adjacencyMatrix fills the adjacency matrix from g.edges exactly once, in edge order,
// so a repeated pair keeps its last weight just as adj does.
func (g *Graph) adjacencyMatrix() (*matrix.Dense, error) {
	g.matOnce.Do(func() {
		entries := make([]matrix.Entry, len(g.edges))
		for i, e := range g.edges {
			entries[i] = matrix.Entry{U: e.U, V: e.V, Weight: e.Weight}
		}
		g.mat, g.matErr = matrix.BuildAdjacency(g.n, entries)
	})

	return g.mat, g.matErr
}

// insert stores from→to with weight w and reports whether the pair is new.
func (g *Graph) insert(from, to int, w float64) bool {
	var nbrs *linkedhashmap.Map
	if raw, ok := g.adj.Get(from); ok {
		nbrs = raw.(*linkedhashmap.Map)
	} else {
		nbrs = linkedhashmap.New()
		g.adj.Put(from, nbrs)
	}
	_, existed := nbrs.Get(to)
	nbrs.Put(to, w)

	return !existed
}
