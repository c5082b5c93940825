// SPDX-License-Identifier: MIT
// File: methods.go
// Role: read-only queries over an immutable Graph.
// Policy:
//   - Every slice returned is a fresh copy; callers may keep or modify it.
//   - Iteration order is insertion order of the adjacency map.

package core

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/graphq/matrix"
)

// VertexCount returns N, the size of the identifier range [1, N].
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// InRange reports whether v is a valid identifier, 1 ≤ v ≤ N.
// Complexity: O(1).
func (g *Graph) InRange(v int) bool { return v >= 1 && v <= g.n }

// HasVertex reports whether v is a key of the adjacency map, i.e. whether v
// occurs in at least one edge.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj.Get(v)
	return ok
}

// Vertices returns the adjacency-map keys in insertion order: the order in
// which vertices first appear in the edge list.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.adj.Size())
	it := g.adj.Iterator()
	for it.Next() {
		out = append(out, it.Key().(int))
	}

	return out
}

// neighborsOf returns the neighbor map of v or ErrUnknownVertex.
func (g *Graph) neighborsOf(v int) (*linkedhashmap.Map, error) {
	raw, ok := g.adj.Get(v)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}

	return raw.(*linkedhashmap.Map), nil
}

// Neighbors returns the neighbors of v in insertion order.
// Returns ErrUnknownVertex if v is not an adjacency-map key.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	nbrs, err := g.neighborsOf(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, nbrs.Size())
	it := nbrs.Iterator()
	for it.Next() {
		out = append(out, it.Key().(int))
	}

	return out, nil
}

// Incident returns the neighbors of v together with edge weights, in
// insertion order. Returns ErrUnknownVertex if v is not an adjacency-map key.
// Complexity: O(deg(v)).
func (g *Graph) Incident(v int) ([]Arc, error) {
	nbrs, err := g.neighborsOf(v)
	if err != nil {
		return nil, err
	}
	out := make([]Arc, 0, nbrs.Size())
	it := nbrs.Iterator()
	for it.Next() {
		out = append(out, Arc{To: it.Key().(int), Weight: it.Value().(float64)})
	}

	return out, nil
}

// Weight returns the stored weight of edge (u, v) and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	nbrs, err := g.neighborsOf(u)
	if err != nil {
		return 0, false
	}
	w, ok := nbrs.Get(v)
	if !ok {
		return 0, false
	}

	return w.(float64), true
}

// Degree returns the number of distinct neighbors of v (0 for a vertex with
// no edges). A self-loop contributes one neighbor, v itself.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	nbrs, err := g.neighborsOf(v)
	if err != nil {
		return 0
	}

	return nbrs.Size()
}

// EdgeCount returns the number of distinct unordered pairs stored.
// Repeated input lines for one pair count once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.pairs }

// Edges returns a copy of the canonical edge list given to Build, duplicates included.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// AdjacencyList returns every vertex with its weighted neighbors, vertices
// and neighbors both in insertion order.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() []Adjacency {
	out := make([]Adjacency, 0, g.adj.Size())
	it := g.adj.Iterator()
	for it.Next() {
		arcs, _ := g.Incident(it.Key().(int))
		out = append(out, Adjacency{Vertex: it.Key().(int), Neighbors: arcs})
	}

	return out
}

// MatrixAt returns the matrix cell for (u, v): the edge weight, or 0 when the
// pair is not connected. Returns ErrUnknownVertex if u or v is outside [1, N].
// Complexity: O(1) after the first matrix access, O(N² + E) for that one.
func (g *Graph) MatrixAt(u, v int) (float64, error) {
	if !g.InRange(u) || !g.InRange(v) {
		return 0, fmt.Errorf("%w: (%d,%d) outside [1,%d]", ErrUnknownVertex, u, v, g.n)
	}
	m, err := g.adjacencyMatrix()
	if err != nil {
		return 0, err
	}

	return m.At(u-1, v-1)
}

// Matrix returns a deep copy of the N×N adjacency matrix, or nil if it
// cannot be built (never the case for a Graph returned by Build).
// Complexity: O(N²).
func (g *Graph) Matrix() *matrix.Dense {
	m, err := g.adjacencyMatrix()
	if err != nil {
		return nil
	}

	return m.Clone()
}
