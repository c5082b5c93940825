// SPDX-License-Identifier: MIT
// Package core defines the immutable Graph store, the Edge type and the
// sentinel errors shared by every algorithm package.
//
// Errors:
//
//	ErrMalformedInput  - construction input is invalid (vertex out of range, bad weight, N < 1).
//	ErrUnknownVertex   - a query named a vertex the graph does not hold.
//	ErrNegativeWeight  - shortest paths were requested on a graph holding a negative weight.
//	ErrNilGraph        - a nil *Graph was passed to an algorithm.
package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/graphq/matrix"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrMalformedInput indicates that an edge or the vertex count cannot form a valid graph.
	// Construction-time; no partially built Graph is ever returned with it.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrUnknownVertex indicates that a query referenced a vertex absent from the graph.
	// Query-time and recoverable: the Graph stays usable for further queries.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrNegativeWeight indicates that a shortest-path query met a negative edge weight.
	// Nothing is computed when it is returned.
	ErrNegativeWeight = errors.New("core: negative edge weight unsupported")

	// ErrNilGraph indicates that a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("core: graph is nil")
)

// None is the vertex identifier that marks "no vertex": the parent of a
// traversal root and the predecessor of a shortest-path source.
// Vertex identifiers start at 1, so None never collides with a real vertex.
const None = 0

// DefaultWeight is the weight of an edge given without an explicit weight.
const DefaultWeight float64 = 1

// Edge is one undirected connection between U and V with a real Weight.
type Edge struct {
	// U and V are 1-based vertex identifiers.
	U, V int

	// Weight is the edge cost. Loaders use DefaultWeight when the input omits it.
	Weight float64
}

// Unweighted returns the edge (u, v) carrying DefaultWeight.
func Unweighted(u, v int) Edge {
	return Edge{U: u, V: v, Weight: DefaultWeight}
}

// Arc is one neighbor entry of a vertex: the neighbor and the weight of the
// connecting edge.
type Arc struct {
	To     int
	Weight float64
}

// Adjacency is the neighbor list of one vertex, in insertion order.
type Adjacency struct {
	Vertex    int
	Neighbors []Arc
}

// Graph is the immutable in-memory store of an undirected weighted graph.
//
// It keeps two views of the same canonical edge list:
//   - adj: vertex → (neighbor → weight), both levels in insertion order,
//     built by Build;
//   - mat: N×N dense matrix, vertex v at row/column v-1, built from edges on
//     the first Matrix or MatrixAt call.
//
// A Graph is never mutated after Build apart from that one guarded matrix
// fill, so any number of goroutines may query it concurrently.
type Graph struct {
	n     int                // vertex count, identifiers in [1, n]
	adj   *linkedhashmap.Map // int → *linkedhashmap.Map (int → float64)
	edges []Edge             // canonical edge list, as given to Build
	pairs int                // distinct unordered pairs stored in adj

	matOnce sync.Once
	mat     *matrix.Dense // symmetric weight grid, nil until first use
	matErr  error
}
