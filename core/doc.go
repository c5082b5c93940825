// Package core provides the immutable graph store every query reads from.
//
// The Graph G = (V, E) is undirected and weighted, with vertex identifiers
// fixed to the integer range [1, N] at construction time:
//
//   - Adjacency map: vertex → (neighbor → weight), symmetric by construction,
//     iterated in insertion order (gods linkedhashmap) so every traversal is
//     reproducible for a given edge list.
//   - Adjacency matrix: N×N dense grid (package matrix), zero-initialised,
//     vertex v at row/column v-1, mirroring the same weights.
//
// Both views are derived from one canonical edge list. The map is built in
// Build; the matrix is filled on first use behind a sync.Once, so a graph
// with a wide identifier range and few edges costs O(E) until someone asks
// for the matrix. Nothing is mutated afterwards, and an immutable Graph is
// safe for any number of concurrent readers.
//
// Edge cases kept on purpose:
//
//   - Repeated pair: the last weight wins (both views), the neighbor keeps
//     its first position.
//   - Vertex with no edge: valid identifier (InRange), but not an
//     adjacency-map key (HasVertex == false), so traversals, components and
//     distance maps do not report it.
//
// Core Methods:
//
//	Build(vertexCount int, edges []Edge) (*Graph, error)  // O(N² + E)
//	VertexCount() int                                     // O(1)
//	InRange(v int) bool                                   // O(1)
//	HasVertex(v int) bool                                 // O(1)
//	Vertices() []int                                      // O(V), insertion order
//	Neighbors(v int) ([]int, error)                       // O(deg v)
//	Incident(v int) ([]Arc, error)                        // O(deg v)
//	Weight(u, v int) (float64, bool)                      // O(1)
//	Degree(v int) int                                     // O(1)
//	EdgeCount() int                                       // O(1)
//	Edges() []Edge                                        // O(E)
//	AdjacencyList() []Adjacency                           // O(V + E)
//	MatrixAt(u, v int) (float64, error)                   // O(1), O(N²) on first use
//	Matrix() *matrix.Dense                                // O(N²)
//	HasNegativeWeight() bool                              // O(V + E)
//	IsUnitWeight() bool                                   // O(V + E)
//
// Errors:
//
//	ErrMalformedInput  – invalid vertex count, endpoint or weight at Build
//	ErrUnknownVertex   – query names a vertex the graph does not hold
//	ErrNegativeWeight  – shortest paths on a graph with a negative weight
//	ErrNilGraph        – nil *Graph passed to an algorithm
package core
