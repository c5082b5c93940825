// SPDX-License-Identifier: MIT
//
// Package matrix provides the dense adjacency-matrix view of a graph.
//
// What & Why:
//
//	Dense is a row-major float64 grid with bounds-checked accessors. The
//	graph store keeps one N×N Dense next to its adjacency map so callers
//	that address edges by position (row u-1, column v-1) get O(1) lookups
//	without walking neighbor sets.
//
//	BuildAdjacency fills a zero-initialised square matrix from a list of
//	symmetric entries, in order, so a repeated pair keeps the weight of its
//	last occurrence, exactly like the adjacency map built from the same list.
//
// Complexity:
//
//	NewDense, Clone: O(r*c) time and memory.
//	At, Set, Rows, Cols: O(1).
//	BuildAdjacency: O(n² + len(entries)).
package matrix
