// SPDX-License-Identifier: MIT
// Package components partitions a core.Graph into connected components.
//
// Every vertex that occurs in at least one edge belongs to exactly one
// component. Seeds are taken in adjacency-map key order and each component
// lists its vertices in depth-first discovery order, so the output is
// deterministic for a given edge list. Vertices without edges belong to no
// component.
//
// Time:   O(V + E).
// Memory: O(N) for visited flags, O(V) for the explicit stack.
package components
