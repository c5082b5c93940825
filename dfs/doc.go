// SPDX-License-Identifier: MIT
// Package dfs implements depth-first traversal on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): pre-order traversal from a start vertex. Each
//     discovered vertex records its depth (Level) and the vertex it was
//     discovered from (Parent; core.None for the start).
//   - Neighbors are explored in adjacency insertion order, so the visitation
//     order is deterministic for a given edge list.
//
// How:
//
//   - The traversal keeps an explicit stack of frames (vertex, level,
//     neighbor cursor) instead of recursing, so path graphs with hundreds of
//     thousands of vertices do not exhaust the goroutine stack. The visiting
//     order is identical to the recursive formulation.
//
// Options:
//
//   - WithOnVisit(fn)     pre-order hook; an error aborts the traversal.
//   - WithMaxDepth(d)     do not descend below level d (d > 0).
//
// Errors:
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if start has no edges; matches core.ErrUnknownVertex.
//   - ErrOptionViolation       for a negative MaxDepth.
//   - any error returned by OnVisit.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and the result maps.
package dfs
