// SPDX-License-Identifier: MIT
// Package dijkstra provides Dijkstra's shortest-path algorithm on undirected
// weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, source) computes the minimum-cost distance and predecessor of
//     every vertex, returned as a *paths.Tree shared with the BFS engine.
//   - It relies on a min-priority queue (gods priorityqueue) to always settle
//     the next-closest vertex; ties are broken in push order, so results are
//     deterministic for a given edge list.
//   - Unreachable vertices keep distance paths.Unreachable (+Inf) and
//     predecessor core.None.
//
// When to use:
//
//   - Any graph holding a weight other than 1. For unit-weight graphs the
//     query package prefers bfs.ShortestPaths; both agree on distances.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the queue holding O(E) entries under lazy decrease-key.
//
// Errors:
//
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight. Each wraps the core
//     sentinel of the same meaning.
package dijkstra
