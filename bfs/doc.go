// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - BFS(g, start, opts...) explores vertices level by level and returns a
//     Result with one Visit{Vertex, Level, Parent} per vertex in dequeue
//     order, the plain Order, Level and Parent maps, and the peak queue size.
//   - ShortestPaths(g, source, target) returns a paths.Tree of hop-count
//     distances on unit-weight graphs, with optional early exit at target.
//
// Queue discipline
//
//	BFS deduplicates at dequeue time: a vertex adjacent to several vertices of
//	one level is enqueued once per such neighbor and skipped on every dequeue
//	after the first. Level and parent come from the first enqueue, so they are
//	the true BFS-tree values; only the queue length is affected.
//	ShortestPaths marks at enqueue time, the textbook form, which is what lets
//	it stop as soon as the target is discovered.
//
// Determinism
//
//	Neighbors are expanded in the graph's insertion order, so the visit
//	sequence is reproducible for a given edge list.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for BFS state; the BFS queue may reach O(E) entries.
//
// Options
//
//   - WithOnEnqueue(fn): hook on every enqueue, repeats included.
//   - WithOnVisit(fn):   hook on first dequeue; returning an error aborts.
//   - WithMaxDepth(d):   stop below level d (d > 0); 0 means no limit.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if start is not an adjacency-map key (matches core.ErrUnknownVertex).
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrWeightedGraph        if ShortestPaths runs on a graph that is not unit-weight.
//   - Wrapped hook errors from OnVisit.
package bfs
