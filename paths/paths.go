// SPDX-License-Identifier: MIT
// Package paths holds the single-source shortest-path result shared by the
// BFS and Dijkstra engines: a distance map, a predecessor map and backward
// path reconstruction.
package paths

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphq/core"
)

// Unreachable is the sentinel distance of a vertex with no path from the
// source. It compares greater than every real distance.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether d is the Unreachable sentinel.
func IsUnreachable(d float64) bool { return math.IsInf(d, 1) }

// Algorithm names the engine that produced a Tree.
type Algorithm string

const (
	// BFS is breadth-first search, used on unit-weight graphs.
	BFS Algorithm = "bfs"

	// Dijkstra is the priority-queue relaxation used on non-negative weighted graphs.
	Dijkstra Algorithm = "dijkstra"
)

// Tree is the outcome of one single-source shortest-path pass.
//
//   - Order lists the vertices the distance map covers, in adjacency-map key order.
//   - Dist maps every vertex in Order to its distance; Unreachable if no path.
//   - Prev maps every vertex in Order to its predecessor; core.None for the
//     source and for unreachable vertices.
type Tree struct {
	Source    int
	Algorithm Algorithm
	Order     []int
	Dist      map[int]float64
	Prev      map[int]int

	// Complete is false when the pass stopped early at a target; only the
	// target and the vertices settled before it are then authoritative.
	Complete bool
}

// New allocates a Tree over order with every distance Unreachable, every
// predecessor None, and the source at distance 0.
// Complexity: O(V).
func New(source int, alg Algorithm, order []int) *Tree {
	t := &Tree{
		Source:    source,
		Algorithm: alg,
		Order:     order,
		Dist:      make(map[int]float64, len(order)),
		Prev:      make(map[int]int, len(order)),
		Complete:  true,
	}
	for _, v := range order {
		t.Dist[v] = Unreachable
		t.Prev[v] = core.None
	}
	t.Dist[source] = 0

	return t
}

// Distance returns the distance to v; Unreachable if v has no path or is not
// covered by the tree.
func (t *Tree) Distance(v int) float64 {
	d, ok := t.Dist[v]
	if !ok {
		return Unreachable
	}

	return d
}

// Reachable reports whether v has a path from the source.
func (t *Tree) Reachable(v int) bool { return !IsUnreachable(t.Distance(v)) }

// PathTo reconstructs source → … → v by chaining predecessors backwards from v
// until core.None. Returns nil if v is unreachable.
// Complexity: O(path length).
func (t *Tree) PathTo(v int) []int {
	if !t.Reachable(v) {
		return nil
	}
	path := []int{}
	for cur := v; cur != core.None; cur = t.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → v
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Join renders a vertex sequence as an arrow-joined trace: "1 -> 2 -> 3".
func Join(vs []int) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
