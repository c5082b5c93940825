// Dijkstra execution: a lazy min-priority queue over a paths.Tree.

package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/paths"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of g. Vertices with no path keep paths.Unreachable and core.None.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source as an adjacency-map key (ErrVertexNotFound).
//  3. No stored weight may be negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int) (*paths.Tree, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate source exists in the graph
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	// 3) Pre-scan all weights. Fail fast with ErrNegativeWeight.
	if g.HasNegativeWeight() {
		return nil, ErrNegativeWeight
	}

	// 4) Initialize runner and run main loop.
	r := &runner{
		g:    g,
		tree: paths.New(source, paths.Dijkstra, g.Vertices()),
		pq:   priorityqueue.NewWith(byDistance),
	}
	r.push(source, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *core.Graph          // read-only input
	tree *paths.Tree          // distances and predecessors, updated in place
	pq   *priorityqueue.Queue // min-queue of *nodeItem
	seq  int                  // push counter for stable tie-breaking
}

// push enqueues v at distance d.
func (r *runner) push(v int, d float64) {
	r.pq.Enqueue(&nodeItem{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the vertex with the minimum tentative distance
// and relaxes its incident edges until the queue is empty.
func (r *runner) process() error {
	for !r.pq.Empty() {
		raw, _ := r.pq.Dequeue()
		item := raw.(*nodeItem)

		// stale entry: a shorter distance was recorded after this push
		if item.dist > r.tree.Dist[item.id] {
			continue
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u through u.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Incident(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	du := r.tree.Dist[u]
	for _, a := range arcs {
		nd := du + a.Weight
		if nd < r.tree.Dist[a.To] {
			r.tree.Dist[a.To] = nd
			r.tree.Prev[a.To] = u
			r.push(a.To, nd)
		}
	}

	return nil
}
