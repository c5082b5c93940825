// Sentinel errors and priority-queue entries for Dijkstra.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphq/core"
)

// Sentinel errors returned by the Dijkstra implementation.
// Each one wraps the matching core sentinel, so callers may test either.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: %w", core.ErrNilGraph)

	// ErrVertexNotFound indicates that the source vertex has no edges.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source vertex not found: %w", core.ErrUnknownVertex)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("dijkstra: %w", core.ErrNegativeWeight)
)

// nodeItem is one lazy priority-queue entry.
// seq breaks ties between equal distances in push order.
type nodeItem struct {
	id   int
	dist float64
	seq  int
}

// byDistance orders nodeItems by distance, then by push order.
func byDistance(a, b interface{}) int {
	x, y := a.(*nodeItem), b.(*nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	}

	return 0
}
