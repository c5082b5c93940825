// BFS option, result and error definitions.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/paths"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is not an
	// adjacency-map key. It matches core.ErrUnknownVertex under errors.Is.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex not found: %w", core.ErrUnknownVertex)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("bfs: %w", core.ErrNilGraph)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrWeightedGraph is returned when hop-count shortest paths are requested
	// on a graph whose weights are not all 1.
	ErrWeightedGraph = errors.New("bfs: graph is not unit-weight")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnEnqueue is called every time a vertex is appended to the queue,
	// including repeated appends of a vertex not yet dequeued.
	OnEnqueue func(v, level int)

	// OnVisit is called when a vertex is dequeued for the first time.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(v, level int) error

	// MaxDepth, if > 0, stops exploring beyond this level.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on every enqueue.
func WithOnEnqueue(fn func(v, level int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, level int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below the given level.
//
//	d > 0: visit levels 0..d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Visit is one traversal line: a vertex, its level and the vertex it was
// discovered from (core.None for the start vertex).
type Visit struct {
	Vertex int
	Level  int
	Parent int
}

// Result holds the outcome of a BFS traversal:
//   - Visits: one entry per vertex, in dequeue order.
//   - Order: the same vertices as a plain sequence.
//   - Level: vertex → number of edges from the start.
//   - Parent: vertex → predecessor in the BFS tree (core.None for the start).
//   - MaxQueueLen: peak queue length, repeated enqueues included.
type Result struct {
	Start       int
	Visits      []Visit
	Order       []int
	Level       map[int]int
	Parent      map[int]int
	MaxQueueLen int
}

// Path returns the arrow-joined visitation order, "1 -> 2 -> 3".
func (r *Result) Path() string { return paths.Join(r.Order) }

// PathTo reconstructs the BFS-tree path from the start vertex to dest.
// Returns an error wrapping core.ErrUnknownVertex if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Level[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d: %w", dest, core.ErrUnknownVertex)
	}
	path := []int{}
	for cur := dest; cur != core.None; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
