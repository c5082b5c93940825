// DFS option, result and error definitions.

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/paths"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = fmt.Errorf("dfs: %w", core.ErrNilGraph)

	// ErrStartVertexNotFound indicates that the start vertex has no entry in
	// the adjacency map. It matches core.ErrUnknownVertex under errors.Is.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrUnknownVertex)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, level int) error

	// MaxDepth, if > 0, keeps the traversal at levels 0..MaxDepth.
	// 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns a DFSOptions with no hook and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnVisit: nil, MaxDepth: 0}
}

// WithOnVisit sets a pre-order hook.
func WithOnVisit(fn func(v, level int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth. Negative values are rejected.
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Visit is one pre-order line of the traversal.
// Parent == core.None marks the start vertex.
type Visit struct {
	Vertex int
	Level  int
	Parent int
}

// Result collects the outcome of a DFS run.
type Result struct {
	// Start is the root of the traversal.
	Start int

	// Visits lists discovered vertices in pre-order.
	Visits []Visit

	// Order is Visits projected to vertex IDs.
	Order []int

	// Level maps vertex → depth from Start.
	Level map[int]int

	// Parent maps vertex → discovering vertex; core.None for Start.
	Parent map[int]int
}

// Path returns the arrow-joined visitation trace, e.g. "1 -> 2 -> 4 -> 3".
func (r *Result) Path() string { return paths.Join(r.Order) }
