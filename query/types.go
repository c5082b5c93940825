// Query kinds, routes and batch requests.

package query

import (
	"github.com/katalvlaran/graphq/paths"
)

// Kind names a query.
type Kind string

const (
	KindDFS        Kind = "dfs"
	KindBFS        Kind = "bfs"
	KindComponents Kind = "components"
	KindPath       Kind = "path"  // single pair
	KindPaths      Kind = "paths" // all targets
)

// algorithmNone labels queries that do not pick a shortest-path algorithm.
const algorithmNone = "none"

// Route is the answer to one single-pair query.
type Route struct {
	Source    int
	Target    int
	Algorithm paths.Algorithm
	Reachable bool
	Distance  float64 // paths.Unreachable when !Reachable
	Path      []int   // nil when !Reachable
}

// Routes is the answer to one all-targets query: one Route per
// adjacency-map key, the source included, in key order.
type Routes struct {
	Source    int
	Algorithm paths.Algorithm
	Routes    []Route
}

// Request is one entry of a query batch. Target is ignored by kinds that do
// not use it; for KindPath a zero Target means all targets.
type Request struct {
	Kind   Kind
	Source int
	Target int
}

// Result is the outcome of one Request. Value holds *dfs.Result,
// *bfs.Result, []components.Component, *Route or *Routes; Err holds a
// recoverable query error.
type Result struct {
	Request Request
	Value   interface{}
	Err     error
}
