// SPDX-License-Identifier: MIT
// api.go: public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   • Constructors are declared in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphq/core"
)

// EdgeSet is the shared output of constructors: the vertex count so far and
// the edges in emission order.
type EdgeSet struct {
	N     int
	Edges []core.Edge
}

// grow raises N to at least n.
func (s *EdgeSet) grow(n int) {
	if n > s.N {
		s.N = n
	}
}

// add emits the edge (u, v) with the next configured weight.
func (s *EdgeSet) add(cfg builderConfig, u, v int) {
	s.Edges = append(s.Edges, core.Edge{U: u, V: v, Weight: cfg.weightFn(cfg.rng)})
}

// Constructor appends a deterministic topology over [1, n] to the EdgeSet.
// Constructors validate parameters first and leave the set untouched on error.
type Constructor func(s *EdgeSet, cfg builderConfig) error

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order to one EdgeSet. Any constructor error is wrapped with
// "BuildEdges: %w" and returned immediately.
// Complexity: Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (*EdgeSet, error) {
	cfg := newBuilderConfig(bopts...)
	s := &EdgeSet{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return s, nil
}

// BuildGraph is BuildEdges followed by core.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	s, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	if s.N == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrTooFewVertices)
	}

	return core.Build(s.N, s.Edges)
}

// Kinds lists the names accepted by ByName.
var Kinds = []string{"cycle", "path", "star", "complete", "grid", "wheel", "random"}

// ByName resolves a constructor from its kind. n is the vertex count, except
// for "grid" where it is the side length of an n×n grid. p is used by
// "random" only.
func ByName(kind string, n int, p float64) (Constructor, error) {
	switch kind {
	case "cycle":
		return Cycle(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "wheel":
		return Wheel(n), nil
	case "random":
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownKind, kind, Kinds)
}
