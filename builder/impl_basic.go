// SPDX-License-Identifier: MIT
// impl_basic.go: deterministic topologies: Cycle, Path, Star, Complete, Wheel.
//
// Contract (all):
//   • Vertices are 1..n; the EdgeSet grows to at least n.
//   • Edges are emitted in a stable, documented order.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity: O(n) edges, O(n²) for Complete.

package builder

import "fmt"

// File-local constants (stable method tags for context).
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodWheel    = "Wheel"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 1
	minWheelNodes    = 4
)

func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
}

// Cycle returns a Constructor for C_n: edges i–(i mod n)+1 for i = 1..n.
func Cycle(n int) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		s.grow(n)
		for i := 1; i <= n; i++ {
			s.add(cfg, i, i%n+1)
		}
		return nil
	}
}

// Path returns a Constructor for P_n: edges i–i+1 for i = 1..n-1.
func Path(n int) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		s.grow(n)
		for i := 1; i < n; i++ {
			s.add(cfg, i, i+1)
		}
		return nil
	}
}

// Star returns a Constructor for a star with center 1 and leaves 2..n.
func Star(n int) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		s.grow(n)
		for i := 2; i <= n; i++ {
			s.add(cfg, 1, i)
		}
		return nil
	}
}

// Complete returns a Constructor for K_n: every pair i<j, i asc then j asc.
// K_1 has a vertex and no edges.
func Complete(n int) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		s.grow(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				s.add(cfg, i, j)
			}
		}
		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 1 joined to the rim cycle 2..n.
// Rim edges come first, then spokes.
func Wheel(n int) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		s.grow(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.add(cfg, 2+i, 2+(i+1)%rim)
		}
		for i := 2; i <= n; i++ {
			s.add(cfg, 1, i)
		}
		return nil
	}
}
