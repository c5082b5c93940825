// SPDX-License-Identifier: MIT
// impl_random_sparse.go: RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j > i.
//   - Weight draws interleave with Bernoulli trials in that same order.
//
// Complexity: O(n²) trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		s.grow(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
					s.add(cfg, i, j)
				case cfg.rng.Float64() < p:
					s.add(cfg, i, j)
				}
			}
		}
		return nil
	}
}
