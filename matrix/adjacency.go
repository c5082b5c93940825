// SPDX-License-Identifier: MIT
// Symmetric adjacency-matrix construction for undirected graphs.

package matrix

import (
	"fmt"
	"math"
)

// Entry is one undirected weight destined for cells (U-1,V-1) and (V-1,U-1).
// U and V are 1-based vertex identifiers.
type Entry struct {
	U, V   int
	Weight float64
}

// BuildAdjacency constructs an n×n zero-initialised matrix and writes every
// entry into both of its mirrored cells, in slice order.
// A pair that occurs more than once keeps the weight of its last occurrence.
//
// Errors:
//   - ErrInvalidDimensions if n ≤ 0.
//   - ErrOutOfRange if an endpoint lies outside [1, n].
//
// Complexity: O(n² + len(entries)) time, O(n²) memory.
func BuildAdjacency(n int, entries []Entry) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", err)
	}

	var e Entry
	for i := range entries {
		e = entries[i]
		if err = m.Set(e.U-1, e.V-1, e.Weight); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: entry %d (%d,%d): %w", i, e.U, e.V, err)
		}
		// the mirror cell is in range whenever the first write succeeded
		m.data[(e.V-1)*m.c+(e.U-1)] = e.Weight
	}

	return m, nil
}

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] for all i, j.
// NaN cells never compare equal, so a matrix holding NaN is never symmetric.
func IsSymmetric(m *Dense) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if m.r != m.c {
		return false, fmt.Errorf("IsSymmetric: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			a, b := m.data[i*m.c+j], m.data[j*m.c+i]
			if a != b || math.IsNaN(a) {
				return false, nil
			}
		}
	}

	return true, nil
}
