// SPDX-License-Identifier: MIT
// impl_grid.go: Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c) is vertex r*cols + c + 1, row-major.
//   • 4-neighborhood: for each cell, the right edge then the down edge.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols 4-connected lattice.
func Grid(rows, cols int) Constructor {
	return func(s *EdgeSet, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) int { return r*cols + c + 1 }
		s.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.add(cfg, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					s.add(cfg, id(r, c), id(r+1, c))
				}
			}
		}
		return nil
	}
}
