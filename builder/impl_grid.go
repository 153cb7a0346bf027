// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Vertex names use the fixed scheme "r,c" (row-major order), not cfg.idFn.
//   • For each (r,c) emit Right then Bottom; both directions are always
//     emitted so every cell reaches every other.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid[V any](rows, cols int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.Vertex(fmt.Sprintf(gridIDFmt, r, c))
			}
		}

		both := cfg
		both.bidirectional = true
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					s.link(both, u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					s.link(both, u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}
