// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Creates vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Path returns a Constructor that builds a simple directed path P_n.
func Path[V any](n int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.Vertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			s.link(cfg, cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
