// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i → (i+1) mod n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

// Cycle returns a Constructor that builds a directed cycle C_n.
func Cycle[V any](n int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.Vertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			s.link(cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
