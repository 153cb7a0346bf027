// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center": a directed ring of n-1 vertices plus a hub.
//   • n ≥ 4, since the ring must itself be a valid cycle.
//
// Contract:
//   • Ring is built by Cycle(n-1) with the same cfg, names cfg.idFn(0..n-2).
//   • Spokes Center → rim and rim → Center are emitted in ring order, so the
//     hub is a shortcut between any two rim vertices.
//
// Complexity: O(n) vertices + O(3(n-1)) edges.

package builder

import "fmt"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel[V any](n int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle[V](n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		s.Vertex(centerVertexID)
		both := cfg
		both.bidirectional = true
		for i := 0; i < n-1; i++ {
			s.link(both, centerVertexID, cfg.idFn(i))
		}

		return nil
	}
}
