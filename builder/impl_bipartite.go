// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition is "L0".."L{n1-1}", right partition "R0".."R{n2-1}".
//   • Emits every cross arc L_i → R_j, i asc then j asc; the reverse arc
//     follows only WithBidirectional.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) edges.

package builder

import "fmt"

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite[V any](n1, n2 int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, right := PrefixIDFn(leftPrefix), PrefixIDFn(rightPrefix)
		for i := 0; i < n1; i++ {
			s.Vertex(left(i))
		}
		for j := 0; j < n2; j++ {
			s.Vertex(right(j))
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.link(cfg, left(i), right(j))
			}
		}

		return nil
	}
}
