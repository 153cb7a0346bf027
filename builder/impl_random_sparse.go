// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i ≠ j: include the
//     directed edge i → j independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order is i asc then j asc, so outcomes are fixed for a fixed seed.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples a directed random graph
// over n vertices with independent edge probability p.
func RandomSparse[V any](n int, p float64) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			s.Vertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p == probMax || (p > probMin && cfg.rng.Float64() < p) {
					s.link(cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
