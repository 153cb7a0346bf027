// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn ("0","1","2",...)
//   • rng           = nil (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn
//   • bidirectional = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex name strategy: index -> name.
	idFn func(int) string

	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Weight generator for edges.
	weightFn WeightFn

	// bidirectional emits v→u next to every u→v.
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
