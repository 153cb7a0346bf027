// SPDX-License-Identifier: MIT
// Package: reachgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs cons
//     in order against a shared vertex set, then indexes the result in a core.Graph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachgraph/core"
)

// Constructor adds vertices and edges to a Set using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor[V any] func(s *Set[V], cfg builderConfig) error

// Set is the working area constructors write into: vertices by name in
// creation order. Vertices are created on first reference.
type Set[V any] struct {
	byName map[string]*core.Vertex[V]
	order  []*core.Vertex[V]
}

// NewSet returns an empty Set.
func NewSet[V any]() *Set[V] {
	return &Set[V]{byName: make(map[string]*core.Vertex[V])}
}

// Vertex returns the vertex named name, creating it on first use.
func (s *Set[V]) Vertex(name string) *core.Vertex[V] {
	if v, ok := s.byName[name]; ok {
		return v
	}
	v := core.NewVertex[V](name)
	s.byName[name] = v
	s.order = append(s.order, v)

	return v
}

// Vertices returns the vertices in creation order.
func (s *Set[V]) Vertices() []*core.Vertex[V] {
	out := make([]*core.Vertex[V], len(s.order))
	copy(out, s.order)

	return out
}

// link adds u→v with a weight drawn from cfg, and v→u when bidirectional.
func (s *Set[V]) link(cfg builderConfig, u, v string) {
	w := cfg.weightFn(cfg.rng)
	s.Vertex(u).AddNeighbor(s.Vertex(v), w)
	if cfg.bidirectional {
		s.Vertex(v).AddNeighbor(s.Vertex(u), w)
	}
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to a fresh Set, and returns a core.Graph holding
// every created vertex (in creation order) configured with gopts.
// Any constructor error is wrapped with the context "BuildGraph: %w".
func BuildGraph[V any](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[V]) (*core.Graph[V], error) {
	cfg := newBuilderConfig(bopts...)
	s := NewSet[V]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return core.NewGraph(s.order, gopts...), nil
}
