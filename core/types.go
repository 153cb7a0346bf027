// Package core defines the Vertex and Graph types shared by every traversal
// package, together with lazy adjacency validation and path extraction.
//
// This file declares the sentinel errors, GraphOption and the internal
// graph configuration.
//
// Errors:
//
//	ErrEdgeNotFound     - a weight was requested for a vertex that is not a neighbor.
//	ErrMissingNeighbor  - a traversal reached a vertex whose neighbor is not in the graph.
//	ErrVertexNotFound   - a vertex name is not indexed by the graph.
//	ErrNoPath           - the requested end vertex is unreachable from start.
package core

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for core graph operations.
var (
	// ErrEdgeNotFound indicates an EdgeWeight lookup for a vertex that was never
	// added as a neighbor.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMissingNeighbor indicates a referential-integrity failure: a vertex reached
	// by a traversal links to a neighbor that was never added to the graph.
	ErrMissingNeighbor = errors.New("core: vertex has a neighbor that wasn't added to the graph")

	// ErrVertexNotFound indicates an operation referenced a vertex the graph does not index.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoPath indicates that no directed path connects the requested vertices.
	ErrNoPath = errors.New("core: no path")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// graphConfig holds the construction-time knobs of a Graph.
type graphConfig struct {
	logger zerolog.Logger
}

// WithLogger attaches a structured logger. Registration, validation and
// canonicalization events are emitted at debug level. The default is a no-op logger.
func WithLogger(l zerolog.Logger) GraphOption {
	return func(c *graphConfig) { c.logger = l }
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
