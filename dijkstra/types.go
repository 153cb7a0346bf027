// Package dijkstra defines the errors and configuration options for
// Dijkstra's shortest-path algorithm over a core.Graph.
//
// Options:
//
//	– WithContext:              cancellation and deadlines.
//	– WithMaxDistance:          cap on distances to explore; vertices beyond it are never finalized.
//	– WithEndToStart:           ShortestPath returns end→start instead of start→end.
//	– WithNegativeWeightCheck:  scan reachable edges up front and fail with ErrNegativeWeight on negative or NaN weights.
//
// Errors (sentinel):
//
//	– ErrNilGraph             if the provided graph pointer is nil.
//	– ErrVertexNotFound       if the start vertex is not indexed by the graph.
//	– ErrNegativeWeight       if the negative-weight scan was requested and found one.
//	– ErrBadMaxDistance       if MaxDistance < 0 (panics in the option constructor).
//	– ErrTypeMismatch         panic value if the internal heap is handed a foreign entry.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrNegativeWeight indicates that a negative or NaN edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrTypeMismatch indicates that the priority queue was asked to hold or
	// compare something other than its own entries. It is an internal invariant
	// violation and is raised as a panic.
	ErrTypeMismatch = errors.New("dijkstra: priority queue operand type mismatch")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – vertices whose shortest distance exceeds it are not finalized.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Ctx                 context.Context
	MaxDistance         float64
	EndToStart          bool
	CheckNegativeWeight bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithEndToStart makes ShortestPath return vertices from end back to start.
func WithEndToStart() Option {
	return func(o *Options) { o.EndToStart = true }
}

// WithNegativeWeightCheck enables an up-front scan of every edge reachable
// from the start vertex. Without it negative weights are not detected and
// yield undefined results.
func WithNegativeWeightCheck() Option {
	return func(o *Options) { o.CheckNegativeWeight = true }
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - Ctx:                 context.Background().
//   - MaxDistance:         +Inf (explore all reachable vertices).
//   - EndToStart:          false (paths in start→end order).
//   - CheckNegativeWeight: false.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
	}
}
