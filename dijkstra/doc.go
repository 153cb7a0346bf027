// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Search reports whether end is reachable, stopping as soon as end is finalized.
//   - ShortestPath returns a minimum-weight vertex path, start→end by default.
//   - Distances runs to exhaustion and returns every distance plus the predecessor map.
//   - A min-heap with lazy deletion drives the expansion; stale entries are skipped.
//
// Validation:
//
//   - Before a vertex's edges are relaxed it is validated against the graph, the
//     same lazy check BFS performs. A neighbor missing from the graph aborts the
//     run with core.ErrMissingNeighbor naming the offending vertex.
//
// Negative weights:
//
//   - They are not supported. By default nothing checks for them and results are
//     undefined; WithNegativeWeightCheck scans reachable edges first and fails
//     with ErrNegativeWeight.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: start is not indexed by the graph.
//   - ErrNegativeWeight: negative weight found by the opt-in scan.
//   - ErrBadMaxDistance: panic from WithMaxDistance on a negative cap.
//   - ErrTypeMismatch:   panic on an internal heap invariant violation.
//   - core.ErrNoPath:    ShortestPath with an unreachable end.
//
// Example:
//
//	path, err := dijkstra.ShortestPath(g, a, d)
//	if errors.Is(err, core.ErrNoPath) {
//	    // unreachable
//	}
//	cost, _ := core.PathWeight(path)
package dijkstra
