// Package bfs provides breadth-first search over a core.Graph: reachability,
// fewest-hop shortest paths and full traversals.
//
// What
//
//   - Search(g, start, end): true when end is discovered as the neighbor of a
//     dequeued vertex. Edge weights are ignored.
//   - ShortestPath(g, start, end): a fewest-edge path, start→end by default,
//     end→start with WithEndToStart. Unreachable end wraps core.ErrNoPath.
//   - Walk(g, start): exhaustive traversal returning a Result with
//     Order (dequeue sequence), Depth and Parent.
//
// Determinism
//
//	Neighbors are expanded in insertion order, so among equal-length paths
//	the one through the earliest inserted neighbor wins.
//
// Validation
//
//	Each dequeued vertex is validated before its neighbors are expanded
//	(core.Graph.Expand). A neighbor missing from the graph aborts the call with
//	core.ErrMissingNeighbor naming the vertex. Vertices never dequeued are not checked.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):       cancellation.
//   - WithMaxDepth(d):        do not enqueue vertices deeper than d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, neighbor) == false.
//   - WithOnEnqueue(fn):      hook when a vertex is enqueued.
//   - WithOnVisit(fn):        hook when a vertex is dequeued; an error aborts.
//   - WithEndToStart():       ShortestPath returns end→start.
//
// Errors
//
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  start not indexed by the graph.
//   - ErrOptionViolation      invalid Option (negative MaxDepth).
//   - core.ErrMissingNeighbor dangling neighbor on a reached vertex.
//   - core.ErrNoPath          ShortestPath with an unreachable end.
package bfs
