// Package core provides the generic Vertex and Graph types used by the bfs
// and dijkstra packages.
//
// A Vertex[V] is a named node with an optional payload of type V and an
// ordered list of weighted, directed edges to other vertices:
//
//	a := core.NewVertex[int]("A", 1)
//	b := core.NewVertex[int]("B")
//	a.AddNeighbor(b, 2.5) // upsert: a second call only updates the weight
//
// A Graph[V] indexes vertices by name:
//
//	g := core.NewGraph([]*core.Vertex[int]{a, b})
//	g.AddVertex(core.NewVertex[int]("C"))
//
// Identity:
//
//	Vertices compare by name only. The first vertex inserted under a name is
//	canonical; later vertices with the same name are ignored by the index and
//	only trigger a revalidation of the canonical one.
//
// Lazy validation:
//
//	A vertex is valid when each of its neighbors is indexed by the graph.
//	NewGraph and AddVertex attempt validation immediately, but a failure is not
//	an error: the vertex simply stays pending. Traversals call Expand before
//	exploring a vertex, which retries validation and fails with
//	ErrMissingNeighbor if the vertex still links outside the graph. Vertices
//	that no traversal reaches are never checked again.
//
// Paths:
//
//	Traversals record a Parents map (child name → parent name). ExtractPath
//	turns it into an end→start vertex slice; Reverse flips it; PathWeight sums
//	its edge weights.
//
// Concurrency:
//
//	Nothing in this package is synchronized. Validation mutates the graph, so
//	traversals and AddVertex must be externally serialized.
//
// Logging:
//
//	WithLogger attaches a zerolog.Logger; the default discards everything.
package core
