// Package reachgraph is a small, embeddable directed graph of named vertices
// answering reachability and shortest-path questions.
//
// What is in the box?
//
//	core/     - Vertex[V] (name, optional payload, ordered weighted edges) and
//	            Graph[V] (name index, lazy neighbor validation, path extraction)
//	bfs/      - fewest-hop search: Search, ShortestPath, full Walk
//	dijkstra/ - minimum-weight search: Search, ShortestPath, Distances
//	builder/  - deterministic fixtures: paths, cycles, stars, grids, wheels,
//	            complete, bipartite and seeded random graphs
//	examples/ - runnable scenarios (go run ./examples)
//
// Quick start
//
//	a, b, c := core.NewVertex[int]("A"), core.NewVertex[int]("B"), core.NewVertex[int]("C")
//	a.AddNeighbor(b, 1)
//	a.AddNeighbor(c, 4)
//	b.AddNeighbor(c, 1)
//	g := core.NewGraph([]*core.Vertex[int]{a, b, c})
//
//	hops, _ := bfs.ShortestPath(g, a, c)      // [A C]
//	cheap, _ := dijkstra.ShortestPath(g, a, c) // [A B C]
//
// Vertices are identified by name only. The graph keeps the first vertex
// inserted under a name and checks that a vertex's neighbors exist only when
// a traversal is about to expand it; a dangling link then fails with
// core.ErrMissingNeighbor.
//
// Nothing is synchronized: traversals update validation state, so callers
// serialize access themselves.
package reachgraph
