package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/reachgraph/bfs"
	"github.com/katalvlaran/reachgraph/builder"
	"github.com/katalvlaran/reachgraph/core"
)

// ExampleShortestPath finds the fewest-hop path in a small network where a
// four-hop route competes with a three-hop route.
func ExampleShortestPath() {
	names := []string{"A", "B", "C", "D", "E", "F", "K"}
	vs := make(map[string]*core.Vertex[struct{}], len(names))
	list := make([]*core.Vertex[struct{}], 0, len(names))
	for _, n := range names {
		vs[n] = core.NewVertex[struct{}](n)
		list = append(list, vs[n])
	}
	link := func(u, v string) { vs[u].AddNeighbor(vs[v], 1) }
	// Route1: A→B→C→D→K (4 hops)
	link("A", "B")
	link("B", "C")
	link("C", "D")
	link("D", "K")
	// Route2: A→E→F→K (3 hops)
	link("A", "E")
	link("E", "F")
	link("F", "K")

	g := core.NewGraph(list)
	path, err := bfs.ShortestPath(g, vs["A"], vs["K"])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)

	back, _ := bfs.ShortestPath(g, vs["A"], vs["K"], bfs.WithEndToStart())
	fmt.Println(back)
	// Output:
	// [A E F K]
	// [K F E A]
}

// ExampleWalk shows BFS layering on a 3×3 grid built with the builder package.
func ExampleWalk() {
	g, err := builder.BuildGraph[int](nil, nil, builder.Grid[int](3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.Vertex("0,0")

	res, err := bfs.Walk(g, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["2,2"])
	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
	// 4
}

// ExampleSearch_depthLimit shows applying WithMaxDepth to a chain of 10 vertices.
func ExampleSearch_depthLimit() {
	g, _ := builder.BuildGraph[int](nil, []builder.BuilderOption{builder.WithPrefixIDs("v")}, builder.Path[int](10))
	v0, _ := g.Vertex("v0")
	v2, _ := g.Vertex("v2")
	v3, _ := g.Vertex("v3")

	near, _ := bfs.Search(g, v0, v2, bfs.WithMaxDepth(2))
	far, _ := bfs.Search(g, v0, v3, bfs.WithMaxDepth(2))
	fmt.Println(near, far)
	// Output:
	// true false
}
