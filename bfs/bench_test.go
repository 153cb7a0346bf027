package bfs_test

import (
	"testing"

	"github.com/katalvlaran/reachgraph/bfs"
	"github.com/katalvlaran/reachgraph/builder"
	"github.com/katalvlaran/reachgraph/core"
)

func benchGraph(b *testing.B, cons builder.Constructor[int], opts ...builder.BuilderOption) *core.Graph[int] {
	b.Helper()
	g, err := builder.BuildGraph[int](nil, opts, cons)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkWalk_Chain measures a full traversal of a 10k-vertex chain.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	g := benchGraph(b, builder.Path[int](N))
	start, _ := g.Vertex("0")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, start)
	}
}

// BenchmarkShortestPath_Grid measures corner-to-corner search on a 100×100 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	g := benchGraph(b, builder.Grid[int](100, 100))
	start, _ := g.Vertex("0,0")
	end, _ := g.Vertex("99,99")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, start, end)
	}
}

// BenchmarkSearch_RandomSparse measures reachability on a seeded random digraph.
func BenchmarkSearch_RandomSparse(b *testing.B) {
	g := benchGraph(b, builder.RandomSparse[int](1000, 0.005), builder.WithSeed(7))
	vs := g.Vertices()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, vs[0], vs[len(vs)-1])
	}
}
