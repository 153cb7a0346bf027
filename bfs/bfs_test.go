package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachgraph/bfs"
	"github.com/katalvlaran/reachgraph/core"
)

// diamond builds A→B(1), A→C(4), B→D(1), C→D(1) plus an isolated E.
func diamond() (*core.Graph[int], map[string]*core.Vertex[int]) {
	vs := map[string]*core.Vertex[int]{}
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		vs[n] = core.NewVertex[int](n)
	}
	vs["A"].AddNeighbor(vs["B"], 1)
	vs["A"].AddNeighbor(vs["C"], 4)
	vs["B"].AddNeighbor(vs["D"], 1)
	vs["C"].AddNeighbor(vs["D"], 1)

	g := core.NewGraph([]*core.Vertex[int]{vs["A"], vs["B"], vs["C"], vs["D"], vs["E"]})

	return g, vs
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	g, vs := diamond()

	_, err := bfs.Search[int](nil, vs["A"], vs["B"])
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Search(g, core.NewVertex[int]("missing"), vs["B"])
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Search(g, nil, vs["B"])
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Search(g, vs["A"], vs["B"], bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestSearch_Reachability(t *testing.T) {
	g, vs := diamond()

	cases := []struct {
		from, to string
		want     bool
	}{
		{"A", "B", true},
		{"A", "D", true},
		{"B", "D", true},
		{"D", "A", false},
		{"A", "E", false},
		{"E", "A", false},
		{"A", "A", false}, // no cycle back to A
	}
	for _, tc := range cases {
		got, err := bfs.Search(g, vs[tc.from], vs[tc.to])
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s→%s", tc.from, tc.to)
	}
}

func TestSearch_EndAbsentFromGraph(t *testing.T) {
	g, vs := diamond()
	got, err := bfs.Search(g, vs["A"], core.NewVertex[int]("nowhere"))
	require.NoError(t, err)
	assert.False(t, got)

	got, err = bfs.Search(g, vs["A"], nil)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestSearch_StartOnCycle(t *testing.T) {
	a := core.NewVertex[int]("A")
	b := core.NewVertex[int]("B")
	a.AddNeighbor(b, 1)
	b.AddNeighbor(a, 1)
	g := core.NewGraph([]*core.Vertex[int]{a, b})

	got, err := bfs.Search(g, a, a)
	require.NoError(t, err)
	assert.True(t, got)

	path, err := bfs.ShortestPath(g, a, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, core.Names(path))
}

func TestSearch_SelfLoopTerminates(t *testing.T) {
	a := core.NewVertex[int]("A")
	b := core.NewVertex[int]("B")
	a.AddNeighbor(a, 1)
	a.AddNeighbor(b, 1)
	b.AddNeighbor(b, 1)
	g := core.NewGraph([]*core.Vertex[int]{a, b})

	got, err := bfs.Search(g, a, core.NewVertex[int]("Z"))
	require.NoError(t, err)
	assert.False(t, got)

	got, err = bfs.Search(g, a, a)
	require.NoError(t, err)
	assert.True(t, got, "self-loop discovers A")

	res, err := bfs.Walk(g, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestShortestPath_InsertionOrderTieBreak(t *testing.T) {
	g, vs := diamond()

	path, err := bfs.ShortestPath(g, vs["A"], vs["D"])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, core.Names(path))
}

func TestShortestPath_EndToStartIsExactReverse(t *testing.T) {
	g, vs := diamond()

	fwd, err := bfs.ShortestPath(g, vs["A"], vs["D"])
	require.NoError(t, err)
	back, err := bfs.ShortestPath(g, vs["A"], vs["D"], bfs.WithEndToStart())
	require.NoError(t, err)

	require.Equal(t, []string{"D", "B", "A"}, core.Names(back))
	assert.Equal(t, core.Names(fwd), core.Names(core.Reverse(back)))
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, vs := diamond()

	path, err := bfs.ShortestPath(g, vs["A"], vs["E"])
	require.ErrorIs(t, err, core.ErrNoPath)
	assert.Nil(t, path)
}

func TestShortestPath_ReturnsCanonicalVertices(t *testing.T) {
	g, vs := diamond()

	path, err := bfs.ShortestPath(g, core.NewVertex[int]("A"), core.NewVertex[int]("D"))
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Same(t, vs["A"], path[0])
	assert.Same(t, vs["D"], path[2])
}

func TestSearch_MissingNeighborOnlyWhenReached(t *testing.T) {
	a := core.NewVertex[int]("A")
	b := core.NewVertex[int]("B")
	x := core.NewVertex[int]("X")
	ghost := core.NewVertex[int]("ghost")
	a.AddNeighbor(b, 1)
	x.AddNeighbor(ghost, 1) // ghost is never added
	g := core.NewGraph([]*core.Vertex[int]{a, b, x})

	// X is not reachable from A, so its dangling edge goes unnoticed.
	got, err := bfs.Search(g, a, core.NewVertex[int]("Z"))
	require.NoError(t, err)
	assert.False(t, got)
	assert.False(t, g.IsValidated("X"))

	// Starting from X reaches it.
	_, err = bfs.Search(g, x, a)
	require.ErrorIs(t, err, core.ErrMissingNeighbor)
	assert.Contains(t, err.Error(), `"X"`)

	// Once the neighbor exists, the same query succeeds.
	g.AddVertex(ghost)
	got, err = bfs.Search(g, x, ghost)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSearch_DuplicateAddVertexIsIdempotent(t *testing.T) {
	g, vs := diamond()
	before, err := bfs.Walk(g, vs["A"])
	require.NoError(t, err)

	g.AddVertex(vs["B"])
	g.AddVertex(core.NewVertex[int]("C"))

	after, err := bfs.Walk(g, vs["A"])
	require.NoError(t, err)
	assert.Equal(t, before.Order, after.Order)
	assert.Equal(t, before.Parent, after.Parent)
}

// TestWalk_Depths covers full traversal depths and PathTo.
func TestWalk_Depths(t *testing.T) {
	g, vs := diamond()

	res, err := bfs.Walk(g, vs["A"])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)

	p, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, p)

	_, err = res.PathTo("E")
	assert.Error(t, err)
}

// TestWalk_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestWalk_MaxDepth(t *testing.T) {
	g, vs := diamond()

	res, err := bfs.Walk(g, vs["A"], bfs.WithMaxDepth(1))
	require.NoError(t, err)
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=1: got %v; want %v", res.Order, want)
	}

	res, err = bfs.Walk(g, vs["A"], bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)

	found, err := bfs.Search(g, vs["A"], vs["D"], bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, found, "D is two hops away")
}

// TestWalk_FilterNeighbor shows how filtering prunes certain edges.
func TestWalk_FilterNeighbor(t *testing.T) {
	g, vs := diamond()

	path, err := bfs.ShortestPath(g, vs["A"], vs["D"],
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "A" && nbr == "B")
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, core.Names(path))
}

func TestWalk_Hooks(t *testing.T) {
	g, vs := diamond()

	var enq []string
	var visited []string
	_, err := bfs.Walk(g, vs["A"],
		bfs.WithOnEnqueue(func(name string, _ int) { enq = append(enq, name) }),
		bfs.WithOnVisit(func(name string, _ int) error {
			visited = append(visited, name)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, enq)
	assert.Equal(t, []string{"A", "B", "C", "D"}, visited)

	stop := errors.New("stop")
	_, err = bfs.Walk(g, vs["A"], bfs.WithOnVisit(func(name string, _ int) error {
		if name == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestWalk_ContextCancelled(t *testing.T) {
	g, vs := diamond()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Walk(g, vs["A"], bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
