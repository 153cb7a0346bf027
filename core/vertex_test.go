package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachgraph/core"
)

func TestVertex_NameAndValue(t *testing.T) {
	a := core.NewVertex("A", 42)
	require.Equal(t, "A", a.Name())
	v, ok := a.Value()
	require.True(t, ok)
	require.Equal(t, 42, v)

	b := core.NewVertex[int]("B")
	v, ok = b.Value()
	assert.False(t, ok, "no payload supplied")
	assert.Zero(t, v)
	assert.Equal(t, "B", b.String())
}

func TestVertex_AddNeighborIsUpsert(t *testing.T) {
	a := core.NewVertex[string]("A")
	b := core.NewVertex[string]("B")
	c := core.NewVertex[string]("C")

	a.AddNeighbor(b, 1)
	a.AddNeighbor(c, 4)
	a.AddNeighbor(b, 7) // weight update, order kept
	a.AddNeighbor(nil, 3)

	require.Equal(t, []string{"B", "C"}, core.Names(a.Neighbors()))
	require.Equal(t, 2, a.Degree())

	w, err := a.EdgeWeight(b)
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)

	// Lookup goes by name, not by pointer.
	w, err = a.EdgeWeight(core.NewVertex[string]("C", "other payload"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
}

func TestVertex_EdgeWeightMissing(t *testing.T) {
	a := core.NewVertex[int]("A")
	_, err := a.EdgeWeight(core.NewVertex[int]("Z"))
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Contains(t, err.Error(), `"A"→"Z"`)

	_, err = a.EdgeWeight(nil)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestVertex_SelfLoop(t *testing.T) {
	a := core.NewVertex[int]("A")
	a.AddNeighbor(a, 0.5)

	w, err := a.EdgeWeight(a)
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)
	assert.Equal(t, []string{"A"}, core.Names(a.Neighbors()))
}

func TestVertex_NeighborsReturnsCopy(t *testing.T) {
	a := core.NewVertex[int]("A")
	a.AddNeighbor(core.NewVertex[int]("B"), 1)

	ns := a.Neighbors()
	ns[0] = core.NewVertex[int]("X")
	assert.Equal(t, []string{"B"}, core.Names(a.Neighbors()))
}

func TestVertex_EqualByNameOnly(t *testing.T) {
	a1 := core.NewVertex("A", 1)
	a2 := core.NewVertex("A", 2)
	b := core.NewVertex("B", 1)

	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(b))
	assert.False(t, a1.Equal(nil))

	var nilV *core.Vertex[int]
	assert.True(t, nilV.Equal(nil))
}
