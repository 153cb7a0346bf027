package core

import "fmt"

// Vertex is a named node carrying an optional payload and weighted directed
// edges to its neighbors.
//
// Identity is the name alone: two vertices with the same name are the same
// vertex no matter what payload they hold. Neighbors are kept in insertion
// order, which is the order traversals expand them in.
//
// A Vertex is not safe for concurrent mutation.
type Vertex[V any] struct {
	name     string
	value    V
	hasValue bool

	// neighbors in insertion order; weights keyed by neighbor name.
	neighbors []*Vertex[V]
	weights   map[string]float64
}

// NewVertex creates a vertex named name. The payload is optional; when more
// than one value is passed, only the first is kept.
// Complexity: O(1).
func NewVertex[V any](name string, value ...V) *Vertex[V] {
	v := &Vertex[V]{
		name:    name,
		weights: make(map[string]float64),
	}
	if len(value) > 0 {
		v.value = value[0]
		v.hasValue = true
	}

	return v
}

// Name returns the identity of v.
func (v *Vertex[V]) Name() string { return v.name }

// Value returns the payload and whether one was supplied at construction.
func (v *Vertex[V]) Value() (V, bool) { return v.value, v.hasValue }

// Neighbors returns a copy of the neighbor list in insertion order.
// Complexity: O(deg(v)).
func (v *Vertex[V]) Neighbors() []*Vertex[V] {
	out := make([]*Vertex[V], len(v.neighbors))
	copy(out, v.neighbors)

	return out
}

// Degree returns the number of outgoing edges of v.
func (v *Vertex[V]) Degree() int { return len(v.neighbors) }

// AddNeighbor records a directed edge v→n with the given weight.
// If n (by name) is already a neighbor, only its weight is updated and its
// position in the neighbor order is kept. Self-loops are allowed.
// A nil neighbor is ignored.
// Complexity: O(1).
func (v *Vertex[V]) AddNeighbor(n *Vertex[V], weight float64) {
	if n == nil {
		return
	}
	if _, ok := v.weights[n.name]; !ok {
		v.neighbors = append(v.neighbors, n)
	}
	v.weights[n.name] = weight
}

// EdgeWeight returns the weight of the edge v→n.
// Returns ErrEdgeNotFound if n was never added as a neighbor of v.
func (v *Vertex[V]) EdgeWeight(n *Vertex[V]) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: %q→<nil>", ErrEdgeNotFound, v.name)
	}
	w, ok := v.weights[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, v.name, n.name)
	}

	return w, nil
}

// Equal reports whether v and o denote the same vertex, i.e. share a name.
func (v *Vertex[V]) Equal(o *Vertex[V]) bool {
	if v == nil || o == nil {
		return v == o
	}

	return v.name == o.name
}

// String implements fmt.Stringer.
func (v *Vertex[V]) String() string { return v.name }
