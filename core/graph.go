package core

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
)

// Graph indexes caller-owned vertices by name and validates their adjacency lazily.
//
// The graph never owns vertex identity: it stores references to the vertices
// it is given. When two vertices share a name, the first one inserted is the
// canonical object; every traversal resolves neighbors by name through the
// index, so all visited and returned vertices are canonical.
//
// A vertex is "validated" once all its neighbors are indexed. Validation is
// attempted on insertion and retried by traversals right before a vertex is
// expanded; vertices never reached may stay non-validated forever.
//
// Graph is not safe for concurrent use. Traversals update the validation
// state, so they must be serialized with each other and with AddVertex.
type Graph[V any] struct {
	vertices map[string]*Vertex[V] // name → canonical vertex
	order    []string              // insertion order of names

	nonValidated mapset.Set[string]

	log zerolog.Logger
}

// NewGraph builds a graph from an optional list of initial vertices.
// Every vertex is registered first, then each one gets a single validation
// attempt, so mutually linked initial vertices validate each other.
// Nil entries are skipped.
// Complexity: O(V + E) over the initial vertices.
func NewGraph[V any](vertices []*Vertex[V], opts ...GraphOption) *Graph[V] {
	cfg := newGraphConfig(opts...)
	g := &Graph[V]{
		vertices:     make(map[string]*Vertex[V], len(vertices)),
		order:        make([]string, 0, len(vertices)),
		nonValidated: mapset.NewThreadUnsafeSet[string](),
		log:          cfg.logger,
	}
	for _, v := range vertices {
		g.register(v)
	}
	for _, name := range g.order {
		g.Validate(g.vertices[name])
	}

	return g
}

// AddVertex inserts v, marks it non-validated and attempts to validate it.
// If a vertex with the same name is already indexed, the indexed one stays
// canonical and is revalidated instead. A nil vertex is ignored.
// Complexity: O(deg(v)).
func (g *Graph[V]) AddVertex(v *Vertex[V]) {
	if v == nil {
		return
	}
	g.Validate(g.register(v))
}

// register indexes v (first-inserted wins) and marks the canonical vertex
// non-validated. It returns the canonical vertex, or nil for a nil input.
func (g *Graph[V]) register(v *Vertex[V]) *Vertex[V] {
	if v == nil {
		return nil
	}
	canonical, exists := g.vertices[v.name]
	if exists {
		if canonical != v {
			g.log.Debug().Str("vertex", v.name).Msg("duplicate vertex name, keeping first inserted")
		}
	} else {
		canonical = v
		g.vertices[v.name] = v
		g.order = append(g.order, v.name)
		g.log.Debug().Str("vertex", v.name).Int("degree", v.Degree()).Msg("vertex registered")
	}
	g.nonValidated.Add(canonical.name)

	return canonical
}

// Validate reports whether every neighbor of the indexed vertex sharing v's
// name is itself indexed by the graph. The neighbors checked are always the
// canonical vertex's, never those of the argument. A vertex the graph does
// not index is never valid. An already-validated vertex returns true
// immediately. On success it leaves the non-validated set; on failure it
// stays there and may validate later, once its missing neighbors are added.
func (g *Graph[V]) Validate(v *Vertex[V]) bool {
	if v == nil {
		return false
	}
	c, ok := g.vertices[v.name]
	if !ok {
		return false
	}
	if !g.nonValidated.Contains(c.name) {
		return true
	}
	for _, n := range c.neighbors {
		if _, ok := g.vertices[n.name]; !ok {
			g.log.Debug().Str("vertex", c.name).Str("missing", n.name).Msg("validation failed")
			return false
		}
	}
	g.nonValidated.Remove(c.name)

	return true
}

// Expand returns the canonical neighbors of v in insertion order, validating
// v first if it is still pending. It fails with ErrMissingNeighbor naming v
// when one of its neighbors is not in the graph.
// Traversals call Expand right before exploring a vertex's edges.
// Complexity: O(deg(v)).
func (g *Graph[V]) Expand(v *Vertex[V]) ([]*Vertex[V], error) {
	if g.nonValidated.Contains(v.name) && !g.Validate(v) {
		err := fmt.Errorf("%w: vertex %q", ErrMissingNeighbor, v.name)
		g.log.Warn().Err(err).Str("vertex", v.name).Msg("traversal aborted")
		return nil, err
	}
	out := make([]*Vertex[V], 0, len(v.neighbors))
	for _, n := range v.neighbors {
		c, ok := g.vertices[n.name]
		if !ok {
			// v gained a dangling edge after it was validated.
			err := fmt.Errorf("%w: vertex %q", ErrMissingNeighbor, v.name)
			g.log.Warn().Err(err).Str("vertex", v.name).Str("missing", n.name).Msg("traversal aborted")
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// Canonical returns the indexed vertex sharing v's name.
// Returns ErrVertexNotFound if no such vertex exists.
func (g *Graph[V]) Canonical(v *Vertex[V]) (*Vertex[V], error) {
	if v == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrVertexNotFound)
	}
	c, ok := g.vertices[v.name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, v.name)
	}

	return c, nil
}

// HasVertex reports whether a vertex named name is indexed.
func (g *Graph[V]) HasVertex(name string) bool {
	_, ok := g.vertices[name]
	return ok
}

// Vertex returns the canonical vertex named name.
func (g *Graph[V]) Vertex(name string) (*Vertex[V], bool) {
	v, ok := g.vertices[name]
	return v, ok
}

// Vertices returns the canonical vertices in insertion order.
func (g *Graph[V]) Vertices() []*Vertex[V] {
	out := make([]*Vertex[V], 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.vertices[name])
	}

	return out
}

// Len returns the number of indexed vertices.
func (g *Graph[V]) Len() int { return len(g.order) }

// IsValidated reports whether the vertex named name is indexed and validated.
func (g *Graph[V]) IsValidated(name string) bool {
	return g.HasVertex(name) && !g.nonValidated.Contains(name)
}

// Pending returns the sorted names of vertices still awaiting validation.
func (g *Graph[V]) Pending() []string {
	names := g.nonValidated.ToSlice()
	sort.Strings(names)

	return names
}

// Logger returns the logger configured with WithLogger.
func (g *Graph[V]) Logger() zerolog.Logger { return g.log }
