// Package dijkstra implements Dijkstra's shortest-path algorithm over a core.Graph.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     skipping entries whose vertex is already finalized.
//   - Every vertex is validated against the graph before its edges are relaxed,
//     exactly like BFS, so a dangling neighbor fails with core.ErrMissingNeighbor.
//   - Order among entries of equal distance is whatever the heap yields.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reachgraph/core"
)

// Search reports whether end can be reached from start, running Dijkstra
// until end is finalized (popped from the queue) or the queue runs dry.
// Search(g, a, a) is always true for an indexed a.
//
// Weights must be non-negative; negative weights are only detected when
// WithNegativeWeightCheck is given.
func Search[V any](g *core.Graph[V], start, end *core.Vertex[V], opts ...Option) (bool, error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return false, err
	}

	return r.process()
}

// ShortestPath returns a minimum-weight path from start to end in start→end
// order, or end→start with WithEndToStart. When end is unreachable the error
// wraps core.ErrNoPath.
func ShortestPath[V any](g *core.Graph[V], start, end *core.Vertex[V], opts ...Option) ([]*core.Vertex[V], error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q→%q", core.ErrNoPath, start.Name(), nameOf(end))
	}
	path, err := core.ExtractPath(g, end, r.prev)
	if err != nil {
		return nil, err
	}
	if r.options.EndToStart {
		return path, nil
	}

	return core.Reverse(path), nil
}

// Distances computes shortest distances from start to every vertex of g.
//
// Returns:
//
//   - dist: vertex name → minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor links of the shortest-path tree; start has no entry.
func Distances[V any](g *core.Graph[V], start *core.Vertex[V], opts ...Option) (map[string]float64, core.Parents, error) {
	r, err := newRunner(g, start, nil, opts)
	if err != nil {
		return nil, nil, err
	}
	if _, err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V any] struct {
	g         *core.Graph[V]
	options   Options
	dist      map[string]float64 // vertex name → best known distance from start
	prev      core.Parents       // vertex name → predecessor on the shortest path
	finalized mapset.Set[string] // vertices whose distance is settled
	pq        itemPQ[V]

	target    string
	hasTarget bool
}

// newRunner validates inputs and sets up initial distances with start at 0.
func newRunner[V any](g *core.Graph[V], start, end *core.Vertex[V], opts []Option) (*runner[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	s, err := g.Canonical(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVertexNotFound, err)
	}

	n := g.Len()
	r := &runner[V]{
		g:         g,
		options:   cfg,
		dist:      make(map[string]float64, n),
		prev:      make(core.Parents, n),
		finalized: mapset.NewThreadUnsafeSet[string](),
		pq:        make(itemPQ[V], 0, n),
	}
	if end != nil {
		r.target, r.hasTarget = end.Name(), true
	}

	if cfg.CheckNegativeWeight {
		if err = scanNegative(g, s); err != nil {
			return nil, err
		}
	}

	// dist[v] = +∞ for every vertex, 0 for start.
	for _, v := range g.Vertices() {
		r.dist[v.Name()] = math.Inf(1)
	}
	r.dist[s.Name()] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item[V]{v: s, dist: 0})

	return r, nil
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// vertex with the minimum distance and relaxes its outgoing edges.
//
// It reports true as soon as the target vertex is finalized. Otherwise the
// loop ends when the heap is empty or the smallest distance exceeds MaxDistance.
func (r *runner[V]) process() (bool, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(*item[V])
		u := it.v

		// Stale entry: u was finalized through a shorter distance already.
		if r.finalized.Contains(u.Name()) {
			continue
		}
		if it.dist > r.options.MaxDistance {
			break
		}
		r.finalized.Add(u.Name())

		if r.hasTarget && u.Name() == r.target {
			return true, nil
		}
		if err := r.relax(u, it.dist); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax validates u and tries to improve the distance of each of its neighbors.
// A strictly shorter candidate updates dist, records u as predecessor and
// pushes a fresh heap entry.
func (r *runner[V]) relax(u *core.Vertex[V], d float64) error {
	neighbors, err := r.g.Expand(u)
	if err != nil {
		return err
	}
	for _, v := range neighbors {
		w, err := u.EdgeWeight(v)
		if err != nil {
			return fmt.Errorf("dijkstra: relaxing %q: %w", u.Name(), err)
		}
		newDist := d + w
		// Only a strictly shorter candidate is accepted; NaN never is.
		if !(newDist < r.dist[v.Name()]) || newDist > r.options.MaxDistance {
			continue
		}
		r.dist[v.Name()] = newDist
		r.prev[v.Name()] = u.Name()
		heap.Push(&r.pq, &item[V]{v: v, dist: newDist})
	}

	return nil
}

// scanNegative walks every edge reachable from s and fails on the first
// negative or NaN weight.
func scanNegative[V any](g *core.Graph[V], s *core.Vertex[V]) error {
	seen := mapset.NewThreadUnsafeSet[string](s.Name())
	stack := []*core.Vertex[V]{s}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		neighbors, err := g.Expand(u)
		if err != nil {
			return err
		}
		for _, v := range neighbors {
			w, err := u.EdgeWeight(v)
			if err != nil {
				return err
			}
			if w < 0 || math.IsNaN(w) {
				return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u.Name(), v.Name(), w)
			}
			if seen.Add(v.Name()) {
				stack = append(stack, v)
			}
		}
	}

	return nil
}

func nameOf[V any](v *core.Vertex[V]) string {
	if v == nil {
		return "<nil>"
	}

	return v.Name()
}

// compile-time check that the queue satisfies heap.Interface.
var _ heap.Interface = (*itemPQ[struct{}])(nil)
