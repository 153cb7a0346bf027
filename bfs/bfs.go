// Package bfs provides breadth-first search over a core.Graph: reachability
// queries, fewest-hop shortest paths and full traversals with visit order,
// depths and parent links.
package bfs

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reachgraph/core"
)

// queueItem pairs a canonical vertex with its BFS depth.
type queueItem[V any] struct {
	v     *core.Vertex[V]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V any] struct {
	graph  *core.Graph[V]
	opts   Options
	ctx    context.Context
	queue  []queueItem[V]
	marked mapset.Set[string]
	res    *Result

	// target is the name of the end vertex; hasTarget is false for full walks.
	target    string
	hasTarget bool
}

// Search reports whether end is reachable from start along directed edges.
//
// The search stops as soon as end is discovered as a neighbor of a dequeued
// vertex; end itself is never expanded. Consequently Search(g, a, a) is true
// only when a lies on a cycle. An end vertex that is nil or absent from the
// graph yields false once the reachable part has been exhausted.
//
// Every dequeued vertex is validated before its neighbors are expanded; a
// vertex linking outside the graph aborts the search with core.ErrMissingNeighbor.
func Search[V any](g *core.Graph[V], start, end *core.Vertex[V], opts ...Option) (bool, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return false, err
	}

	return w.loop()
}

// ShortestPath returns a path with the fewest edges from start to end.
//
// The path is in start→end order unless WithEndToStart is given, in which
// case the exact reverse is returned. When end is unreachable the error
// wraps core.ErrNoPath. Ties between equal-length paths are broken by
// neighbor insertion order.
func ShortestPath[V any](g *core.Graph[V], start, end *core.Vertex[V], opts ...Option) ([]*core.Vertex[V], error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q→%q", core.ErrNoPath, start.Name(), nameOf(end))
	}
	path, err := core.ExtractPath(g, end, core.Parents(w.res.Parent))
	if err != nil {
		return nil, err
	}
	if w.opts.EndToStart {
		return path, nil
	}

	return core.Reverse(path), nil
}

// Walk runs breadth-first search from start until the queue is exhausted and
// returns the visit order, depths and parent links of every reached vertex.
func Walk[V any](g *core.Graph[V], start *core.Vertex[V], opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, nil, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker validates inputs, applies options and seeds the queue with start.
func newWalker[V any](g *core.Graph[V], start, end *core.Vertex[V], opts []Option) (*walker[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := g.Canonical(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, err)
	}

	n := g.Len()
	w := &walker[V]{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]queueItem[V], 0, n),
		marked: mapset.NewThreadUnsafeSet[string](),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if end != nil {
		w.target, w.hasTarget = end.Name(), true
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(s, 0, nil)

	return w, nil
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue
// and adds it to the queue.
func (w *walker[V]) enqueue(v *core.Vertex[V], d int, parent *core.Vertex[V]) {
	w.marked.Add(v.Name())
	w.res.Depth[v.Name()] = d
	if parent != nil {
		w.res.Parent[v.Name()] = parent.Name()
	}
	w.opts.OnEnqueue(v.Name(), d)
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until the target is discovered, the queue is
// empty, an error occurs or the context is cancelled.
func (w *walker[V]) loop() (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v.Name())
		if err := w.opts.OnVisit(item.v.Name(), item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %q: %w", item.v.Name(), err)
		}

		found, err := w.expand(item)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// expand validates item's vertex, enqueues each unseen admissible neighbor
// and reports whether the target was among the neighbors.
func (w *walker[V]) expand(item queueItem[V]) (bool, error) {
	neighbors, err := w.graph.Expand(item.v)
	if err != nil {
		return false, err
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return false, nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v.Name(), nbr.Name()) {
			continue
		}
		if !w.marked.Contains(nbr.Name()) {
			w.enqueue(nbr, nextDepth, item.v)
		}
		if w.hasTarget && nbr.Name() == w.target {
			return true, nil
		}
	}

	return false, nil
}

func nameOf[V any](v *core.Vertex[V]) string {
	if v == nil {
		return "<nil>"
	}

	return v.Name()
}
