package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/reachgraph/core"
)

// item is a heap entry: a vertex and a tentative distance from the start.
// The same vertex may appear in several entries; only the first one popped counts.
type item[V any] struct {
	v    *core.Vertex[V]
	dist float64
}

// less orders entries by distance. Comparing against anything but another
// entry of the same queue violates an internal invariant and panics.
func (it *item[V]) less(other any) bool {
	o, ok := other.(*item[V])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrTypeMismatch, other))
	}

	return it.dist < o.dist
}

// itemPQ is a min-heap of *item ordered by dist ascending.
type itemPQ[V any] []*item[V]

// Len returns the number of items in the heap.
func (pq itemPQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq itemPQ[V]) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two elements in the heap.
func (pq itemPQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push; x must be *item.
func (pq *itemPQ[V]) Push(x any) {
	it, ok := x.(*item[V])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrTypeMismatch, x))
	}
	*pq = append(*pq, it)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *itemPQ[V]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
