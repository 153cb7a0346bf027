package core

import "fmt"

// Parents maps a vertex name to the name of the vertex that discovered it
// during a traversal. The start vertex has no entry.
type Parents map[string]string

// ExtractPath walks parent links back from last until it reaches a vertex
// without a parent, returning the canonical vertices in end→start order.
// Callers wanting start→end order pass the result to Reverse.
//
// Returns ErrVertexNotFound if last or any vertex on the chain is not indexed.
// Complexity: O(len(path)).
func ExtractPath[V any](g *Graph[V], last *Vertex[V], parents Parents) ([]*Vertex[V], error) {
	cur, err := g.Canonical(last)
	if err != nil {
		return nil, err
	}
	path := []*Vertex[V]{cur}
	seen := map[string]bool{cur.name: true}
	for {
		parent, ok := parents[cur.name]
		if !ok {
			break
		}
		if seen[parent] {
			return nil, fmt.Errorf("core: parent chain loops at %q", parent)
		}
		next, ok := g.vertices[parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, parent)
		}
		seen[parent] = true
		path = append(path, next)
		cur = next
	}

	return path, nil
}

// Reverse reverses path in place and returns it.
func Reverse[V any](path []*Vertex[V]) []*Vertex[V] {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Names returns the vertex names of path, in order.
func Names[V any](path []*Vertex[V]) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = v.name
	}

	return out
}

// PathWeight sums the edge weights along consecutive vertices of path.
// An empty or single-vertex path weighs 0. Returns ErrEdgeNotFound if two
// consecutive vertices are not linked.
func PathWeight[V any](path []*Vertex[V]) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := path[i-1].EdgeWeight(path[i])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
