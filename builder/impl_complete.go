package builder

import "fmt"

// Complete returns a Constructor that builds the complete directed graph on
// n vertices: an edge i → j for every ordered pair i ≠ j, emitted for i asc
// then j asc. WithBidirectional has no further effect here.
func Complete[V any](n int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.Vertex(cfg.idFn(i))
		}

		one := cfg
		one.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					s.link(one, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
