package builder

import "fmt"

// Star returns a Constructor that builds a star with n vertices:
// one hub "Center" and n-1 leaves named cfg.idFn(1..n-1), with spokes
// Center → leaf (and back when bidirectional).
func Star[V any](n int) Constructor[V] {
	return func(s *Set[V], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.Vertex(centerVertexID)
		for i := 1; i < n; i++ {
			s.link(cfg, centerVertexID, cfg.idFn(i))
		}

		return nil
	}
}
