// impl_random_geometric.go - implementation of RandomGeometric(n, radius).
//
// Canonical model:
//   - Random geometric graph: n points drawn uniformly from the square
//     [0, scale)², a road between every unordered pair {i, j} whose
//     Euclidean distance is ≤ radius.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - radius ≥ 0 and finite (else ErrInvalidRadius).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) pair checks.
//   - Space: O(n) for the sampled points.
//
// Determinism:
//   - Points are drawn in index order, X before Y; pairs are tested i asc, j asc.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvkit/spatial"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minRandomGeometric    = 1
)

// RandomGeometric returns a Constructor that samples a random geometric graph.
func RandomGeometric(n int, radius float64) Constructor {
	return func(m *spatial.Map, cfg builderConfig) error {
		// 1) Validate parameters (size, radius, rng) in that order.
		if n < minRandomGeometric {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGeometric, n, minRandomGeometric, ErrTooFewVertices)
		}
		if radius < 0 || !finite(radius) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		// 2) Sample every point first so the pair loop sees final coordinates.
		pts := make([]orb.Point, n)
		for i := range pts {
			x := cfg.rng.Float64() * cfg.scale
			y := cfg.rng.Float64() * cfg.scale
			pts[i] = orb.Point{x, y}
			if err := addIntersection(methodRandomGeometric, m, cfg.id(i), x, y, cfg); err != nil {
				return err
			}
		}

		// 3) Connect close pairs.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if planar.Distance(pts[i], pts[j]) > radius {
					continue
				}
				if err := addRoad(methodRandomGeometric, m, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
