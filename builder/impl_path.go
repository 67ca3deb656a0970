// impl_path.go - implementation of Path(n, spacing) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); spacing > 0 and finite (else ErrInvalidSpacing).
//   - Intersection i sits at origin + (i·spacing, 0), IDs ascending.
//   - Roads (i-1)—i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n log n) (sorted adjacency inserts).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkit/spatial"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that lays n intersections on a horizontal line.
func Path(n int, spacing float64) Constructor {
	return func(m *spatial.Map, cfg builderConfig) error {
		// 1) Validate parameters before touching m.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if spacing <= 0 || !finite(spacing) {
			return fmt.Errorf("%s: spacing=%g: %w", methodPath, spacing, ErrInvalidSpacing)
		}

		// 2) Intersections left to right.
		for i := 0; i < n; i++ {
			if err := addIntersection(methodPath, m, cfg.id(i), float64(i)*spacing, 0, cfg); err != nil {
				return err
			}
		}

		// 3) Roads between consecutive intersections.
		for i := 1; i < n; i++ {
			if err := addRoad(methodPath, m, cfg.id(i-1), cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
