// impl_grid.go — implementation of Grid(rows, cols, spacing) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r, c) has local index r·cols + c (row-major) and sits at
//     origin + (c·spacing, r·spacing).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • spacing > 0 and finite (else ErrInvalidSpacing).
//   • Roads to right (r, c+1) and bottom (r+1, c) neighbors where they exist.
//
// Determinism:
//   • Stable intersection order: row-major.
//   • Stable road order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkit/spatial"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int, spacing float64) Constructor {
	return func(m *spatial.Map, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if spacing <= 0 || !finite(spacing) {
			return fmt.Errorf("%s: spacing=%g: %w", methodGrid, spacing, ErrInvalidSpacing)
		}

		cell := func(r, c int) int { return cfg.id(r*cols + c) }

		// 2) Intersections in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addIntersection(methodGrid, m, cell(r, c), float64(c)*spacing, float64(r)*spacing, cfg); err != nil {
					return err
				}
			}
		}

		// 3) Right then Bottom road for every cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addRoad(methodGrid, m, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(methodGrid, m, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
