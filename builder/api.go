// api.go — public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildMap(bopts, cons...). Creates the map, resolves
//     cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkit/spatial"
)

// Constructor adds intersections and roads to m using the resolved config.
// Constructors MUST validate parameters before touching m, return sentinel
// errors and never panic.
type Constructor func(m *spatial.Map, cfg builderConfig) error

// BuildMap creates an empty spatial.Map, resolves the configuration from
// bopts and applies every constructor in order. Constructor k numbers its
// intersections starting right after the ones already in the map.
//
// Any constructor error is wrapped as "BuildMap: %w" and returned at once;
// no partial map is returned.
//
// Complexity: Σ cost of each constructor plus O(len(bopts)).
func BuildMap(bopts []BuilderOption, cons ...Constructor) (*spatial.Map, error) {
	m := spatial.NewMap()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		cfg.base = cfg.idOffset + m.Len()
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// addIntersection wraps map errors with constructor context.
func addIntersection(method string, m *spatial.Map, id int, x, y float64, cfg builderConfig) error {
	if err := m.AddIntersection(id, cfg.at(x, y)); err != nil {
		return fmt.Errorf("%s: AddIntersection(%d): %w: %w", method, id, ErrConstructFailed, err)
	}

	return nil
}

// addRoad wraps map errors with constructor context.
func addRoad(method string, m *spatial.Map, a, b int) error {
	if err := m.AddRoad(a, b); err != nil {
		return fmt.Errorf("%s: AddRoad(%d-%d): %w: %w", method, a, b, ErrConstructFailed, err)
	}

	return nil
}
