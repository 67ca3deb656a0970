package astar

import (
	"fmt"

	"github.com/katalvlaran/lvkit/spatial"
)

// PathCost returns the total Euclidean length of path, checking that every
// consecutive pair is joined by a road. An empty or single-node path costs 0.
func PathCost(m *spatial.Map, path []int) (float64, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	if len(path) == 1 && !m.Has(path[0]) {
		return 0, fmt.Errorf("%w: %d", spatial.ErrUnknownIntersection, path[0])
	}

	var total float64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if !m.HasRoad(u, v) {
			return 0, fmt.Errorf("%w: %d-%d at position %d", ErrNotARoad, u, v, i)
		}
		d, err := m.Distance(u, v)
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}
