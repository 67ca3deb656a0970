package spatial

import (
	"fmt"
	"maps"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AddIntersection places a new intersection with the given ID at p.
// Returns ErrDuplicateIntersection if the ID is already taken.
func (m *Map) AddIntersection(id int, p orb.Point) error {
	if _, ok := m.intersections[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateIntersection, id)
	}
	m.intersections[id] = p
	m.index = nil

	return nil
}

// AddRoad connects a and b in both directions. Adding an existing road again
// is a no-op. Both endpoints must already exist.
func (m *Map) AddRoad(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	if !m.Has(a) {
		return fmt.Errorf("%w: road %d-%d: %d", ErrUnknownIntersection, a, b, a)
	}
	if !m.Has(b) {
		return fmt.Errorf("%w: road %d-%d: %d", ErrUnknownIntersection, a, b, b)
	}

	if insertSorted(m.roads, a, b) {
		insertSorted(m.roads, b, a)
		m.roadCount++
	}

	return nil
}

// insertSorted adds v to adj[k] keeping the list ascending.
// Reports false if v was already present.
func insertSorted(adj map[int][]int, k, v int) bool {
	list := adj[k]
	i, found := slices.BinarySearch(list, v)
	if found {
		return false
	}
	adj[k] = slices.Insert(list, i, v)

	return true
}

// Has reports whether the intersection exists.
func (m *Map) Has(id int) bool {
	_, ok := m.intersections[id]
	return ok
}

// Point returns the coordinate of an intersection.
func (m *Map) Point(id int) (orb.Point, bool) {
	p, ok := m.intersections[id]
	return p, ok
}

// Neighbors returns the IDs directly reachable from id, ascending.
// The slice is a copy; unknown IDs yield nil.
func (m *Map) Neighbors(id int) []int {
	return slices.Clone(m.roads[id])
}

// EachNeighbor calls fn for every neighbor of id in ascending order without
// copying the adjacency list. fn must not mutate the map.
func (m *Map) EachNeighbor(id int, fn func(to int)) {
	for _, to := range m.roads[id] {
		fn(to)
	}
}

// IDs returns all intersection IDs, ascending.
func (m *Map) IDs() []int {
	return sortedKeys(m.intersections)
}

// Len returns the number of intersections.
func (m *Map) Len() int { return len(m.intersections) }

// RoadCount returns the number of undirected roads.
func (m *Map) RoadCount() int { return m.roadCount }

// Distance returns the straight-line distance between two intersections,
// which is also the cost of the road joining them.
func (m *Map) Distance(a, b int) (float64, error) {
	pa, ok := m.intersections[a]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownIntersection, a)
	}
	pb, ok := m.intersections[b]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownIntersection, b)
	}

	return planar.Distance(pa, pb), nil
}

// HasRoad reports whether a and b are joined by a road.
func (m *Map) HasRoad(a, b int) bool {
	_, found := slices.BinarySearch(m.roads[a], b)
	return found
}

// Validate scans every adjacency list and reports the first road endpoint
// that has no coordinate. Maps built through AddRoad/FromData are always
// valid; the scan guards maps assembled by other means.
// Complexity: O(V + E).
func (m *Map) Validate() error {
	for _, from := range sortedKeys(m.roads) {
		if !m.Has(from) {
			return fmt.Errorf("%w: road source %d", ErrUnknownIntersection, from)
		}
		for _, to := range m.roads[from] {
			if !m.Has(to) {
				return fmt.Errorf("%w: road %d-%d", ErrUnknownIntersection, from, to)
			}
		}
	}

	return nil
}

// Bounds returns the smallest box holding every intersection.
// An empty map yields the zero Bound.
func (m *Map) Bounds() orb.Bound {
	ids := m.IDs()
	if len(ids) == 0 {
		return orb.Bound{}
	}
	b := m.intersections[ids[0]].Bound()
	for _, id := range ids[1:] {
		b = b.Extend(m.intersections[id])
	}

	return b
}

// sortedKeys returns the keys of an int-keyed map in ascending order.
func sortedKeys[V any](mm map[int]V) []int {
	return slices.Sorted(maps.Keys(mm))
}
