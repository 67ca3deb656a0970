package spatial

import (
	"errors"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Sentinel errors returned by Map operations.
var (
	// ErrUnknownIntersection indicates a referenced intersection ID is missing.
	ErrUnknownIntersection = errors.New("spatial: unknown intersection")

	// ErrDuplicateIntersection indicates an intersection ID was added twice.
	ErrDuplicateIntersection = errors.New("spatial: duplicate intersection")

	// ErrSelfLoop indicates a road that starts and ends at the same intersection.
	ErrSelfLoop = errors.New("spatial: road endpoints must differ")

	// ErrEmptyMap indicates a query that needs at least one intersection.
	ErrEmptyMap = errors.New("spatial: map has no intersections")
)

// Map is a static road network: intersections with planar coordinates and
// undirected roads between them. The zero value is not usable; call NewMap.
type Map struct {
	intersections map[int]orb.Point // ID → coordinate
	roads         map[int][]int     // ID → neighbor IDs, ascending, no duplicates
	roadCount     int               // number of undirected roads

	index *rtreego.Rtree // nearest-intersection index, nil until first Nearest
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{
		intersections: make(map[int]orb.Point),
		roads:         make(map[int][]int),
	}
}

// FromData builds a Map from raw coordinate and adjacency tables, the shape a
// map provider usually hands over. Adjacency lists are treated as undirected,
// so listing a road on one side is enough; listing it on both is harmless.
//
// Every ID referenced by roads must exist in intersections, otherwise
// ErrUnknownIntersection is returned. Self-loops are rejected with ErrSelfLoop.
func FromData(intersections map[int]orb.Point, roads map[int][]int) (*Map, error) {
	m := NewMap()
	for _, id := range sortedKeys(intersections) {
		if err := m.AddIntersection(id, intersections[id]); err != nil {
			return nil, err
		}
	}
	for _, from := range sortedKeys(roads) {
		for _, to := range roads[from] {
			if err := m.AddRoad(from, to); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
