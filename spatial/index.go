package spatial

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// R-tree shape: 2-D, 25..50 entries per node.
const (
	indexDim         = 2
	indexMinChildren = 25
	indexMaxChildren = 50

	// pointTolerance is the half-width of the box each intersection occupies
	// in the tree; rtreego cannot store zero-area rectangles.
	pointTolerance = 1e-9

	// nearestCandidates is how many tree hits are re-ranked by exact distance.
	nearestCandidates = 4
)

// indexEntry stores one intersection in the R-tree.
type indexEntry struct {
	id int
	p  orb.Point
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect {
	return rtreego.Point{e.p.X(), e.p.Y()}.ToRect(pointTolerance)
}

// buildIndex bulk-loads every intersection into a fresh R-tree.
func (m *Map) buildIndex() *rtreego.Rtree {
	ids := m.IDs()
	objs := make([]rtreego.Spatial, 0, len(ids))
	for _, id := range ids {
		objs = append(objs, &indexEntry{id: id, p: m.intersections[id]})
	}

	return rtreego.NewTree(indexDim, indexMinChildren, indexMaxChildren, objs...)
}

// Nearest returns the intersection closest to p. Exact ties go to the
// lower ID. The index is built on first use and dropped whenever an
// intersection is added.
func (m *Map) Nearest(p orb.Point) (int, error) {
	if len(m.intersections) == 0 {
		return 0, ErrEmptyMap
	}
	if m.index == nil {
		m.index = m.buildIndex()
	}

	hits := m.index.NearestNeighbors(nearestCandidates, rtreego.Point{p.X(), p.Y()})
	best, bestDist := 0, 0.0
	found := false
	for _, h := range hits {
		e, ok := h.(*indexEntry)
		if !ok || e == nil {
			continue
		}
		d := planar.Distance(p, e.p)
		if !found || d < bestDist || (d == bestDist && e.id < best) {
			best, bestDist, found = e.id, d, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: index returned no candidates", ErrEmptyMap)
	}

	return best, nil
}
