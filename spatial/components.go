package spatial

import "github.com/spakin/disjoint"

// Components partitions the intersections into connected groups. Each group
// is sorted ascending and groups are ordered by their smallest ID.
// Complexity: O((V + E)·α(V)).
func (m *Map) Components() [][]int {
	ids := m.IDs()
	sets := m.unionFind(ids)

	groups := make(map[*disjoint.Element][]int, len(ids))
	var roots []*disjoint.Element
	// ids ascend, so groups are discovered in order of their smallest ID.
	for _, id := range ids {
		r := sets[id].Find()
		if _, seen := groups[r]; !seen {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], id)
	}

	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, groups[r])
	}

	return out
}

// Connected reports whether a route can exist between a and b.
// Unknown IDs are never connected.
func (m *Map) Connected(a, b int) bool {
	if !m.Has(a) || !m.Has(b) {
		return false
	}
	if a == b {
		return true
	}
	sets := m.unionFind(m.IDs())

	return sets[a].Find() == sets[b].Find()
}

// unionFind builds one disjoint-set element per intersection and merges
// the two sides of every road.
func (m *Map) unionFind(ids []int) map[int]*disjoint.Element {
	sets := make(map[int]*disjoint.Element, len(ids))
	for _, id := range ids {
		el := disjoint.NewElement()
		el.Data = id
		sets[id] = el
	}
	for _, from := range ids {
		for _, to := range m.roads[from] {
			if from < to && sets[to] != nil {
				disjoint.Union(sets[from], sets[to])
			}
		}
	}

	return sets
}
