package spatial

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// Maps assembled without AddRoad can carry dangling endpoints; Validate must
// report them and Components must not trip over them.
func TestValidate_DanglingRoad(t *testing.T) {
	m := NewMap()
	m.intersections[1] = orb.Point{0, 0}
	m.roads[1] = []int{2}

	assert.ErrorIs(t, m.Validate(), ErrUnknownIntersection)
	assert.Equal(t, [][]int{{1}}, m.Components())

	delete(m.roads, 1)
	m.roads[3] = []int{1}
	assert.ErrorIs(t, m.Validate(), ErrUnknownIntersection)
}
