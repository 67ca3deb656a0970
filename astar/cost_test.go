package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/astar"
	"github.com/katalvlaran/lvkit/spatial"
)

func TestPathCost(t *testing.T) {
	m := abcMap(t)

	c, err := astar.PathCost(m, []int{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, c, eps)

	c, err = astar.PathCost(m, nil)
	require.NoError(t, err)
	assert.Zero(t, c)

	c, err = astar.PathCost(m, []int{1})
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = astar.PathCost(m, []int{0, 2})
	assert.ErrorIs(t, err, astar.ErrNotARoad)

	_, err = astar.PathCost(m, []int{7})
	assert.ErrorIs(t, err, spatial.ErrUnknownIntersection)

	_, err = astar.PathCost(nil, []int{0})
	assert.ErrorIs(t, err, astar.ErrNilMap)
}
