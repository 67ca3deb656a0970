// Package astar_test validates route search: input validation, the
// legitimate "no route" outcome, path validity and optimality against an
// exhaustive search on small random maps.
package astar_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/astar"
	"github.com/katalvlaran/lvkit/builder"
	"github.com/katalvlaran/lvkit/spatial"
)

const eps = 1e-9

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilMap(t *testing.T) {
	_, _, err := astar.ShortestPath(nil, 0, 1)
	assert.ErrorIs(t, err, astar.ErrNilMap)
}

func TestShortestPath_UnknownEndpoints(t *testing.T) {
	m := abcMap(t)

	_, found, err := astar.ShortestPath(m, 9, 0)
	assert.ErrorIs(t, err, astar.ErrStartNotFound)
	assert.ErrorIs(t, err, spatial.ErrUnknownIntersection)
	assert.False(t, found)

	_, _, err = astar.ShortestPath(m, 0, 9)
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
}

func TestWithMaxCost_Panics(t *testing.T) {
	assert.Panics(t, func() { astar.WithMaxCost(-1) })
	assert.Panics(t, func() { astar.WithMaxCost(math.NaN()) })
	assert.Panics(t, func() { astar.WithHeuristic(nil) })
}

// ------------------------------------------------------------------------
// 2. Basic behaviour
// ------------------------------------------------------------------------

// abcMap is A(0,0)—B(1,0)—C(2,0) with IDs 0, 1, 2.
func abcMap(t *testing.T) *spatial.Map {
	t.Helper()
	m, err := spatial.FromData(
		map[int]orb.Point{0: {0, 0}, 1: {1, 0}, 2: {2, 0}},
		map[int][]int{0: {1}, 1: {2}},
	)
	require.NoError(t, err)

	return m
}

func TestShortestPath_Line(t *testing.T) {
	path, found, err := astar.ShortestPath(abcMap(t), 0, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestShortestPath_StartIsGoal(t *testing.T) {
	res, err := astar.Search(abcMap(t), 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestShortestPath_Disconnected(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Path(3, 1), builder.Path(3, 1))
	require.NoError(t, err)

	path, found, err := astar.ShortestPath(m, 0, 5)
	require.NoError(t, err, "no route is not an error")
	assert.False(t, found)
	assert.Nil(t, path)

	res, err := astar.Search(m, 0, 5)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Equal(t, 3, res.Expanded, "only the start island is explored")
}

func TestShortestPath_PrefersShorterDetour(t *testing.T) {
	//        1 (1, 10)
	//       / \
	//  0(0,0)   3(2,0)
	//       \ /
	//        2 (1, 1)
	m, err := spatial.FromData(
		map[int]orb.Point{0: {0, 0}, 1: {1, 10}, 2: {1, 1}, 3: {2, 0}},
		map[int][]int{0: {1, 2}, 3: {1, 2}},
	)
	require.NoError(t, err)

	res, err := astar.Search(m, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
	assert.InDelta(t, 2*math.Sqrt2, res.Cost, eps)
}

func TestShortestPath_TieBreakIsDeterministic(t *testing.T) {
	// A unit square: both 0→1→3 and 0→2→3 cost 2. Equal f goes to the lower
	// ID, so 1 is expanded first and becomes 3's predecessor.
	m, err := builder.BuildMap(nil, builder.Grid(2, 2, 1))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		path, found, err := astar.ShortestPath(m, 0, 3)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []int{0, 1, 3}, path)
	}
}

func TestSearch_CostMatchesPathCost(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Grid(5, 7, 1.5))
	require.NoError(t, err)

	res, err := astar.Search(m, 0, 34)
	require.NoError(t, err)
	require.True(t, res.Found)

	cost, err := astar.PathCost(m, res.Path)
	require.NoError(t, err)
	assert.InDelta(t, res.Cost, cost, eps)
	assert.InDelta(t, (4+6)*1.5, cost, eps, "Manhattan distance on a lattice")
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestWithMaxCost(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Path(5, 1))
	require.NoError(t, err)

	res, err := astar.Search(m, 0, 4, astar.WithMaxCost(3.5))
	require.NoError(t, err)
	assert.False(t, res.Found, "goal costs 4, cap is 3.5")

	res, err = astar.Search(m, 0, 4, astar.WithMaxCost(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Path)
}

// A one-hop query stays local: nothing beyond the start is expanded, however
// large the map.
func TestSearch_OneHopIsLocal(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Grid(200, 200, 1))
	require.NoError(t, err)

	res, err := astar.Search(m, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Path)
	assert.Equal(t, 1, res.Expanded)
}

// The cap bounds the real route cost, so an overestimating heuristic must not
// hide a goal that is within it.
func TestWithMaxCost_InadmissibleHeuristic(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Path(3, 1))
	require.NoError(t, err)

	tripled := func(from, goal orb.Point) float64 {
		return 3 * astar.EuclideanHeuristic(from, goal)
	}
	res, err := astar.Search(m, 0, 2, astar.WithHeuristic(tripled), astar.WithMaxCost(2.5))
	require.NoError(t, err)
	require.True(t, res.Found, "route costs 2, cap is 2.5")
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.InDelta(t, 2.0, res.Cost, eps)

	res, err = astar.Search(m, 0, 2, astar.WithHeuristic(tripled), astar.WithMaxCost(1.5))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestWithOnExpand_Order(t *testing.T) {
	var order []int
	var costs []float64
	hook := astar.WithOnExpand(func(id int, g float64) {
		order = append(order, id)
		costs = append(costs, g)
	})

	res, err := astar.Search(abcMap(t), 0, 2, hook)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order, "the goal itself is not expanded")
	assert.Equal(t, []float64{0, 1}, costs)
	assert.Equal(t, 2, res.Expanded)
}

func TestHeuristicReducesWork(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Grid(15, 15, 1))
	require.NoError(t, err)

	informed, err := astar.Search(m, 0, 14)
	require.NoError(t, err)
	blind, err := astar.Search(m, 0, 14, astar.WithHeuristic(astar.ZeroHeuristic))
	require.NoError(t, err)

	assert.InDelta(t, blind.Cost, informed.Cost, eps)
	assert.Less(t, informed.Expanded, blind.Expanded)
}

// An inadmissible heuristic can break optimality but must still return a
// valid route; lazy deletion allows nodes to be reopened.
func TestInconsistentHeuristic_ValidPath(t *testing.T) {
	m, err := builder.BuildMap([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomGeometric(60, 0.25))
	require.NoError(t, err)

	noisy := func(from, goal orb.Point) float64 {
		return 3 * astar.EuclideanHeuristic(from, goal)
	}
	for _, comp := range m.Components() {
		if len(comp) < 2 {
			continue
		}
		start, goal := comp[0], comp[len(comp)-1]
		res, err := astar.Search(m, start, goal, astar.WithHeuristic(noisy))
		require.NoError(t, err)
		require.True(t, res.Found)
		assertValidPath(t, m, res.Path, start, goal)
	}
}

// ------------------------------------------------------------------------
// 4. Properties on random maps
// ------------------------------------------------------------------------

// TestShortestPath_OptimalOnRandomMaps compares every pair against an
// exhaustive simple-path enumeration.
func TestShortestPath_OptimalOnRandomMaps(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		m, err := builder.BuildMap([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomGeometric(8, 0.45))
		require.NoError(t, err)

		for _, start := range m.IDs() {
			for _, goal := range m.IDs() {
				want, reachable := bruteForce(m, start, goal)
				res, err := astar.Search(m, start, goal)
				require.NoError(t, err)

				require.Equal(t, reachable, res.Found, "seed=%d %d→%d", seed, start, goal)
				assert.Equal(t, m.Connected(start, goal), res.Found)
				if !reachable {
					continue
				}
				assertValidPath(t, m, res.Path, start, goal)
				assert.InDelta(t, want, res.Cost, eps, "seed=%d %d→%d", seed, start, goal)
			}
		}
	}
}

// assertValidPath checks endpoints and that every hop is a road.
func assertValidPath(t *testing.T, m *spatial.Map, path []int, start, goal int) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, m.HasRoad(path[i-1], path[i]), "hop %d-%d", path[i-1], path[i])
	}
}

// bruteForce returns the cheapest simple-path cost by DFS enumeration.
func bruteForce(m *spatial.Map, start, goal int) (float64, bool) {
	best := math.Inf(1)
	onPath := map[int]bool{start: true}

	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if u == goal {
			best = math.Min(best, cost)
			return
		}
		for _, v := range m.Neighbors(u) {
			if onPath[v] {
				continue
			}
			d, _ := m.Distance(u, v)
			onPath[v] = true
			walk(v, cost+d)
			onPath[v] = false
		}
	}
	walk(start, 0)

	return best, !math.IsInf(best, 1)
}
