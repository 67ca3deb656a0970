// Package builder_test contains functional tests for the map constructors,
// verifying counts, coordinates, IDs, determinism and error sentinels.
package builder_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/builder"
	"github.com/katalvlaran/lvkit/spatial"
)

// point fetches a coordinate or fails the test.
func point(t *testing.T, m *spatial.Map, id int) orb.Point {
	t.Helper()
	p, ok := m.Point(id)
	require.True(t, ok, "missing intersection %d", id)

	return p
}

// TestBuilders_Functional runs table-driven checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, m *spatial.Map)
	}{
		{
			name:  "Path(4, 2)",
			ctor:  builder.Path(4, 2),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, m *spatial.Map) {
				assert.Equal(t, orb.Point{6, 0}, point(t, m, 3))
				assert.True(t, m.HasRoad(2, 3))
				assert.False(t, m.HasRoad(0, 3))
			},
		},
		{
			name:  "Grid(2, 3, 1)",
			ctor:  builder.Grid(2, 3, 1),
			wantV: 6, wantE: 7, // 2·(3-1) horizontal + 3·(2-1) vertical
			sampleCheck: func(t *testing.T, m *spatial.Map) {
				// cell (1,2) → index 5 at (2, 1)
				assert.Equal(t, orb.Point{2, 1}, point(t, m, 5))
				assert.Equal(t, []int{2, 4}, m.Neighbors(5))
			},
		},
		{
			name:  "Grid(1, 1, 1)",
			ctor:  builder.Grid(1, 1, 1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Path with offset and origin",
			opts:  []builder.BuilderOption{builder.WithIDOffset(100), builder.WithOrigin(orb.Point{10, -1})},
			ctor:  builder.Path(2, 0.5),
			wantV: 2, wantE: 1,
			sampleCheck: func(t *testing.T, m *spatial.Map) {
				assert.Equal(t, []int{100, 101}, m.IDs())
				assert.Equal(t, orb.Point{10.5, -1}, point(t, m, 101))
			},
		},
		{
			name:  "RandomGeometric radius 0",
			opts:  []builder.BuilderOption{builder.WithSeed(1)},
			ctor:  builder.RandomGeometric(10, 0),
			wantV: 10, wantE: 0,
		},
		{
			name:  "RandomGeometric complete",
			opts:  []builder.BuilderOption{builder.WithSeed(1)},
			ctor:  builder.RandomGeometric(6, math.Sqrt2),
			wantV: 6, wantE: 15,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMap(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.Len(), "intersections")
			assert.Equal(t, tc.wantE, m.RoadCount(), "roads")
			assert.NoError(t, m.Validate())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, m)
			}
		})
	}
}

func TestBuildMap_ComposedIslands(t *testing.T) {
	m, err := builder.BuildMap(nil, builder.Path(3, 1), builder.Grid(2, 2, 1))
	require.NoError(t, err)

	assert.Equal(t, 7, m.Len())
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5, 6}}, m.Components())
}

func TestBuildMap_NilConstructor(t *testing.T) {
	_, err := builder.BuildMap(nil, builder.Path(2, 1), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomGeometric_Deterministic(t *testing.T) {
	build := func() *spatial.Map {
		m, err := builder.BuildMap([]builder.BuilderOption{builder.WithSeed(42), builder.WithScale(10)},
			builder.RandomGeometric(40, 2.5))
		require.NoError(t, err)
		return m
	}
	a, b := build(), build()

	require.Equal(t, a.IDs(), b.IDs())
	for _, id := range a.IDs() {
		assert.Equal(t, point(t, a, id), point(t, b, id))
		assert.Equal(t, a.Neighbors(id), b.Neighbors(id))
	}
	bounds := a.Bounds()
	assert.GreaterOrEqual(t, bounds.Min.X(), 0.0)
	assert.Less(t, bounds.Max.X(), 10.0)
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path n=1", nil, builder.Path(1, 1), builder.ErrTooFewVertices},
		{"Path spacing=0", nil, builder.Path(3, 0), builder.ErrInvalidSpacing},
		{"Path spacing=NaN", nil, builder.Path(3, math.NaN()), builder.ErrInvalidSpacing},
		{"Grid rows=0", nil, builder.Grid(0, 3, 1), builder.ErrTooFewVertices},
		{"Grid spacing<0", nil, builder.Grid(2, 2, -1), builder.ErrInvalidSpacing},
		{"RandomGeometric n=0", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGeometric(0, 1), builder.ErrTooFewVertices},
		{"RandomGeometric radius<0", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGeometric(3, -1), builder.ErrInvalidRadius},
		{"RandomGeometric no rng", nil, builder.RandomGeometric(3, 1), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMap(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}
