package tsp_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
	"github.com/katalvlaran/geotour/tsp"
)

func TestTotalDistance_Boundaries(t *testing.T) {
	pts := squarePoints()

	assert.Equal(t, 0.0, tsp.TotalDistance(nil, pts))
	assert.Equal(t, 0.0, tsp.TotalDistance([]int{2}, pts))

	want := 2 * geo.Haversine(pts[0], pts[2])
	assert.InDelta(t, want, tsp.TotalDistance([]int{0, 2}, pts), 1e-12)
	assert.InDelta(t, want, tsp.TotalDistance([]int{2, 0}, pts), 1e-12)
}

func TestTotalDistance_Square(t *testing.T) {
	pts := squarePoints()
	want := geo.Haversine(pts[0], pts[1]) + geo.Haversine(pts[1], pts[2]) +
		geo.Haversine(pts[2], pts[3]) + geo.Haversine(pts[3], pts[0])

	assert.InDelta(t, want, tsp.TotalDistance([]int{0, 1, 2, 3}, pts), 1e-9)
	// A crossing tour must be longer than the perimeter.
	assert.Greater(t, tsp.TotalDistance([]int{0, 2, 1, 3}, pts), want)
}

func TestTotalDistance_RotationAndReversalInvariant(t *testing.T) {
	pts := randomPoints(25, 11)
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 20; trial++ {
		p := rng.Perm(len(pts))
		base := tsp.TotalDistance(p, pts)

		for r := 1; r < len(p); r++ {
			rot := append(slices.Clone(p[r:]), p[:r]...)
			require.InDelta(t, base, tsp.TotalDistance(rot, pts), kmTol)
		}
		rev := slices.Clone(p)
		slices.Reverse(rev)
		require.InDelta(t, base, tsp.TotalDistance(rev, pts), kmTol)
	}
}

func TestTourCost_MatchesTotalDistance(t *testing.T) {
	pts := randomPoints(12, 3)
	m, err := matrix.FromPoints(pts, nil)
	require.NoError(t, err)

	tour := rand.New(rand.NewSource(9)).Perm(len(pts))
	got, err := tsp.TourCost(m, tour)
	require.NoError(t, err)
	assert.InDelta(t, tsp.TotalDistance(tour, pts), got, 1e-8)

	zero, err := tsp.TourCost(m, []int{4})
	require.NoError(t, err)
	assert.Zero(t, zero)
}

func TestTourCost_Errors(t *testing.T) {
	_, err := tsp.TourCost(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.TourCost(rect, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = tsp.TourCost(sq, []int{0, 5})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.TourCost(sq, []int{7})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	require.NoError(t, sq.Set(0, 1, -1))
	_, err = tsp.TourCost(sq, []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestResult_Route(t *testing.T) {
	pts := squarePoints()
	res := tsp.Result{Tour: []int{2, 0, 9, 1}}

	route := res.Route(pts)
	require.Len(t, route, 3)
	assert.Equal(t, pts[2], route[0])
	assert.Equal(t, pts[0], route[1])
	assert.Equal(t, pts[1], route[2])
	assert.False(t, math.IsNaN(route[0].Lon))
}
