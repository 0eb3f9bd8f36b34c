// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a fixed non-zero seed (0 would select a time-derived seed).
	seedDet = int64(20240611)

	// kmTol absorbs summation-order noise on kilometer costs.
	kmTol = 1e-6

	// stepsSmall keeps annealing tests fast while still converging on tiny inputs.
	stepsSmall = 20_000
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// squarePoints is the unit square (0,0),(0,1),(1,1),(1,0) in lon/lat degrees,
// listed in perimeter order.
func squarePoints() []geo.Point {
	return []geo.Point{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}, {Lon: 1, Lat: 0}}
}

// ringPoints places n cities on a circle of radius r degrees around (lon, lat),
// in angular order, so the identity permutation is the optimal cycle.
func ringPoints(n int, lon, lat, r float64) []geo.Point {
	pts := make([]geo.Point, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geo.Point{Lon: lon + r*math.Cos(th), Lat: lat + r*math.Sin(th)}
	}

	return pts
}

// randomPoints scatters n cities over a lon/lat box using a fixed seed.
func randomPoints(n int, seed int64) []geo.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geo.Point, n)
	for i := range pts {
		pts[i] = geo.Point{Lon: -10 + 40*rng.Float64(), Lat: 35 + 25*rng.Float64()}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// fastOpts returns seeded defaults with a reduced step budget.
func fastOpts(steps int) tsp.AnnealOptions {
	o := tsp.DefaultAnnealOptions()
	o.Seed = seedDet
	o.Steps = steps

	return o
}

// perimeterCost is the cost of visiting pts in input order.
func perimeterCost(pts []geo.Point) float64 {
	return tsp.TotalDistance(tsp.IdentityPermutation(len(pts)), pts)
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// Repeat runs fn n times (determinism checks).
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// requirePermutation fails unless tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}
