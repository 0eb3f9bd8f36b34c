// Package tsp - validation of options, points, and caller-supplied tours.
//
// Deterministic, side-effect free helpers returning the sentinels from
// types.go. Everything here runs before the annealing loop starts, so a
// misconfigured run never executes a single step.
package tsp

import (
	"math"

	"github.com/katalvlaran/geotour/geo"
)

// validateOptions checks AnnealOptions in isolation.
//
// Complexity: O(1).
func validateOptions(opts AnnealOptions) error {
	t0 := opts.InitialTemperature
	if math.IsNaN(t0) || math.IsInf(t0, 0) || t0 <= 0 {
		return ErrInvalidTemperature
	}
	tmin := opts.MinTemperature
	if math.IsNaN(tmin) || math.IsInf(tmin, 0) || tmin < 0 {
		return ErrInvalidTemperature
	}
	// alpha == 1 keeps T constant (a Metropolis walk); alpha > 1 would heat.
	if math.IsNaN(opts.CoolingRate) || opts.CoolingRate <= 0 || opts.CoolingRate > 1 {
		return ErrInvalidCoolingRate
	}
	if opts.Steps < 0 || opts.ProgressEvery < 0 || opts.PolishMaxIters < 0 {
		return ErrInvalidSteps
	}
	if opts.Restarts < 0 || opts.Workers < 0 {
		return ErrInvalidRestarts
	}
	if opts.MatrixLimit < 0 {
		return ErrDimensionMismatch
	}

	switch opts.Acceptance {
	case CompareToBest, CompareToCurrent:
	default:
		return ErrUnsupportedStrategy
	}
	switch opts.Cost {
	case IncrementalCost, FullCost:
	default:
		return ErrUnsupportedStrategy
	}
	switch opts.Initial {
	case RandomTour, NearestTour, IdentityTour:
	default:
		return ErrUnsupportedStrategy
	}

	return nil
}

// validatePoints rejects NaN/±Inf coordinates; they would poison every cost
// they touch. Out-of-range but finite values are accepted (haversine is
// periodic in both angles).
//
// Complexity: O(n).
func validatePoints(points []geo.Point) error {
	var p geo.Point
	for _, p = range points {
		if math.IsNaN(p.Lon) || math.IsNaN(p.Lat) || math.IsInf(p.Lon, 0) || math.IsInf(p.Lat, 0) {
			return ErrInvalidPoint
		}
	}

	return nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
// An empty perm is valid for n == 0.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n < 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}
