// Package tsp - cost utilities.
//
// Two representations of the distance model coexist:
//   - TotalDistance / TourCost: public, whole-tour sums (points or matrix).
//   - distFn: the index-based accessor used by hot loops, backed either by a
//     precomputed matrix.Dense or by on-demand haversine evaluation.
//
// Costs leaving the package are rounded to 1e-9 to keep them stable across
// platforms and summation orders.
package tsp

import (
	"math"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// distFn returns the distance between cities u and v (indices).
type distFn func(u, v int) float64

// TotalDistance sums geo.Haversine along the cyclic tour, closing the last
// city back to the first. Tours with fewer than two cities cost 0.
// Every entry of tour must index points.
//
// Complexity: O(n).
func TotalDistance(tour []int, points []geo.Point) float64 {
	n := len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += geo.Haversine(points[tour[i]], points[tour[(i+1)%n]])
	}

	return sum
}

// TourCost sums dist along the cyclic tour using a precomputed matrix.
//
// Contract:
//   - dist is square with order ≥ len(tour); every entry of tour indexes it.
//   - Returns ErrDimensionMismatch on shape or index violations, including
//     NaN/±Inf/negative weights.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		n  = len(tour)
	)
	if nr != dist.Cols() {
		return 0, ErrDimensionMismatch
	}
	if n <= 1 {
		if n == 1 && (tour[0] < 0 || tour[0] >= nr) {
			return 0, ErrDimensionMismatch
		}
		return 0, nil
	}

	var (
		sum  float64
		w    float64
		u, v int
		i    int
		err  error
	)
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[(i+1)%n]
		if u < 0 || u >= nr || v < 0 || v >= nr {
			return 0, ErrDimensionMismatch
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return round1e9(sum), nil
}

// newDistFn picks the distance backend for points.
// n in [2, limit] ⇒ precomputed table (O(n²) memory, O(1) lookups);
// otherwise haversine on demand.
//
// Complexity: O(n²) when the table is built, O(1) otherwise.
func newDistFn(points []geo.Point, limit int) (distFn, error) {
	n := len(points)
	if n >= 2 && n <= limit {
		m, err := matrix.FromPoints(points, geo.Haversine)
		if err != nil {
			return nil, err
		}
		data := m.Data()

		return func(u, v int) float64 { return data[u*n+v] }, nil
	}

	return func(u, v int) float64 { return geo.Haversine(points[u], points[v]) }, nil
}

// matrixDistFn adapts any square matrix to a distFn by prefetching it into a
// flat buffer, removing interface dispatch from hot loops.
//
// Complexity: O(n²).
func matrixDistFn(dist matrix.Matrix) (distFn, int, error) {
	if dist == nil {
		return nil, 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return nil, 0, ErrDimensionMismatch
	}
	if d, ok := dist.(*matrix.Dense); ok {
		data := d.Data()
		return func(u, v int) float64 { return data[u*n+v] }, n, nil
	}

	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil || math.IsNaN(x) || x < 0 {
				return nil, 0, ErrDimensionMismatch
			}
			w[i*n+j] = x
		}
	}

	return func(u, v int) float64 { return w[u*n+v] }, n, nil
}

// cycleCost sums d along the cyclic tour.
//
// Complexity: O(n).
func cycleCost(tour []int, d distFn) float64 {
	n := len(tour)
	if n <= 1 {
		return 0
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d(tour[i], tour[i+1])
	}

	return sum + d(tour[n-1], tour[0])
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
