// Package tsp - 2-opt polish.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open cyclic tour.
// For positions i < k it removes edges (a,b) = (T[i],T[i+1]) and
// (c,e) = (T[k],T[k+1 mod n]), reconnects them as (a,c),(b,e) by reversing
// T[i+1..k], and accepts when
//
//	Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e) < −eps.
//
// The pair (i=0, k=n−1) shares the closing edge and is skipped.
//
// Complexity: O(n²) candidate checks per pass; each accepted move costs O(n)
// for the reversal; overall O(iter·n²).
package tsp

import (
	"context"

	"github.com/katalvlaran/geotour/matrix"
)

// TwoOpt runs first-improvement 2-opt from tour over dist and returns the
// improved tour (a fresh slice) and its cost rounded to 1e-9.
// eps < 0 is treated as 0; maxIters == 0 runs to a local optimum.
//
// Errors: ErrDimensionMismatch (matrix shape), ErrInvalidTour (tour is not a
// permutation of the matrix order).
func TwoOpt(dist matrix.Matrix, tour []int, eps float64, maxIters int) ([]int, float64, error) {
	d, n, err := matrixDistFn(dist)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return nil, 0, ErrInvalidTour
	}

	cur := CopyTour(tour)
	cost := cycleCost(cur, d)
	cost += twoOptInPlace(context.Background(), cur, d, eps, maxIters)

	return cur, round1e9(cost), nil
}

// twoOptInPlace improves tour in place and returns the (non-positive) total
// cost change. ctx is checked once per pass; a cancelled ctx keeps the moves
// accepted so far.
func twoOptInPlace(ctx context.Context, tour []int, d distFn, eps float64, maxIters int) float64 {
	n := len(tour)
	if n < 4 {
		// Every tour on ≤ 3 cities is the same cycle.
		return 0
	}
	if eps < 0 {
		eps = 0
	}

	var (
		total    float64
		accepted int
	)
	for {
		if ctx.Err() != nil {
			return total
		}
		improved := false

		var (
			a, b, c, e int
			delta      float64
			i, k       int
		)
		for i = 0; i <= n-3 && !improved; i++ {
			a = tour[i]
			b = tour[i+1]
			for k = i + 2; k <= n-1; k++ {
				if i == 0 && k == n-1 {
					continue
				}
				c = tour[k]
				e = tour[(k+1)%n]

				delta = d(a, c) + d(b, e) - d(a, b) - d(c, e)
				if delta >= -eps {
					continue
				}

				reverseRange(tour, i+1, k)
				total += delta
				accepted++
				improved = true
				break
			}
		}

		if !improved || (maxIters > 0 && accepted >= maxIters) {
			return total
		}
	}
}
