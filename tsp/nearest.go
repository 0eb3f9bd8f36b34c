package tsp

import (
	"math"

	"github.com/katalvlaran/geotour/matrix"
)

// NearestNeighbor builds a greedy tour over dist: starting at start, move to
// the closest unvisited city until all are visited. Ties go to the lowest
// index, so the result is deterministic.
//
// Errors: ErrDimensionMismatch for a nil/non-square matrix or bad weights,
// ErrStartOutOfRange for start ∉ [0..n-1].
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist matrix.Matrix, start int) ([]int, error) {
	d, n, err := matrixDistFn(dist)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	return nearestTour(n, start, d), nil
}

// nearestTour is the index-level greedy construction shared with Annealer.
func nearestTour(n, start int, d distFn) []int {
	if n == 0 {
		return []int{}
	}
	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		last    = start
		next    int
		best    float64
		w       float64
		v       int
	)
	visited[start] = true
	tour = append(tour, start)

	for len(tour) < n {
		next = -1
		best = math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			w = d(last, v)
			if next == -1 || w < best {
				next, best = v, w
			}
		}
		visited[next] = true
		tour = append(tour, next)
		last = next
	}

	return tour
}
