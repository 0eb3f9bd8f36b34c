// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/geotour/geo"

// DistanceFunc measures the distance between two points.
type DistanceFunc func(a, b geo.Point) float64

// FromPoints builds the n×n table d[i][j] = dist(points[i], points[j]).
// The metric is assumed symmetric: only the upper triangle is evaluated and
// mirrored; the diagonal is left at zero. A nil dist selects geo.Haversine.
//
// Errors: ErrBadShape for an empty point set, ErrNaNInf if dist returns a
// non-finite value.
//
// Complexity: O(n²) time and memory, n(n−1)/2 distance evaluations.
func FromPoints(points []geo.Point, dist DistanceFunc) (*Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrBadShape
	}
	if dist == nil {
		dist = geo.Haversine
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = dist(points[i], points[j])
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			m.data[j*n+i] = d
		}
	}

	return m, nil
}
