// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
	assert.Equal(t, 4.5, m.Data()[1*3+2])

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

func TestDense_SetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.True(t, errors.Is(m.Set(0, 0, math.NaN()), matrix.ErrNaNInf))
	require.True(t, errors.Is(m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf))
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	v, _ := m.At(0, 1)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, "[0, 7]\n[0, 0]\n", m.String())
}

func TestFromPoints_HaversineTable(t *testing.T) {
	pts := []geo.Point{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}, {Lon: 1, Lat: 1}, {Lon: 1, Lat: 0}}
	m, err := matrix.FromPoints(pts, nil)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	var i, j int
	for i = 0; i < len(pts); i++ {
		for j = 0; j < len(pts); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, geo.Haversine(pts[i], pts[j]), v, 1e-12)
		}
	}
}

func TestFromPoints_Errors(t *testing.T) {
	_, err := matrix.FromPoints(nil, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	bad := func(a, b geo.Point) float64 { return math.Inf(1) }
	_, err = matrix.FromPoints([]geo.Point{{}, {Lon: 1}}, bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
