package geo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/geo"
)

const kmTol = 1e-9

func TestHaversine_KnownDistances(t *testing.T) {
	oneDegree := geo.EarthRadiusKm * math.Pi / 180

	tests := []struct {
		name string
		a, b geo.Point
		want float64
	}{
		{"identity", geo.Point{Lon: 13.4, Lat: 52.5}, geo.Point{Lon: 13.4, Lat: 52.5}, 0},
		{"one degree of latitude", geo.Point{Lon: 0, Lat: 0}, geo.Point{Lon: 0, Lat: 1}, oneDegree},
		{"one degree of longitude on equator", geo.Point{Lon: 0, Lat: 0}, geo.Point{Lon: 1, Lat: 0}, oneDegree},
		{"antipodal on equator", geo.Point{Lon: 0, Lat: 0}, geo.Point{Lon: 180, Lat: 0}, math.Pi * geo.EarthRadiusKm},
		{"pole to pole", geo.Point{Lon: 0, Lat: 90}, geo.Point{Lon: 0, Lat: -90}, math.Pi * geo.EarthRadiusKm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.Haversine(tt.a, tt.b)
			require.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestHaversine_LondonParis(t *testing.T) {
	london := geo.Point{Lon: -0.1278, Lat: 51.5074}
	paris := geo.Point{Lon: 2.3522, Lat: 48.8566}

	// Reference great-circle distance is ~343.5 km on a 6371 km sphere.
	assert.InDelta(t, 343.5, geo.Haversine(london, paris), 1.0)
}

func TestHaversine_SymmetryAndIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := geo.Point{Lon: rng.Float64()*360 - 180, Lat: rng.Float64()*180 - 90}
		b := geo.Point{Lon: rng.Float64()*360 - 180, Lat: rng.Float64()*180 - 90}

		ab := geo.Haversine(a, b)
		ba := geo.Haversine(b, a)
		require.GreaterOrEqual(t, ab, 0.0)
		require.InDelta(t, ab, ba, kmTol)
		require.InDelta(t, 0, geo.Haversine(a, a), kmTol)
		require.LessOrEqual(t, ab, math.Pi*geo.EarthRadiusKm+kmTol)
	}
}

func TestHaversine_NearAntipodalNeverNaN(t *testing.T) {
	// Points chosen so that h rounds to (or just past) 1.
	pairs := [][2]geo.Point{
		{{Lon: 0, Lat: 0}, {Lon: 180, Lat: 0}},
		{{Lon: -180, Lat: 0}, {Lon: 0, Lat: 0}},
		{{Lon: 45, Lat: 30}, {Lon: -135, Lat: -30}},
		{{Lon: 179.9999999999, Lat: 0}, {Lon: -0.0000000001, Lat: 0}},
	}
	for _, p := range pairs {
		d := geo.Haversine(p[0], p[1])
		require.False(t, math.IsNaN(d), "NaN for %v-%v", p[0], p[1])
		require.InDelta(t, math.Pi*geo.EarthRadiusKm, d, 1e-3)
	}
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, geo.Point{Lon: 180, Lat: -90}.Valid())
	assert.True(t, geo.Point{}.Valid())
	assert.False(t, geo.Point{Lon: 181, Lat: 0}.Valid())
	assert.False(t, geo.Point{Lon: 0, Lat: 90.5}.Valid())
	assert.False(t, geo.Point{Lon: math.NaN(), Lat: 0}.Valid())
	assert.False(t, geo.Point{Lon: 0, Lat: math.Inf(1)}.Valid())
}
