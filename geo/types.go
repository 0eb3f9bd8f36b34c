package geo

import (
	"fmt"
	"math"
)

// Point is an immutable (longitude, latitude) pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Valid reports whether p is finite and inside the usual coordinate ranges
// (|Lon| ≤ 180, |Lat| ≤ 90). Haversine accepts any finite input; Valid is a
// hint for loaders that want to flag suspicious rows.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lon) || math.IsNaN(p.Lat) || math.IsInf(p.Lon, 0) || math.IsInf(p.Lat, 0) {
		return false
	}

	return p.Lon >= -180 && p.Lon <= 180 && p.Lat >= -90 && p.Lat <= 90
}

// String renders p as "(lon, lat)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Lon, p.Lat)
}
