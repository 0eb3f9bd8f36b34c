package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// Haversine returns the great-circle distance between a and b in kilometers.
//
// The intermediate term h is clamped to [0,1]: rounding can push it a few ULPs
// outside that range for (near-)antipodal or identical points, and √(1−h)
// would then be NaN.
//
// Complexity: O(1).
func Haversine(a, b Point) float64 {
	var (
		lon1 = a.Lon * degToRad
		lat1 = a.Lat * degToRad
		lon2 = b.Lon * degToRad
		lat2 = b.Lat * degToRad
	)
	dlon := lon2 - lon1
	dlat := lat2 - lat1

	sdlat := math.Sin(dlat / 2)
	sdlon := math.Sin(dlon / 2)
	h := sdlat*sdlat + math.Cos(lat1)*math.Cos(lat2)*sdlon*sdlon
	h = clampUnit(h)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// clampUnit clamps x into [0,1].
func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
