// Package geo models points on the Earth's surface and the great-circle
// distance between them.
//
// Points are (longitude, latitude) pairs in degrees. Distances are returned in
// kilometers on a sphere of radius EarthRadiusKm using the haversine formula:
//
//	h = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	d = 2R · atan2(√h, √(1−h))
//
// The package is pure: no I/O, no logging, no global state.
package geo
