// Package geotour finds short closed tours through geographic points.
//
// A tour visits every city once and returns to its start. Distances are
// great-circle (haversine) kilometres on a sphere of radius 6371 km, and the
// tour is improved by simulated annealing: random position swaps accepted by
// the Metropolis criterion under a geometrically cooling temperature.
//
// Packages:
//
//	geo/               Point and the haversine distance
//	matrix/            dense float64 matrices and precomputed distance tables
//	tsp/               tour cost, annealer, multi-start Solve, nearest
//	                   neighbour seed and 2-opt polish
//	internal/config    YAML config, .env and GEOTOUR_* overrides
//	internal/cityfile  coordinate file reader/writer (.gz, .zst, .lz4 aware)
//	internal/cache     Redis cache of seeded results
//	internal/logger    slog constructors for the CLI
//	cmd/salesman       the command line tool
//
// Quick start:
//
//	pts := []geo.Point{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1}, {Lon: 1, Lat: 0}}
//	opts := tsp.DefaultAnnealOptions()
//	opts.Seed = 42
//	res, err := tsp.Anneal(ctx, pts, opts)
//	// res.Tour is a permutation of 0..3, res.Cost its cyclic length in km.
//
// Command line:
//
//	go install github.com/katalvlaran/geotour/cmd/salesman@latest
//	salesman -seed 42 -out route.dat cities.dat
package geotour
