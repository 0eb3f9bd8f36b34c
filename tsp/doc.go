// Package tsp finds short closed tours over geographic points with simulated
// annealing.
//
// The model:
//
//   - Cities are geo.Point values indexed by position; a tour is a permutation
//     of 0..n-1 read cyclically (the last city connects back to the first).
//   - Cost is the sum of great-circle distances (geo.Haversine, km) along the
//     cycle. For n ≤ MatrixLimit the pairwise distances are precomputed once
//     into a matrix.Dense; larger inputs evaluate haversine on demand.
//   - Annealer proposes a swap of two positions per step, accepts it when it
//     beats the reference cost or with probability exp(−Δ/T), and cools T
//     geometrically. The best tour seen is kept and returned.
//
// Entry points:
//
//   - Anneal: one run with AnnealOptions (the usual case).
//   - NewAnnealer + Optimize: full control (injected *rand.Rand, progress hook,
//     caller-supplied initial tour).
//   - Solve: several independent restarts in parallel, best result wins.
//   - TotalDistance, TourCost, NearestNeighbor, TwoOpt: building blocks.
//
// Determinism: with a non-zero Seed (or an injected generator) every run is
// reproducible bit for bit. Seed==0 selects a time-derived seed, which is
// reported back in Result.Seed.
//
// The algorithms never log and never panic on user input; errors are the
// sentinels declared in types.go.
package tsp
