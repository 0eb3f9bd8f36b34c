// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major float64 matrix used to hold
// precomputed pairwise distances.
//
// What & Why:
//
//	Annealing evaluates the same city-to-city distances millions of times.
//	For inputs small enough to fit in memory (n² float64 cells) the tsp package
//	precomputes every great-circle distance once into a Dense and reads it back
//	through the Matrix interface or, on hot paths, through Dense.Data.
//
// Safety:
//
//	Public indexers (At/Set) return sentinel errors instead of panicking.
//	Set rejects NaN and ±Inf so a distance table can never hold them.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
//   - FromPoints: O(n²) distance evaluations (upper triangle mirrored).
package matrix
