// Package tsp - RNG utilities.
//
// Every annealer owns exactly one *rand.Rand, created here or injected by the
// caller, and threads it through the whole run (initial shuffle, position
// draws, acceptance draws). Nothing in the package touches the global source.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Solve derives an
// independent stream per restart with deriveSeed.
package tsp

import (
	"math/rand"
	"time"
)

// resolveSeed returns seed unchanged, or a time-derived seed when seed == 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}

	return s
}

// rngFromSeed returns a generator for seed; 0 ⇒ time-derived.
// The effective seed is returned alongside so runs can be replayed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) (*rand.Rand, int64) {
	s := resolveSeed(seed)

	return rand.New(rand.NewSource(s)), s
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer, so neighbouring stream ids give unrelated
// sequences.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var (
		n = len(a)
		i int
		j int
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomTour returns a uniformly random permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func randomTour(n int, rng *rand.Rand) []int {
	p := IdentityPermutation(n)
	shuffleIntsInPlace(p, rng)

	return p
}
