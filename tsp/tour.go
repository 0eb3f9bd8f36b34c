// Package tsp - tour utilities.
//
// Tours are open permutations: len(tour) == n and the successor of tour[n-1]
// is tour[0]. The helpers below operate on structure only (no distances).
//   - IdentityPermutation: 0..n-1 in order.
//   - CopyTour: independent copy.
//   - RotateToStart: cyclic shift so a given city comes first.
//   - CanonicalCycle: rotation + orientation normal form.
//   - EqualCycles: equality of undirected, unrooted cycles.
//   - reverseRange: in-place segment reversal (2-opt core).
//   - DebugString: compact printable form.
package tsp

import (
	"slices"
	"strconv"
	"strings"
)

// IdentityPermutation returns [0, 1, …, n-1]. n ≤ 0 yields an empty slice.
//
// Complexity: O(n).
func IdentityPermutation(n int) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// CopyTour returns an independent copy of tour (nil stays nil).
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// RotateToStart returns a copy of tour shifted so that out[0] == start.
// ErrStartOutOfRange if start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	pivot := slices.Index(tour, start)
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	var (
		n   = len(tour)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// CanonicalCycle returns the normal form of a cyclic tour: rotated so the
// smallest city id comes first, then oriented so its right neighbour is not
// larger than its left one. Two tours describe the same undirected cycle iff
// their canonical forms are equal.
//
// Complexity: O(n) time, O(n) space.
func CanonicalCycle(tour []int) []int {
	n := len(tour)
	if n == 0 {
		return []int{}
	}
	out, _ := RotateToStart(tour, slices.Min(tour))
	if n > 2 && out[1] > out[n-1] {
		reverseRange(out, 1, n-1)
	}

	return out
}

// EqualCycles reports whether a and b visit the same cities in the same cyclic
// order, ignoring rotation and direction.
//
// Complexity: O(n).
func EqualCycles(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	return slices.Equal(CanonicalCycle(a), CanonicalCycle(b))
}

// reverseRange reverses tour[i..k] (inclusive) in place. Requires i ≤ k.
//
// Complexity: O(k-i).
func reverseRange(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// DebugString renders a tour as "[0 3 1 2 | 0]"; the bar marks the closing edge.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[0]))
	sb.WriteByte(']')

	return sb.String()
}
