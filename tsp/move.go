package tsp

// swapMove exchanges the cities at positions i and j of a tour.
// A swap is its own inverse, so undo re-applies it; no tour is ever cloned to
// propose a neighbour.
type swapMove struct {
	i, j int
}

func (m swapMove) apply(tour []int) { tour[m.i], tour[m.j] = tour[m.j], tour[m.i] }

func (m swapMove) undo(tour []int) { m.apply(tour) }

// touchedEdges lists the start positions of the cycle edges whose endpoints
// change when the move is applied. Edge k joins positions k and (k+1) mod n.
// At most four edges are affected; duplicates (adjacent positions, n ≤ 3)
// are collapsed so no edge is counted twice.
//
// Complexity: O(1).
func (m swapMove) touchedEdges(n int, buf *[4]int) []int {
	cand := [4]int{
		(m.i - 1 + n) % n, m.i,
		(m.j - 1 + n) % n, m.j,
	}
	out := buf[:0]
	for _, k := range cand {
		dup := false
		for _, seen := range out {
			if seen == k {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, k)
		}
	}

	return out
}

// edgeSum adds up the edges starting at the given positions.
func edgeSum(tour []int, starts []int, d distFn) float64 {
	var (
		n   = len(tour)
		sum float64
	)
	for _, k := range starts {
		sum += d(tour[k], tour[(k+1)%n])
	}

	return sum
}

// applyWithDelta applies m to tour and returns the resulting change in cycle
// cost, evaluating only the touched edges.
//
// Complexity: O(1).
func (m swapMove) applyWithDelta(tour []int, d distFn) float64 {
	var buf [4]int
	starts := m.touchedEdges(len(tour), &buf)
	before := edgeSum(tour, starts, d)
	m.apply(tour)

	return edgeSum(tour, starts, d) - before
}
