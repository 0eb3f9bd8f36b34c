// Package tsp - simulated annealing engine.
//
// Per step:
//  1. draw positions i, j uniformly from [0,n); i == j proposes nothing;
//  2. swap tour[i], tour[j];
//  3. evaluate the new cost (incremental edge delta or full recomputation);
//  4. Δ = newCost − ref, where ref is the best cost (CompareToBest) or the
//     current cost (CompareToCurrent);
//  5. accept if Δ < 0 or U[0,1) < exp(−Δ/T), otherwise undo the swap;
//  6. an accepted move that beats the best cost becomes the new incumbent;
//  7. T *= alpha, on every step including skipped ones;
//  8. stop when the step budget is spent, T < Tmin, or ctx is done.
//
// The loop is single-threaded and allocation-free after setup: the incumbent
// buffer is reused and moves are undone in place.
package tsp

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/geotour/geo"
)

// Annealer owns one optimization run: the points, the options, the distance
// backend, and the single random generator threaded through the whole run.
// An Annealer is not safe for concurrent use.
type Annealer struct {
	points   []geo.Point
	opts     AnnealOptions
	dist     distFn
	rng      *rand.Rand
	seed     int64
	restart  int
	progress func(Progress)
}

// AnnealerOption customizes NewAnnealer.
type AnnealerOption func(*Annealer)

// WithRand injects the generator. The annealer takes ownership of r;
// opts.Seed is then ignored and Result.Seed is reported as 0.
func WithRand(r *rand.Rand) AnnealerOption {
	return func(a *Annealer) {
		if r != nil {
			a.rng = r
			a.seed = 0
		}
	}
}

// WithProgress installs an observer called every opts.ProgressEvery steps and
// once more when the loop ends.
func WithProgress(fn func(Progress)) AnnealerOption {
	return func(a *Annealer) { a.progress = fn }
}

// withDist shares a prebuilt distance backend (used by Solve across restarts).
func withDist(d distFn) AnnealerOption {
	return func(a *Annealer) { a.dist = d }
}

// withRestart tags progress and results with a restart index.
func withRestart(k int) AnnealerOption {
	return func(a *Annealer) { a.restart = k }
}

// NewAnnealer validates opts and points and prepares a run.
// points is retained and must not be modified while the annealer is in use.
//
// Errors: ErrInvalidTemperature, ErrInvalidCoolingRate, ErrInvalidSteps,
// ErrInvalidRestarts, ErrUnsupportedStrategy, ErrDimensionMismatch,
// ErrInvalidPoint.
//
// Complexity: O(n²) when a distance table is precomputed, O(n) otherwise.
func NewAnnealer(points []geo.Point, opts AnnealOptions, options ...AnnealerOption) (*Annealer, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	a := &Annealer{points: points, opts: opts}
	for _, o := range options {
		o(a)
	}
	if a.rng == nil {
		a.rng, a.seed = rngFromSeed(opts.Seed)
	}
	if a.dist == nil {
		d, err := newDistFn(points, opts.MatrixLimit)
		if err != nil {
			return nil, err
		}
		a.dist = d
	}

	return a, nil
}

// Optimize runs the annealing loop from initial (copied, never modified).
// A nil initial builds the starting tour with opts.Initial.
//
// Boundary cases: n == 0 returns an empty tour, n == 1 the single-city tour;
// both cost 0 and run no steps. Steps == 0 or InitialTemperature <
// MinTemperature return the initial tour and its cost.
//
// If ctx is cancelled the loop stops at the next step boundary and the best
// result so far is returned together with ctx.Err(). The 2-opt polish is
// skipped after a cancellation and stops between passes when ctx is
// cancelled while it runs.
//
// Errors: ErrInvalidTour if initial is not a permutation of 0..n-1.
//
// Complexity: O(steps) with IncrementalCost, O(steps·n) with FullCost.
func (a *Annealer) Optimize(ctx context.Context, initial []int) (Result, error) {
	n := len(a.points)
	tour, err := a.startTour(initial)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Seed:        a.seed,
		Restart:     a.restart,
		Temperature: a.opts.InitialTemperature,
	}
	if n <= 1 {
		res.Tour = tour
		res.Stop = StopTrivial
		return res, nil
	}

	var (
		d        = a.dist
		rng      = a.rng
		opts     = a.opts
		curCost  = cycleCost(tour, d)
		best     = CopyTour(tour)
		bestCost = curCost
		temp     = opts.InitialTemperature
		every    = opts.ProgressEvery
		stop     = StopSteps
		ctxErr   error
		step     int

		i, j    int
		mv      swapMove
		newCost float64
		ref     float64
	)
	res.InitialCost = round1e9(curCost)

	if temp < opts.MinTemperature {
		stop = StopTemperature
	}
	for stop == StopSteps && step < opts.Steps {
		i = rng.Intn(n)
		j = rng.Intn(n)
		if i != j {
			mv = swapMove{i: i, j: j}
			if opts.Cost == FullCost {
				mv.apply(tour)
				newCost = cycleCost(tour, d)
			} else {
				newCost = curCost + mv.applyWithDelta(tour, d)
			}

			ref = bestCost
			if opts.Acceptance == CompareToCurrent {
				ref = curCost
			}
			if accept(newCost-ref, temp, rng) {
				curCost = newCost
				res.Accepted++
				if newCost < bestCost {
					bestCost = newCost
					copy(best, tour)
					res.Improvements++
				}
			} else {
				mv.undo(tour)
			}
		}

		temp *= opts.CoolingRate
		step++

		if every > 0 && step%every == 0 && a.progress != nil {
			a.report(step, temp, curCost, bestCost, best)
		}
		if temp < opts.MinTemperature {
			stop = StopTemperature
			break
		}
		if ctxErr = ctx.Err(); ctxErr != nil {
			stop = StopCancelled
			break
		}
	}

	if opts.Polish && ctxErr == nil {
		bestCost += twoOptInPlace(ctx, best, d, DefaultEps, opts.PolishMaxIters)
		if ctxErr = ctx.Err(); ctxErr != nil {
			stop = StopCancelled
		}
	}
	if a.progress != nil {
		a.report(step, temp, curCost, bestCost, best)
	}

	res.Tour = best
	res.Cost = round1e9(cycleCost(best, d))
	res.Steps = step
	res.Temperature = temp
	res.Stop = stop

	return res, ctxErr
}

// startTour validates or builds the starting permutation.
func (a *Annealer) startTour(initial []int) ([]int, error) {
	n := len(a.points)
	if initial != nil {
		if err := ValidatePermutation(initial, n); err != nil {
			return nil, ErrInvalidTour
		}
		return CopyTour(initial), nil
	}

	switch a.opts.Initial {
	case NearestTour:
		return nearestTour(n, 0, a.dist), nil
	case IdentityTour:
		return IdentityPermutation(n), nil
	default:
		return randomTour(n, a.rng), nil
	}
}

func (a *Annealer) report(step int, temp, cur, best float64, tour []int) {
	a.progress(Progress{
		Restart:     a.restart,
		Step:        step,
		Temperature: temp,
		CurrentCost: cur,
		BestCost:    best,
		Best:        tour,
	})
}

// accept is the Metropolis criterion. Improvements always pass; otherwise the
// move passes with probability exp(−Δ/T). When T underflows or Δ/T overflows
// the probability collapses to 0 and the move is rejected.
func accept(delta, temp float64, rng *rand.Rand) bool {
	if delta < 0 {
		return true
	}
	if temp <= 0 || math.IsNaN(delta) {
		return false
	}
	p := math.Exp(-delta / temp)
	if math.IsNaN(p) {
		return false
	}

	return rng.Float64() < p
}

// Anneal runs a single annealing pass over points from a tour built by
// opts.Initial. It is NewAnnealer followed by Optimize(ctx, nil).
func Anneal(ctx context.Context, points []geo.Point, opts AnnealOptions) (Result, error) {
	a, err := NewAnnealer(points, opts)
	if err != nil {
		return Result{}, err
	}

	return a.Optimize(ctx, nil)
}
