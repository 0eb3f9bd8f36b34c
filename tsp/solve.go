// Package tsp - multi-start dispatcher.
//
// Solve runs opts.Restarts independent annealers and keeps the best result.
// Restarts share one read-only distance backend; each owns its generator,
// derived from the run seed with deriveSeed so results do not depend on
// goroutine scheduling. Ties are broken by the lowest restart index.
package tsp

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geotour/geo"
)

// Solve validates inputs once and runs opts.Restarts annealing passes, at most
// opts.Workers at a time (0 ⇒ GOMAXPROCS). With Restarts ≤ 1 it is
// equivalent to Anneal with the same options.
//
// progress, when non-nil, is called from the restart goroutines, possibly
// concurrently; Progress.Restart identifies the caller.
//
// On cancellation the best result among finished or interrupted restarts is
// returned with the context error.
func Solve(ctx context.Context, points []geo.Point, opts AnnealOptions, progress func(Progress)) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validatePoints(points); err != nil {
		return Result{}, err
	}

	d, err := newDistFn(points, opts.MatrixLimit)
	if err != nil {
		return Result{}, err
	}
	shared := []AnnealerOption{withDist(d)}
	if progress != nil {
		shared = append(shared, WithProgress(progress))
	}

	restarts := opts.Restarts
	if restarts <= 1 {
		a, err := NewAnnealer(points, opts, shared...)
		if err != nil {
			return Result{}, err
		}
		return a.Optimize(ctx, nil)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	base := resolveSeed(opts.Seed)

	results := make([]Result, restarts)
	done := make([]bool, restarts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := 0; k < restarts; k++ {
		k := k // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			seed := deriveSeed(base, uint64(k))
			ropts := append([]AnnealerOption{
				WithRand(rand.New(rand.NewSource(seed))),
				withRestart(k),
			}, shared...)

			a, err := NewAnnealer(points, opts, ropts...)
			if err != nil {
				return err
			}
			res, err := a.Optimize(gctx, nil)
			res.Seed = seed
			results[k] = res
			done[k] = res.Tour != nil

			return err
		})
	}
	err = g.Wait()

	best := -1
	for k := 0; k < restarts; k++ {
		if !done[k] {
			continue
		}
		if best == -1 || results[k].Cost < results[best].Cost {
			best = k
		}
	}
	if best == -1 {
		if err == nil {
			err = ctx.Err()
		}
		return Result{}, err
	}

	return results[best], err
}
