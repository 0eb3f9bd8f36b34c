package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/internal/cache"
	"github.com/katalvlaran/geotour/internal/cityfile"
	"github.com/katalvlaran/geotour/internal/config"
	"github.com/katalvlaran/geotour/internal/logger"
	"github.com/katalvlaran/geotour/tsp"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const cacheTimeout = 2 * time.Second

var errUsage = errors.New("usage")

type app struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	// openCache connects the result cache named by a cache URL.
	openCache func(url string, ttl time.Duration) (cache.Store, error)
}

func newApp(stdout, stderr io.Writer, getenv func(string) string) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		getenv: getenv,
		openCache: func(url string, ttl time.Duration) (cache.Store, error) {
			return cache.OpenRedis(url, ttl)
		},
	}
}

type cliFlags struct {
	configPath string
	input      string
	out        string
	seed       int64
	steps      int
	restarts   int
	logLevel   string
	cacheURL   string
	acceptance string
	polish     bool
	timeLimit  time.Duration
}

func (a *app) parseFlags(args []string) (*cliFlags, map[string]bool, error) {
	var f cliFlags

	fs := flag.NewFlagSet("salesman", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: salesman [flags] <input-file>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.out, "out", config.DefaultOutput, "output route file (.gz/.zst compress)")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = time-derived)")
	fs.IntVar(&f.steps, "steps", tsp.DefaultSteps, "annealing step budget")
	fs.IntVar(&f.restarts, "restarts", 1, "independent annealing runs")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&f.cacheURL, "cache", "", "redis URL of the result cache (seeded runs only)")
	fs.StringVar(&f.acceptance, "acceptance", "best", "acceptance reference (best, current)")
	fs.BoolVar(&f.polish, "polish", false, "2-opt polish of the best tour")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "wall-clock limit (0 = none)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "salesman: expected exactly one input file")
		fs.Usage()
		return nil, nil, errUsage
	}
	f.input = fs.Arg(0)

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return &f, set, nil
}

// loadConfig layers defaults, the config file, the environment and finally
// the flags given on the command line.
func (a *app) loadConfig(f *cliFlags, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(a.getenv); err != nil {
		return nil, err
	}

	if set["out"] {
		cfg.Output = f.out
	}
	if set["seed"] {
		cfg.Anneal.Seed = f.seed
	}
	if set["steps"] {
		cfg.Anneal.Steps = f.steps
	}
	if set["restarts"] {
		cfg.Anneal.Restarts = f.restarts
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	if set["cache"] {
		cfg.CacheURL = f.cacheURL
	}
	if set["acceptance"] {
		cfg.Anneal.Acceptance = f.acceptance
	}
	if set["polish"] {
		cfg.Anneal.Polish = f.polish
	}
	if set["time-limit"] {
		cfg.TimeLimit = f.timeLimit
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func (a *app) run(ctx context.Context, args []string) int {
	// The flag set reports its own errors.
	f, set, err := a.parseFlags(args)
	if err != nil {
		return exitUsage
	}

	cfg, err := a.loadConfig(f, set)
	if err != nil {
		fmt.Fprintln(a.stderr, "salesman:", err)
		return exitFail
	}
	log := logger.NewFormat(cfg.LogFormat, cfg.LogLevel, a.stderr)

	cities, skipped, err := cityfile.Read(f.input)
	if err != nil {
		log.Error("failed to read cities", "path", f.input, "error", err)
		return exitFail
	}
	if skipped > 0 {
		log.Warn("skipped malformed lines", "path", f.input, "count", skipped)
	}
	for i, c := range cities {
		if !c.Valid() {
			log.Warn("coordinate out of range", "index", i, "point", c.Point.String(), "name", c.Name)
		}
	}
	log.Info("read cities", "path", f.input, "count", len(cities))

	opts, err := cfg.AnnealOptions()
	if err != nil {
		log.Error("invalid anneal options", "error", err)
		return exitFail
	}
	points := cityfile.Points(cities)

	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	store, key := a.cacheFor(cfg, points, opts, log)
	if store != nil {
		defer store.Close()
	}

	res, hit := a.lookup(ctx, store, key, len(points), log)
	if !hit {
		start := time.Now()
		res, err = tsp.Solve(ctx, points, opts, progressLogger(cfg, log))
		switch {
		case err == nil:
			a.save(ctx, store, key, res, log)
		case errors.Is(err, context.DeadlineExceeded) && res.Tour != nil:
			log.Warn("time limit reached, keeping best tour so far", "limit", cfg.TimeLimit)
		case errors.Is(err, context.Canceled) && res.Tour != nil:
			log.Warn("interrupted, keeping best tour so far")
		default:
			log.Error("optimization failed", "error", err)
			return exitFail
		}
		log.Info("optimization finished",
			"seed", res.Seed,
			"restart", res.Restart,
			"steps", res.Steps,
			"accepted", res.Accepted,
			"improvements", res.Improvements,
			"temperature", res.Temperature,
			"stop", res.Stop.String(),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}

	fmt.Fprintf(a.stdout, "Initial distance: %.2f km\n", res.InitialCost)
	fmt.Fprintf(a.stdout, "Optimized distance: %.2f km\n", res.Cost)

	if err = cityfile.Write(cfg.Output, cityfile.Reorder(cities, res.Tour)); err != nil {
		log.Error("failed to write route", "path", cfg.Output, "error", err)
		return exitFail
	}
	log.Info("route written", "path", cfg.Output)

	if errors.Is(ctx.Err(), context.Canceled) {
		return exitFail
	}

	return exitOK
}

// progressLogger returns a tsp observer that logs at most once per
// cfg.ProgressInterval, or nil when progress logging is off.
func progressLogger(cfg *config.Config, log *slog.Logger) func(tsp.Progress) {
	if cfg.ProgressInterval <= 0 || cfg.Anneal.ProgressEvery <= 0 {
		return nil
	}
	every := rate.Sometimes{First: 1, Interval: cfg.ProgressInterval}

	return func(p tsp.Progress) {
		every.Do(func() {
			log.Info("annealing",
				"restart", p.Restart,
				"step", p.Step,
				"temperature", p.Temperature,
				"current_km", p.CurrentCost,
				"best_km", p.BestCost,
			)
		})
	}
}

func (a *app) cacheFor(cfg *config.Config, points []geo.Point, opts tsp.AnnealOptions, log *slog.Logger) (cache.Store, string) {
	if cfg.CacheURL == "" {
		return nil, ""
	}
	key, ok := cache.Key(points, opts)
	if !ok {
		log.Debug("cache skipped for unseeded run")
		return nil, ""
	}
	store, err := a.openCache(cfg.CacheURL, cfg.CacheTTL)
	if err != nil {
		log.Warn("cache disabled", "error", err)
		return nil, ""
	}

	return store, key
}

func (a *app) lookup(ctx context.Context, store cache.Store, key string, n int, log *slog.Logger) (tsp.Result, bool) {
	if store == nil {
		return tsp.Result{}, false
	}
	cctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	e, err := store.Get(cctx, key)
	if errors.Is(err, cache.ErrMiss) {
		log.Debug("cache miss", "key", key)
		return tsp.Result{}, false
	}
	if err != nil {
		log.Warn("cache lookup failed", "error", err)
		return tsp.Result{}, false
	}
	res, err := e.Result(n)
	if err != nil {
		log.Warn("ignoring stale cache entry", "key", key, "error", err)
		return tsp.Result{}, false
	}
	log.Info("cache hit", "key", key)

	return res, true
}

func (a *app) save(ctx context.Context, store cache.Store, key string, res tsp.Result, log *slog.Logger) {
	if store == nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := store.Put(cctx, key, cache.FromResult(res)); err != nil {
		log.Warn("cache store failed", "error", err)
	}
}
