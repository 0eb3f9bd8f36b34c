// Package cache memoizes seeded optimization results.
//
// A seeded run is a pure function of its points and options, so its result
// can be stored under a hash of both and replayed. Unseeded runs are never
// cached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"sync"

	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/tsp"
)

// KeyPrefix namespaces every stored entry.
const KeyPrefix = "geotour:route:"

// ErrMiss is returned by Get when no entry is stored under the key.
var ErrMiss = errors.New("cache: miss")

// Entry is the cached part of a tsp.Result.
type Entry struct {
	Tour         []int   `json:"tour"`
	Cost         float64 `json:"cost"`
	InitialCost  float64 `json:"initial_cost"`
	Steps        int     `json:"steps"`
	Accepted     int     `json:"accepted"`
	Improvements int     `json:"improvements"`
	Temperature  float64 `json:"temperature"`
	Seed         int64   `json:"seed"`
	Restart      int     `json:"restart"`
	Stop         string  `json:"stop"`
}

// Store is a key/value backend for entries.
type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	Put(ctx context.Context, key string, e Entry) error
	Close() error
}

// Key derives the cache key of a run. ok is false for unseeded runs.
// Options that do not change the result (Workers, MatrixLimit,
// ProgressEvery) are not part of the key.
func Key(points []geo.Point, opts tsp.AnnealOptions) (key string, ok bool) {
	if opts.Seed == 0 {
		return "", false
	}

	h := sha256.New()
	var buf [8]byte
	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putU(uint64(len(points)))
	for _, p := range points {
		putF(p.Lon)
		putF(p.Lat)
	}
	putF(opts.InitialTemperature)
	putF(opts.CoolingRate)
	putU(uint64(opts.Steps))
	putF(opts.MinTemperature)
	putU(uint64(opts.Seed))
	putU(uint64(opts.Acceptance))
	putU(uint64(opts.Cost))
	putU(uint64(opts.Initial))
	putU(uint64(opts.Restarts))
	if opts.Polish {
		putU(1)
	} else {
		putU(0)
	}
	putU(uint64(opts.PolishMaxIters))

	return KeyPrefix + hex.EncodeToString(h.Sum(nil)), true
}

// FromResult captures res.
func FromResult(res tsp.Result) Entry {
	return Entry{
		Tour:         tsp.CopyTour(res.Tour),
		Cost:         res.Cost,
		InitialCost:  res.InitialCost,
		Steps:        res.Steps,
		Accepted:     res.Accepted,
		Improvements: res.Improvements,
		Temperature:  res.Temperature,
		Seed:         res.Seed,
		Restart:      res.Restart,
		Stop:         res.Stop.String(),
	}
}

// Result rebuilds a tsp.Result for n points. It fails with
// tsp.ErrInvalidTour when the stored tour does not fit.
func (e Entry) Result(n int) (tsp.Result, error) {
	if err := tsp.ValidatePermutation(e.Tour, n); err != nil {
		return tsp.Result{}, tsp.ErrInvalidTour
	}
	stop, err := tsp.ParseStopReason(e.Stop)
	if err != nil {
		return tsp.Result{}, err
	}

	return tsp.Result{
		Tour:         tsp.CopyTour(e.Tour),
		Cost:         e.Cost,
		InitialCost:  e.InitialCost,
		Steps:        e.Steps,
		Accepted:     e.Accepted,
		Improvements: e.Improvements,
		Temperature:  e.Temperature,
		Seed:         e.Seed,
		Restart:      e.Restart,
		Stop:         stop,
	}, nil
}

// Memory is an in-process Store.
type Memory struct {
	mu sync.Mutex
	m  map[string]Entry
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]Entry)}
}

func (s *Memory) Get(_ context.Context, key string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[key]
	if !ok {
		return Entry{}, ErrMiss
	}
	e.Tour = tsp.CopyTour(e.Tour)

	return e, nil
}

func (s *Memory) Put(_ context.Context, key string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Tour = tsp.CopyTour(e.Tour)
	s.m[key] = e

	return nil
}

func (s *Memory) Close() error { return nil }
