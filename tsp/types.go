package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geotour/geo"
)

// Sentinel errors. Configuration problems are reported before any loop runs.
var (
	// ErrDimensionMismatch signals inconsistent sizes or out-of-range indices.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidTour is returned when a caller-supplied tour is not a
	// permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the points")

	// ErrInvalidPoint is returned when a coordinate is NaN or ±Inf.
	ErrInvalidPoint = errors.New("tsp: non-finite coordinate")

	// ErrInvalidTemperature covers a non-positive or non-finite initial
	// temperature and a negative or non-finite minimum temperature.
	ErrInvalidTemperature = errors.New("tsp: invalid temperature")

	// ErrInvalidCoolingRate is returned when the cooling rate is outside (0,1].
	ErrInvalidCoolingRate = errors.New("tsp: cooling rate must be in (0,1]")

	// ErrInvalidSteps is returned for a negative step budget or progress period.
	ErrInvalidSteps = errors.New("tsp: step budget must be non-negative")

	// ErrInvalidRestarts is returned for negative Restarts or Workers.
	ErrInvalidRestarts = errors.New("tsp: restarts and workers must be non-negative")

	// ErrUnsupportedStrategy is returned for unknown enum values or names.
	ErrUnsupportedStrategy = errors.New("tsp: unsupported strategy")

	// ErrStartOutOfRange indicates a start city outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// StopReason tells why the annealing loop ended.
type StopReason int

const (
	// StopSteps means the step budget was exhausted.
	StopSteps StopReason = iota
	// StopTemperature means T fell below MinTemperature.
	StopTemperature
	// StopCancelled means the context was cancelled or timed out.
	StopCancelled
	// StopTrivial means n ≤ 1 and there was nothing to optimize.
	StopTrivial
)

func (r StopReason) String() string {
	switch r {
	case StopSteps:
		return "steps"
	case StopTemperature:
		return "temperature"
	case StopCancelled:
		return "cancelled"
	case StopTrivial:
		return "trivial"
	default:
		return "unknown"
	}
}

// ParseStopReason is the inverse of StopReason.String.
func ParseStopReason(s string) (StopReason, error) {
	for r := StopSteps; r <= StopTrivial; r++ {
		if r.String() == s {
			return r, nil
		}
	}

	return 0, fmt.Errorf("stop reason %q: %w", s, ErrUnsupportedStrategy)
}

// Result holds the outcome of an annealing run.
type Result struct {
	// Tour is the best permutation found, open form (len == n, no closing city).
	Tour []int

	// Cost is the cyclic great-circle length of Tour in km, rounded to 1e-9.
	Cost float64

	// InitialCost is the cost of the starting tour, rounded to 1e-9.
	InitialCost float64

	// Steps is the number of iterations executed (skipped i==j draws included).
	Steps int

	// Accepted counts accepted proposals; Improvements counts new incumbents.
	Accepted     int
	Improvements int

	// Temperature is the temperature when the loop ended.
	Temperature float64

	// Seed is the seed the generator was created from (0 if injected).
	Seed int64

	// Restart is the index of the restart that produced this result (Solve only).
	Restart int

	Stop StopReason
}

// Route expresses the tour as coordinates in visiting order.
// Indices outside points are skipped.
func (r Result) Route(points []geo.Point) []geo.Point {
	out := make([]geo.Point, 0, len(r.Tour))
	for _, v := range r.Tour {
		if v < 0 || v >= len(points) {
			continue
		}
		out = append(out, points[v])
	}

	return out
}

// Progress is a snapshot handed to the progress observer.
//
// Best aliases the annealer's incumbent buffer: read it during the callback,
// copy it to retain it, never modify it.
type Progress struct {
	Restart     int
	Step        int
	Temperature float64
	CurrentCost float64
	BestCost    float64
	Best        []int
}
