package tsp

import (
	"fmt"
	"strings"
)

// Defaults reproduce the reference annealing schedule.
const (
	DefaultInitialTemperature = 10000.0
	DefaultCoolingRate        = 0.9995
	DefaultSteps              = 1_000_000
	DefaultMinTemperature     = 1e-8

	// DefaultMatrixLimit bounds the precomputed distance table (2048² cells ≈ 32 MiB).
	DefaultMatrixLimit = 2048

	// DefaultEps is the strict improvement threshold used by the 2-opt polish.
	DefaultEps = 1e-12
)

// Acceptance selects the cost a proposal is measured against.
type Acceptance int

const (
	// CompareToBest measures Δ = newCost − bestCost (the reference behavior).
	CompareToBest Acceptance = iota
	// CompareToCurrent measures Δ = newCost − currentCost (textbook SA).
	CompareToCurrent
)

// CostStrategy selects how the cost of a proposal is evaluated.
type CostStrategy int

const (
	// IncrementalCost re-evaluates only the (at most four) edges touched by
	// the swap: O(1) per step.
	IncrementalCost CostStrategy = iota
	// FullCost recomputes the whole cycle: O(n) per step.
	FullCost
)

// InitialStrategy selects how the starting tour is built when none is given.
type InitialStrategy int

const (
	// RandomTour shuffles 0..n-1 with the annealer's generator.
	RandomTour InitialStrategy = iota
	// NearestTour starts at city 0 and repeatedly moves to the closest
	// unvisited city.
	NearestTour
	// IdentityTour visits cities in input order.
	IdentityTour
)

// AnnealOptions configures an annealing run. Start from DefaultAnnealOptions.
type AnnealOptions struct {
	// InitialTemperature is T0 (> 0).
	InitialTemperature float64
	// CoolingRate is the multiplicative decay applied every step, in (0,1].
	CoolingRate float64
	// Steps is the iteration budget (≥ 0).
	Steps int
	// MinTemperature stops the loop once T drops below it (≥ 0).
	MinTemperature float64
	// Seed for the generator; 0 selects a time-derived seed.
	Seed int64

	Acceptance Acceptance
	Cost       CostStrategy
	Initial    InitialStrategy

	// Restarts is the number of independent runs performed by Solve (0 ⇒ 1).
	Restarts int
	// Workers bounds concurrent restarts in Solve (0 ⇒ GOMAXPROCS).
	Workers int

	// Polish runs a first-improvement 2-opt pass on the best tour.
	Polish bool
	// PolishMaxIters caps accepted 2-opt moves (0 ⇒ until local optimum).
	PolishMaxIters int

	// MatrixLimit is the largest n for which distances are precomputed
	// (0 disables the table).
	MatrixLimit int

	// ProgressEvery is the observer period in steps (0 disables progress).
	ProgressEvery int
}

// DefaultAnnealOptions returns the reference configuration.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		Steps:              DefaultSteps,
		MinTemperature:     DefaultMinTemperature,
		Acceptance:         CompareToBest,
		Cost:               IncrementalCost,
		Initial:            RandomTour,
		Restarts:           1,
		MatrixLimit:        DefaultMatrixLimit,
	}
}

func (a Acceptance) String() string {
	switch a {
	case CompareToBest:
		return "best"
	case CompareToCurrent:
		return "current"
	default:
		return fmt.Sprintf("Acceptance(%d)", int(a))
	}
}

// ParseAcceptance maps "best" / "current" (case-insensitive) to an Acceptance.
func ParseAcceptance(s string) (Acceptance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best":
		return CompareToBest, nil
	case "current":
		return CompareToCurrent, nil
	default:
		return 0, fmt.Errorf("acceptance %q: %w", s, ErrUnsupportedStrategy)
	}
}

func (c CostStrategy) String() string {
	switch c {
	case IncrementalCost:
		return "incremental"
	case FullCost:
		return "full"
	default:
		return fmt.Sprintf("CostStrategy(%d)", int(c))
	}
}

// ParseCostStrategy maps "incremental" / "full" to a CostStrategy.
func ParseCostStrategy(s string) (CostStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "incremental":
		return IncrementalCost, nil
	case "full":
		return FullCost, nil
	default:
		return 0, fmt.Errorf("cost strategy %q: %w", s, ErrUnsupportedStrategy)
	}
}

func (s InitialStrategy) String() string {
	switch s {
	case RandomTour:
		return "random"
	case NearestTour:
		return "nearest"
	case IdentityTour:
		return "identity"
	default:
		return fmt.Sprintf("InitialStrategy(%d)", int(s))
	}
}

// ParseInitialStrategy maps "random" / "nearest" / "identity" to an InitialStrategy.
func ParseInitialStrategy(s string) (InitialStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return RandomTour, nil
	case "nearest":
		return NearestTour, nil
	case "identity":
		return IdentityTour, nil
	default:
		return 0, fmt.Errorf("initial tour %q: %w", s, ErrUnsupportedStrategy)
	}
}

// Validate reports the first configuration error in o, if any.
func (o AnnealOptions) Validate() error {
	return validateOptions(o)
}
