package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Every message is prefixed with "tsp: "; match with errors.Is.
var (
	// ErrInvalidCityCount is returned when a tour is requested for zero cities.
	ErrInvalidCityCount = errors.New("tsp: at least one city is required")

	// ErrNilMatrix is returned when a nil distance matrix is supplied.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when dist[i][i] differs from 0.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal is not zero")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNonFinite is returned for a NaN or ±Inf distance.
	ErrNonFinite = errors.New("tsp: non-finite distance")

	// ErrAsymmetry is returned when dist[i][j] != dist[j][i] beyond tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrInvalidTour is returned when a tour is not a permutation of [0..n-1]
	// matching the matrix order.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the cities")

	// ErrNonFiniteCoordinate is returned when a point has a NaN or ±Inf coordinate.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrInvalidOptions is returned for negative limits or tolerances.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Point is a city location in the plane. It is identified only by its
// index in the input sequence.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Tour is an ordered sequence of city indices, a permutation of [0..n-1].
// It represents a cycle: Tour[n-1] connects back to Tour[0].
type Tour []int

// Options tunes the 2-opt search. The zero value runs to the 2-opt fixed
// point with strict improvement, matching DefaultOptions.
type Options struct {
	// MaxPasses caps the number of full (i,j) scans; 0 means unlimited.
	MaxPasses int

	// TimeLimit caps wall-clock time spent in 2-opt; 0 means unlimited.
	TimeLimit time.Duration

	// Eps is the improvement threshold: a move is applied only when
	// candidate < current − Eps. Must be ≥ 0.
	Eps float64
}

// DefaultOptions returns unbounded, strict-improvement options.
func DefaultOptions() Options {
	return Options{}
}

// TwoOptStats reports what a TwoOpt run did.
type TwoOptStats struct {
	// Passes is the number of full scans started (including the final,
	// non-improving one when the search converged).
	Passes int

	// Moves is the number of segment reversals applied.
	Moves int

	// Converged is true when the last pass found no improving move, i.e. the
	// tour is a 2-opt local optimum. False when MaxPasses or TimeLimit
	// stopped the search first.
	Converged bool
}

// Result holds the outcome of SolveWithOptions.
type Result struct {
	// Tour is the final tour, starting at city 0.
	Tour Tour

	// Length is the cyclic length of Tour.
	Length float64

	// InitialLength is the cyclic length of the nearest-neighbor tour.
	InitialLength float64

	TwoOptStats
}
