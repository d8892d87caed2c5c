// Package tsp - solver entry points.
//
// This file composes the pipeline:
//
//	dist ─► NearestNeighbor ─► TwoOpt ─► Result
//
// Solve keeps the minimal contract (matrix in, tour out); SolveWithOptions
// adds budgets and reports lengths and search statistics; SolvePoints starts
// from raw coordinates.
//
// Design principles:
//   - Deterministic: no randomness anywhere in construction or search order.
//   - Strict sentinels from types.go; context is added with %w.
//   - The matrix is validated and prefetched once and shared by both stages.
package tsp

import "github.com/katalvlaran/tsp2opt/matrix"

// Solve builds a nearest-neighbor tour over dist and refines it with 2-opt
// until no improving reversal remains.
//
// Errors: ErrInvalidCityCount for an empty matrix, plus the matrix
// validation sentinels (ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal,
// ErrNegativeWeight, ErrNonFinite, ErrAsymmetry).
func Solve(dist matrix.Matrix) (Tour, error) {
	res, err := SolveWithOptions(dist, DefaultOptions())
	if err != nil {
		return nil, err
	}

	return res.Tour, nil
}

// SolveWithOptions validates opts and dist, then runs the full pipeline.
//
// Contracts:
//   - Result.Tour is a permutation of [0..n-1] starting at city 0.
//   - Result.Length ≤ Result.InitialLength.
//   - Result.Converged reports whether the 2-opt fixed point was reached.
//
// Complexity: O(n²) validation and construction, O(passes·n²) search.
func SolveWithOptions(dist matrix.Matrix, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	w, n, err := validateDistMatrix(dist)
	if err != nil {
		return Result{}, err
	}

	tour, err := nearestNeighbor(w, n)
	if err != nil {
		return Result{}, err
	}
	initial, err := TourLength(tour, dist)
	if err != nil {
		return Result{}, err
	}

	stats := twoOpt(w, n, tour, opts)

	length, err := TourLength(tour, dist)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:          tour,
		Length:        length,
		InitialLength: initial,
		TwoOptStats:   stats,
	}, nil
}

// SolvePoints builds the distance matrix for points and solves it. The
// matrix is returned alongside the result so callers can print or reuse it.
func SolvePoints(points []Point, opts Options) (Result, *matrix.Dense, error) {
	dist, err := BuildDistanceMatrix(points)
	if err != nil {
		return Result{}, nil, err
	}
	res, err := SolveWithOptions(dist, opts)
	if err != nil {
		return Result{}, nil, err
	}

	return res, dist, nil
}
