// Package tsp - validation utilities used by the solver entry points.
//
// This file contains small helpers that:
//  1. Validate Options (non-negative limits and tolerance).
//  2. Validate distance matrices (shape, diagonal, negativity, ∞/NaN, symmetry).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tsp2opt/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
// It is independent from Options.Eps (which governs "improvement" in 2-opt).
const symTol = 1e-12

// validateOptions checks Options without referencing matrices or tours.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxPasses < 0 {
		return fmt.Errorf("max passes %d: %w", opts.MaxPasses, ErrInvalidOptions)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("time limit %s: %w", opts.TimeLimit, ErrInvalidOptions)
	}
	// A negative epsilon would accept worsening moves and break termination.
	if opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) {
		return fmt.Errorf("eps %g: %w", opts.Eps, ErrInvalidOptions)
	}

	return nil
}

// validateWeights performs full validation over a prefetched n×n buffer:
//   - diagonal ≈ 0 (|w_ii| ≤ symTol),
//   - every entry finite and non-negative.
//
// Complexity: O(n²).
func validateWeights(w []float64, n int) error {
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = w[i*n+j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNonFinite)
			}
			if x < 0 {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNegativeWeight)
			}
			if i == j && x > symTol {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNonZeroDiagonal)
			}
		}
	}

	return nil
}

// validateDistMatrix checks dist as a whole and returns the prefetched
// weights. Symmetry is delegated to matrix.ValidateSymmetric and its
// sentinel translated to the tsp one.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) ([]float64, int, error) {
	w, n, err := loadWeights(dist)
	if err != nil {
		return nil, 0, err
	}
	if err = validateWeights(w, n); err != nil {
		return nil, 0, err
	}
	if err = matrix.ValidateSymmetric(dist, symTol); err != nil {
		if errors.Is(err, matrix.ErrAsymmetry) {
			return nil, 0, ErrAsymmetry
		}
		return nil, 0, err
	}

	return w, n, nil
}
