// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for the structural checks a distance
//     matrix must pass before a solver consumes it.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateZeroDiagonal ensures |A[i,i]| ≤ tol for every i.
// Assumes m is square (call ValidateSquare first).
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if m == nil {
		return validatorErrorf("ValidateZeroDiagonal", ErrNilMatrix)
	}
	var (
		i   int
		aii float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if aii, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if math.IsNaN(aii) || math.Abs(aii) > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures |A[i,j] − A[j,i]| ≤ tol for all i<j.
// A NaN or ±Inf tolerance is rejected with ErrNaNInf; a negative tolerance is
// treated as its absolute value.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // strict upper triangle
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
