// Package tsp - tour length evaluation.
//
// TourLength is shared by the solver (initial/final lengths) and by callers
// reporting a result. The 2-opt loop itself works on local deltas and never
// re-sums the whole tour per move.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tsp2opt/matrix"
)

// TourLength returns Σ dist[t[k]][t[(k+1) mod n]] over k ∈ [0, n).
//
// Contracts:
//   - An empty tour has length 0; a single-city tour has length 0.
//   - Every index must lie in [0, dist.Rows()); otherwise ErrInvalidTour.
//   - dist must be square; nil ⇒ ErrNilMatrix, non-square ⇒ ErrNonSquare.
//
// The tour need not be a full permutation: any closed walk over valid
// indices is measured.
func TourLength(tour Tour, dist matrix.Matrix) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if dist.Rows() != dist.Cols() {
		return 0, ErrNonSquare
	}
	var (
		n     = len(tour)
		order = dist.Rows()
		sum   float64
		k     int
		u, v  int
		w     float64
		err   error
	)
	if n <= 1 {
		if n == 1 && (tour[0] < 0 || tour[0] >= order) {
			return 0, ErrInvalidTour
		}
		return 0, nil
	}

	for k = 0; k < n; k++ {
		u = tour[k]
		v = tour[(k+1)%n] // wrap to close the cycle
		if u < 0 || u >= order || v < 0 || v >= order {
			return 0, ErrInvalidTour
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, fmt.Errorf("edge %d->%d: %w", u, v, err)
		}
		sum += w
	}

	return sum, nil
}
