// Package tsp - Euclidean distance matrix construction.
//
// BuildDistanceMatrix is the first pipeline stage. It evaluates each
// unordered pair once and mirrors the value, so symmetry holds bit-for-bit
// and the diagonal stays exactly zero.
//
// Complexity: Θ(n²) time and memory.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsp2opt/matrix"
)

// BuildDistanceMatrix returns the n×n matrix M with M[i][j] equal to the
// straight-line distance between points[i] and points[j].
//
// Contracts:
//   - n ≥ 0; an empty input yields a 0×0 matrix.
//   - M[i][i] == 0 and M[i][j] == M[j][i] exactly.
//   - Returns ErrNonFiniteCoordinate (wrapped with the point index) when a
//     coordinate is NaN or ±Inf; finite input never fails.
func BuildDistanceMatrix(points []Point) (*matrix.Dense, error) {
	var (
		n   = len(points)
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return nil, fmt.Errorf("point %d: %w", i, ErrNonFiniteCoordinate)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle, mirrored below
			d = Distance(points[i], points[j])
			if math.IsInf(d, 0) {
				// Finite coordinates far apart can still overflow.
				return nil, fmt.Errorf("points %d and %d: %w", i, j, ErrNonFinite)
			}
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Distance returns the Euclidean distance between a and b as
// sqrt(dx² + dy²). Equal squared sums give bit-identical distances, which
// keeps nearest-neighbor ties exact.
func Distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
