package tsp

import (
	"fmt"

	"github.com/katalvlaran/tsp2opt/matrix"
)

// loadWeights prefetches a square matrix into a dense row-major buffer
// w[i*n+j] so hot loops avoid interface indirection and error plumbing.
// *matrix.Dense is copied in one shot; other implementations go through At.
//
// Complexity: O(n²) time and space.
func loadWeights(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil {
		return nil, 0, ErrNilMatrix
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return nil, 0, ErrNonSquare
	}
	if d, ok := dist.(*matrix.Dense); ok {
		return d.Data(), n, nil
	}

	w := make([]float64, n*n)
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return nil, 0, fmt.Errorf("load weights: %w", err)
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}
