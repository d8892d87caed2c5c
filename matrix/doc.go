// Package matrix provides the dense float64 matrix used to hold pairwise
// distances between cities.
//
// The package offers:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) that solvers
//     consume, so tests and callers may plug their own storage.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Validators for the structural properties a distance matrix must hold
//     (square shape, zero diagonal, symmetry within a tolerance).
//
// Zero-size matrices are legal: an empty city set maps to a 0×0 Dense.
// All errors are package sentinels; match them with errors.Is.
package matrix
