// Package tsp provides a heuristic Travelling Salesman solver for points in
// the Euclidean plane.
//
// The solver is a strict three-stage pipeline over a distance matrix
// (matrix.Matrix):
//
//   - BuildDistanceMatrix - pairwise Euclidean distances, Θ(n²).
//
//   - NearestNeighbor - greedy construction from city 0; ties go to the
//     lowest index.
//
//   - TwoOpt - first-improvement 2-opt with in-place segment reversal, run
//     until no single reversal shortens the tour.
//
// TourLength sums the cyclic length of a tour; Solve and SolveWithOptions
// compose the pipeline.
//
// A Tour is an open permutation of [0..n-1]; the closing edge from the last
// city back to the first is implicit.
//
// The result is a 2-opt local optimum, not necessarily a global optimum.
// Everything is deterministic: the same matrix always yields the same tour.
package tsp
