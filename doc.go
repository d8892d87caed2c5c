// Package tsp2opt solves the symmetric Euclidean travelling-salesman
// problem heuristically: a nearest-neighbor tour is built from city 0 and
// then refined with first-improvement 2-opt until no improving move remains.
//
// The module is organized as:
//
//	matrix/            - dense float64 matrix + shape/symmetry validators
//	tsp/               - distance matrix, NearestNeighbor, TwoOpt, TourLength, Solve
//	internal/cities/   - text/YAML/JSON city input and the interactive prompt
//	internal/report/   - console and JSON rendering of matrices and tours
//	internal/store/    - SQLite archive of solved runs
//	internal/config/   - YAML configuration
//	internal/logging/  - slog setup for the command
//	cmd/tsp2opt/       - the cobra command (solve, batch, history, show, delete)
//
// Quick example, a unit square:
//
//	(0,1)───(1,1)
//	  │       │
//	(0,0)───(1,0)
//
//	res, _, _ := tsp.SolvePoints(points, tsp.DefaultOptions())
//	// res.Tour == [0 1 2 3], res.Length == 4
//
//	go install github.com/katalvlaran/tsp2opt/cmd/tsp2opt@latest
package tsp2opt
