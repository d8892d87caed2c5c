// Package tsp - nearest-neighbor tour construction.
//
// NearestNeighbor walks greedily from city 0, always moving to the closest
// unvisited city. The scan runs in ascending index order and only a strictly
// smaller distance replaces the current best, so ties resolve to the lowest
// index. The result is deterministic for a given matrix.
//
// Complexity: O(n²) time, O(n) extra space (the visited set).
package tsp

import "github.com/katalvlaran/tsp2opt/matrix"

// NearestNeighbor builds the initial tour for dist.
//
// Contracts:
//   - dist is square; nil ⇒ ErrNilMatrix, non-square ⇒ ErrNonSquare.
//   - n == 0 ⇒ ErrInvalidCityCount (there is no starting city).
//   - n == 1 ⇒ Tour{0}.
//   - The returned tour is a permutation of [0..n-1] starting at 0.
func NearestNeighbor(dist matrix.Matrix) (Tour, error) {
	w, n, err := loadWeights(dist)
	if err != nil {
		return nil, err
	}

	return nearestNeighbor(w, n)
}

// nearestNeighbor is the buffer-level construction shared with the solver,
// which has already prefetched the weights.
func nearestNeighbor(w []float64, n int) (Tour, error) {
	if n == 0 {
		return nil, ErrInvalidCityCount
	}

	tour := make(Tour, 0, n)
	visited := make([]bool, n)
	tour = append(tour, 0)
	visited[0] = true

	var (
		step  int     // number of cities appended so far beyond the start
		cur   = 0     // current city
		next  int     // best candidate in this step
		best  float64 // distance to next
		j     int     // candidate city
		row   []float64
		found bool
	)
	for step = 1; step < n; step++ {
		row = w[cur*n : (cur+1)*n]
		found = false
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			// First unvisited city seeds the search; afterwards only a
			// strictly smaller distance wins.
			if !found || row[j] < best {
				next, best, found = j, row[j], true
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour, nil
}
