// Package tsp - 2-opt local search engine.
//
// TwoOpt performs deterministic first-improvement 2-opt on a cyclic tour T
// of n cities. For positions 1 ≤ i < j ≤ n−1 with j−i ≠ 1:
//
//	current   = w(T[i−1], T[i]) + w(T[j], T[(j+1) mod n])
//	candidate = w(T[i−1], T[j]) + w(T[i], T[(j+1) mod n])
//
// When candidate < current − Eps the segment T[i..j] is reversed in place and
// the scan carries on from the same (i, j) cursors over the mutated tour.
// Passes repeat until one completes without a move.
//
// Design:
//   - i and j are plain integer cursors into one owned buffer; every read
//     goes through the current, post-reversal tour.
//   - Adjacent positions (j−i == 1) are skipped.
//   - Strict improvement only, so total length strictly decreases with every
//     move and the search halts.
//   - Soft budgets: MaxPasses and TimeLimit stop the search early without
//     error; the tour stays a valid permutation.
//
// Complexity:
//   - One pass: Θ(n²) candidate checks; each accepted move costs O(j−i).
//   - Passes: finite, usually few; not bounded by a constant in general.
package tsp

import (
	"time"

	"github.com/katalvlaran/tsp2opt/matrix"
)

// deadlineStride is how many candidate evaluations run between clock reads.
const deadlineStride = 1024

// TwoOpt improves tour in place until it is a 2-opt local optimum (or a
// budget in opts runs out) and reports what it did.
//
// Contracts:
//   - dist is square; tour is a permutation of [0..dist.Rows()-1].
//   - The tour's length never increases.
//   - Tours with fewer than 4 cities admit no valid move and are returned
//     untouched with Converged == true.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidTour, ErrInvalidOptions.
func TwoOpt(dist matrix.Matrix, tour Tour, opts Options) (TwoOptStats, error) {
	if err := validateOptions(opts); err != nil {
		return TwoOptStats{}, err
	}
	w, n, err := loadWeights(dist)
	if err != nil {
		return TwoOptStats{}, err
	}
	if err = ValidateTour(tour, n); err != nil {
		return TwoOptStats{}, err
	}

	return twoOpt(w, n, tour, opts), nil
}

// twoOpt is the buffer-level search; inputs are already validated.
func twoOpt(w []float64, n int, tour Tour, opts Options) TwoOptStats {
	var (
		stats       TwoOptStats
		useDeadline = opts.TimeLimit > 0
		deadline    time.Time
		evals       int // candidate evaluations since start, throttles clock reads
	)
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	var (
		improved           bool
		i, j               int
		a, b, c, d         int
		current, candidate float64
	)
	for {
		if opts.MaxPasses > 0 && stats.Passes >= opts.MaxPasses {
			return stats
		}
		stats.Passes++
		improved = false

		for i = 1; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				if j-i == 1 {
					continue
				}

				evals++
				if useDeadline && evals%deadlineStride == 0 && time.Now().After(deadline) {
					return stats
				}

				// a=T[i−1], b=T[i], c=T[j], d=T[j+1] (wrapping to T[0]).
				a = tour[i-1]
				b = tour[i]
				c = tour[j]
				d = tour[(j+1)%n]

				current = w[a*n+b] + w[c*n+d]
				candidate = w[a*n+c] + w[b*n+d]
				if candidate < current-opts.Eps {
					reverseInPlace(tour, i, j)
					stats.Moves++
					improved = true
				}
			}
		}

		if !improved {
			stats.Converged = true

			return stats
		}
	}
}
