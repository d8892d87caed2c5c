// Package tsp - tour utilities shared by the constructor and the optimizer.
//
// Provided helpers:
//   - ValidateTour: verify a permutation over {0..n-1}.
//   - reverseInPlace: two-pointer segment reversal (2-opt core).
//   - Tour.Clone: independent copy.
//   - Tour.String: compact printable form for logs and tests.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper; reversal allocates nothing.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour checks that tour is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int) error {
	if len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		// Out-of-range or duplicate element breaks the bijection.
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// reverseInPlace reverses the inclusive segment tour[i..j] by swapping from
// both ends toward the middle.
//
// Contracts:
//   - 0 ≤ i ≤ j < len(tour); the caller guarantees the range.
//
// Complexity: O(j-i) time, O(1) space.
func reverseInPlace(tour Tour, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}

// Clone returns an independent copy of the tour.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// String returns a compact representation, e.g. "[0 3 1 2]".
func (t Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
