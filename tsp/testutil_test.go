// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tsp2opt/matrix"
	"github.com/katalvlaran/tsp2opt/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance for float comparisons of summed lengths.
	epsTiny = 1e-9

	// seedDet is the fixed seed for generated instances.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Minimal matrix implementation for tests. sliceMatrix goes through the
// generic matrix.Matrix path (no *matrix.Dense fast path).
// -----------------------------------------------------------------------------

type sliceMatrix struct{ a [][]float64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// unitSquare is the 4-city square (0,0),(0,1),(1,1),(1,0).
func unitSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
}

// randomPoints returns n points uniformly drawn from [0,100)² with a fixed seed.
func randomPoints(n int, seed int64) []tsp.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return pts
}

// circlePoints returns n points on a circle, listed in a scrambled order so
// the nearest-neighbor tour is not trivially the polygon.
func circlePoints(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	for k := 0; k < n; k++ {
		pos := (k * 7) % n // 7 is coprime with the sizes used in tests
		theta := 2 * math.Pi * float64(pos) / float64(n)
		pts[k] = tsp.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	return pts
}

// mustMatrix builds the distance matrix for pts or fails the test.
func mustMatrix(t testing.TB, pts []tsp.Point) *matrix.Dense {
	t.Helper()
	m, err := tsp.BuildDistanceMatrix(pts)
	require.NoError(t, err)

	return m
}

// toRows copies a matrix into [][]float64.
func toRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation asserts tour is a permutation of [0..n-1].
func requirePermutation(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.Len(t, tour, n)
	seen := make([]bool, n)
	for _, v := range tour {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "duplicate city %d in %v", v, tour)
		seen[v] = true
	}
}

// requireLocalOptimum asserts no pair (i,j), 1 ≤ i < j ≤ n−1, j−i ≠ 1,
// yields candidate < current.
func requireLocalOptimum(t testing.TB, tour tsp.Tour, m matrix.Matrix) {
	t.Helper()
	d := toRows(t, m)
	n := len(tour)
	for i := 1; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if j-i == 1 {
				continue
			}
			a, b, c, e := tour[i-1], tour[i], tour[j], tour[(j+1)%n]
			current := d[a][b] + d[c][e]
			candidate := d[a][c] + d[b][e]
			require.GreaterOrEqual(t, candidate, current,
				"improving move left at (i=%d, j=%d) in %v", i, j, tour)
		}
	}
}
