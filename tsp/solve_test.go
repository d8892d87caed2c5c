package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsp2opt/matrix"
	"github.com/katalvlaran/tsp2opt/tsp"
	"github.com/stretchr/testify/require"
)

func TestSolve_UnitSquare(t *testing.T) {
	m := mustMatrix(t, unitSquare())

	tour, err := tsp.Solve(m)
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 1, 2, 3}, tour)

	length, err := tsp.TourLength(tour, m)
	require.NoError(t, err)
	require.InDelta(t, 4.0, length, epsTiny)
	requireLocalOptimum(t, tour, m)
}

func TestSolve_TriangleKeepsNearestNeighborTour(t *testing.T) {
	m := mustMatrix(t, []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}})

	res, err := tsp.SolveWithOptions(m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 1, 2}, res.Tour)
	require.Zero(t, res.Moves)
	require.InDelta(t, 12.0, res.Length, epsTiny)
	require.Equal(t, res.InitialLength, res.Length)
}

func TestSolve_ImprovesNearestNeighborTour(t *testing.T) {
	pts := []tsp.Point{
		{X: 2, Y: 1}, {X: 9, Y: 9}, {X: 3, Y: 5}, {X: 1, Y: 8},
		{X: 1, Y: 9}, {X: 0, Y: 9}, {X: 3, Y: 7}, {X: 8, Y: 6},
	}
	m := mustMatrix(t, pts)

	nn, err := tsp.NearestNeighbor(m)
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 2, 6, 3, 4, 5, 7, 1}, nn)

	res, err := tsp.SolveWithOptions(m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 2, 1, 7, 6, 3, 4, 5}, res.Tour)
	require.Equal(t, 2, res.Moves)
	require.Equal(t, 2, res.Passes)
	require.True(t, res.Converged)
	require.InDelta(t, 32.695601, res.InitialLength, 1e-6)
	require.InDelta(t, 32.077785, res.Length, 1e-6)
	requireLocalOptimum(t, res.Tour, m)
}

func TestSolve_Degenerate(t *testing.T) {
	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	_, err = tsp.Solve(empty)
	require.ErrorIs(t, err, tsp.ErrInvalidCityCount)

	res, err := tsp.SolveWithOptions(mustMatrix(t, []tsp.Point{{X: 1, Y: 2}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0}, res.Tour)
	require.Zero(t, res.Length)

	res, err = tsp.SolveWithOptions(mustMatrix(t, []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, tsp.Tour{0, 1}, res.Tour)
	require.InDelta(t, 10.0, res.Length, epsTiny)
}

func TestSolve_RejectsInvalidMatrices(t *testing.T) {
	cases := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, tsp.ErrNilMatrix},
		{"non-square", sliceMatrix{a: [][]float64{{0, 1}}}, tsp.ErrNonSquare},
		{"diagonal", sliceMatrix{a: [][]float64{{1, 1}, {1, 0}}}, tsp.ErrNonZeroDiagonal},
		{"negative", sliceMatrix{a: [][]float64{{0, -1}, {-1, 0}}}, tsp.ErrNegativeWeight},
		{"nan", sliceMatrix{a: [][]float64{{0, math.NaN()}, {1, 0}}}, tsp.ErrNonFinite},
		{"inf", sliceMatrix{a: [][]float64{{0, math.Inf(1)}, {1, 0}}}, tsp.ErrNonFinite},
		{"asymmetric", sliceMatrix{a: [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 4, 0}}}, tsp.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.Solve(tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_PropertiesOnRandomInstances(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 9, 20, 50, 120} {
		pts := randomPoints(n, seedDet*int64(n))
		res, m, err := tsp.SolvePoints(pts, tsp.DefaultOptions())
		require.NoError(t, err)

		requirePermutation(t, res.Tour, n)
		require.Equal(t, 0, res.Tour[0])
		require.True(t, res.Converged)
		require.LessOrEqual(t, res.Length, res.InitialLength+epsTiny, "n=%d", n)
		requireLocalOptimum(t, res.Tour, m)

		// Determinism: a second run over the same matrix yields the same tour.
		again, err := tsp.Solve(m)
		require.NoError(t, err)
		require.Equal(t, res.Tour, again, "n=%d", n)
	}
}

func TestSolvePoints_PropagatesCoordinateErrors(t *testing.T) {
	_, _, err := tsp.SolvePoints([]tsp.Point{{X: math.NaN()}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)

	_, _, err = tsp.SolvePoints(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidCityCount)

	_, _, err = tsp.SolvePoints(unitSquare(), tsp.Options{MaxPasses: -3})
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)
}
