package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsp2opt/matrix"
	"github.com/katalvlaran/tsp2opt/tsp"
	"github.com/stretchr/testify/require"
)

func TestTourLength(t *testing.T) {
	m := mustMatrix(t, unitSquare())

	cases := []struct {
		name string
		tour tsp.Tour
		want float64
	}{
		{"perimeter", tsp.Tour{0, 1, 2, 3}, 4},
		{"crossing", tsp.Tour{0, 2, 1, 3}, 2 + 2*math.Sqrt2},
		{"rotation", tsp.Tour{2, 3, 0, 1}, 4},
		{"pair", tsp.Tour{0, 2}, 2 * math.Sqrt2},
		{"single", tsp.Tour{3}, 0},
		{"empty", tsp.Tour{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tsp.TourLength(tc.tour, m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, epsTiny)
		})
	}
}

func TestTourLength_Errors(t *testing.T) {
	m := mustMatrix(t, unitSquare())

	_, err := tsp.TourLength(tsp.Tour{0, 4}, m)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TourLength(tsp.Tour{7}, m)
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TourLength(tsp.Tour{0, 1}, nil)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.TourLength(tsp.Tour{0, 1}, rect)
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}
