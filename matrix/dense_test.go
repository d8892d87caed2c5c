package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsp2opt/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	empty, err := matrix.NewDense(0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneAndDataAreIndependent(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 9))
	data := m.Data()
	data[1] = 7

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = m.At(0, 1)
	require.Equal(t, 2.0, v)
	require.Equal(t, []float64{1, 7, 3, 4}, data)
}

func TestNewFromRows(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0, 1.5}, {1.5, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[1.5, 0]\n", m.String())
}
