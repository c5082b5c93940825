package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphq/matrix"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacency_Symmetric(t *testing.T) {
	m, err := matrix.BuildAdjacency(4, []matrix.Entry{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2.5},
		{U: 1, V: 4, Weight: 5},
	})
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	for _, c := range []struct {
		i, j int
		want float64
	}{
		{0, 1, 1}, {1, 0, 1},
		{1, 2, 2.5}, {2, 1, 2.5},
		{0, 3, 5}, {3, 0, 5},
		{0, 2, 0}, {3, 3, 0},
	} {
		got, err := m.At(c.i, c.j)
		require.NoError(t, err)
		require.Equal(t, c.want, got, "cell (%d,%d)", c.i, c.j)
	}

	ok, err := matrix.IsSymmetric(m)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBuildAdjacency_LastWriteWins(t *testing.T) {
	m, err := matrix.BuildAdjacency(2, []matrix.Entry{
		{U: 1, V: 2, Weight: 3},
		{U: 2, V: 1, Weight: 8},
	})
	require.NoError(t, err)
	a, _ := m.At(0, 1)
	b, _ := m.At(1, 0)
	require.Equal(t, 8.0, a)
	require.Equal(t, 8.0, b)
}

func TestBuildAdjacency_Errors(t *testing.T) {
	_, err := matrix.BuildAdjacency(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.BuildAdjacency(2, []matrix.Entry{{U: 1, V: 3, Weight: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIsSymmetric(t *testing.T) {
	_, err := matrix.IsSymmetric(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.IsSymmetric(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 1, 1)
	ok, err := matrix.IsSymmetric(m)
	require.NoError(t, err)
	require.False(t, ok)

	_ = m.Set(1, 0, math.NaN())
	_ = m.Set(0, 1, math.NaN())
	ok, _ = matrix.IsSymmetric(m)
	require.False(t, ok)
}
