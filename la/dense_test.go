package la_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 2},
		{4, 4},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := la.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zerof(t, MustAt(t, m, i, j), "element [%d,%d] must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDenseInvalidShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := la.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, la.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := la.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, errs.ErrSizesDoNotMatch)

	_, err = la.NewDenseFrom(nil)
	require.ErrorIs(t, err, la.ErrInvalidDimensions)

	_, err = la.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, la.ErrNaNInf)
}

func TestDenseBounds(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, la.ErrOutOfRange)
	require.True(t, errors.Is(err, errs.ErrIndexOutOfRange), "la bounds errors share the errs kind")
	require.ErrorIs(t, m.Set(0, -1, 1), la.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), la.ErrNaNInf)
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestDenseIdentityDiagonalString(t *testing.T) {
	I, err := la.NewIdentity(2)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n", I.String())

	D, err := la.NewDiagonal([]float64{2, 3})
	require.NoError(t, err)
	require.Equal(t, 3.0, MustAt(t, D, 1, 1))
	require.Zero(t, MustAt(t, D, 0, 1))

	row, err := D.RawRow(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3}, row)
}
