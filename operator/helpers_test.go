// Package operator_test exercises the concrete and affinely decomposed
// operators through their public API.
package operator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/operator"
	"github.com/katalvlaran/paramop/parameter"
)

const tol = 1e-10

// hidden strips every optional interface (Apply2er, Matrixer) from an operator.
type hidden struct{ operator.Operator }

// MustVec builds a vector or fails the test.
func MustVec(t *testing.T, values ...float64) *la.Vector {
	t.Helper()
	v, err := la.NewVectorFrom(values)
	require.NoError(t, err)

	return v
}

// MustMatrixOp builds a MatrixBased operator from rows or fails the test.
func MustMatrixOp(t *testing.T, name string, rows [][]float64) *operator.MatrixBased {
	t.Helper()
	m, err := la.NewDenseFrom(rows)
	require.NoError(t, err)
	op, err := operator.NewMatrixBased(m, name)
	require.NoError(t, err)

	return op
}

// MustDiagonalOp builds a Diagonal operator or fails the test.
func MustDiagonalOp(t *testing.T, name string, d ...float64) *operator.Diagonal {
	t.Helper()
	op, err := operator.NewDiagonal(MustVec(t, d...), name)
	require.NoError(t, err)

	return op
}

// MustCoefficient compiles expression over a single name of the given size.
func MustCoefficient(t *testing.T, expression, name string, size int) *parameter.Functional {
	t.Helper()
	ty, err := parameter.NewType([]string{name}, []int{size})
	require.NoError(t, err)
	theta, err := parameter.NewFunctional(ty, expression)
	require.NoError(t, err)

	return theta
}

// MustMu builds a parameter from a map or fails the test.
func MustMu(t *testing.T, m map[string][]float64) parameter.Parameter {
	t.Helper()
	mu, err := parameter.FromMap(m)
	require.NoError(t, err)

	return mu
}

// applyNew applies op to x into a fresh vector of the range dimension.
func applyNew(t *testing.T, op operator.Operator, x *la.Vector, mu parameter.Parameter) *la.Vector {
	t.Helper()
	y, err := la.NewVector(op.DimRange())
	require.NoError(t, err)
	require.NoError(t, op.Apply(x, y, mu))

	return y
}

// requireVecClose asserts element-wise |got-want| <= tol.
func requireVecClose(t *testing.T, want []float64, got *la.Vector) {
	t.Helper()
	require.Equal(t, len(want), got.Dim(), "dimension")
	vals := got.Values()
	for i := range want {
		require.LessOrEqualf(t, math.Abs(vals[i]-want[i]), tol, "entry %d: got %g want %g", i, vals[i], want[i])
	}
}
