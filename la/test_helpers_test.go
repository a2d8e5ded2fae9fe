// SPDX-License-Identifier: MIT
// Package la_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package la_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/la"
)

// tol is the absolute tolerance used when comparing floating-point results.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback path in kernels.
type hide struct{ la.Matrix }

// MustDenseFrom builds a *Dense from rows or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64) *la.Dense {
	t.Helper()
	m, err := la.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustVec builds a *Vector from values or fails the test.
func MustVec(t *testing.T, values ...float64) *la.Vector {
	t.Helper()
	v, err := la.NewVectorFrom(values)
	require.NoError(t, err)

	return v
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m la.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
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
