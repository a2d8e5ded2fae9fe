// SPDX-License-Identifier: MIT
// Package la provides the linear-algebra kernels the operator layer relies
// on: matrix-vector products, bilinear forms, in-place accumulation for
// affine assembly, and the partially pivoted LU family (factorize, solve,
// invert).
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures with
//     laErrorf(op*, err); sentinels survive for errors.Is.
//   - Fast paths operate on *Dense flat slices; the Matrix interface path
//     produces identical results in the same loop order.

package la

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// ZeroPivot marks a column without a usable pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opBilinear  = "Bilinear"
	opAddScaled = "AddScaled"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

// laErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func laErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x, writing into the caller-supplied y.
//
// Contract: m non-nil; x.Dim() == m.Cols(); y.Dim() == m.Rows(); x and y
// must not alias.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(1).
func MatVec(m Matrix, x, y *Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return laErrorf(opMatVec, err)
	}
	if err := ValidateVecDim(x, m.Cols()); err != nil {
		return laErrorf(opMatVec, err)
	}
	if err := ValidateVecDim(y, m.Rows()); err != nil {
		return laErrorf(opMatVec, err)
	}

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x.data[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y.data[i] = acc
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv, acc float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		acc = ZeroSum
		for j = 0; j < m.Cols(); j++ {
			if mv, err = m.At(i, j); err != nil {
				return laErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x.data[j]
		}
		y.data[i] = acc
	}

	return nil
}

// Bilinear returns rᵀ·m·s without allocating the intermediate m·s.
//
// Contract: s.Dim() == m.Cols(); r.Dim() == m.Rows().
// Complexity: Time O(r*c), Space O(1).
func Bilinear(m Matrix, r, s *Vector) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, laErrorf(opBilinear, err)
	}
	if err := ValidateVecDim(s, m.Cols()); err != nil {
		return 0, laErrorf(opBilinear, err)
	}
	if err := ValidateVecDim(r, m.Rows()); err != nil {
		return 0, laErrorf(opBilinear, err)
	}

	var i, j int
	var row, total, mv float64
	var err error
	d, fast := m.(*Dense)
	for i = 0; i < m.Rows(); i++ {
		if r.data[i] == 0 {
			continue
		}
		row = ZeroSum
		for j = 0; j < m.Cols(); j++ {
			if fast {
				mv = d.data[i*d.c+j]
			} else if mv, err = m.At(i, j); err != nil {
				return 0, laErrorf(opBilinear, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			row += mv * s.data[j]
		}
		total += r.data[i] * row
	}

	return total, nil
}

// AddScaled accumulates dst ← dst + alpha·src in place.
// Used to assemble Σ θ_q A_q into a single matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func AddScaled(dst *Dense, alpha float64, src Matrix) error {
	if dst == nil {
		return laErrorf(opAddScaled, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return laErrorf(opAddScaled, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return laErrorf(opAddScaled, err)
	}
	if alpha == 0 {
		return nil
	}

	if s, ok := src.(*Dense); ok {
		for k := range dst.data {
			dst.data[k] += alpha * s.data[k]
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return laErrorf(opAddScaled, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			dst.data[i*dst.c+j] += alpha * v
		}
	}

	return nil
}

// LU computes the factorization P·A = L·U with partial pivoting: L is unit
// lower triangular, U upper triangular, and perm describes P (row i of P·A
// is row perm[i] of A).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (a column
//     without a non-zero pivot candidate).
//
// Determinism:
//   - The pivot is the first row with the largest |a[i][k]|, i ≥ k.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*Dense, *Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, laErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, laErrorf(opLU, err)
	}

	// Eliminate in place on a private snapshot.
	w, err := denseCopy(m)
	if err != nil {
		return nil, nil, nil, laErrorf(opLU, err)
	}

	n := w.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, v, pivot, factor float64
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, nil, nil, laErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				w.data[k*n+j], w.data[p*n+j] = w.data[p*n+j], w.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		pivot = w.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = w.data[i*n+k] / pivot
			w.data[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				w.data[i*n+j] -= factor * w.data[k*n+j]
			}
		}
	}

	L, _ := NewDense(n, n) // n>0 guaranteed by a valid Matrix
	U, _ := NewDense(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = w.data[i*n+j]
			case j == i:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = w.data[i*n+j]
			default:
				U.data[i*n+j] = w.data[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Solve solves A·x = b from the factors of LU (P·A = L·U): forward
// substitution on P·b, then backward substitution, writing x.
//
// Contract: L unit lower triangular, U upper triangular, both n×n; perm a
// permutation of 0..n-1; b.Dim() == x.Dim() == n. b and x may alias.
// Complexity: Time O(n^2), Space O(n).
func Solve(L, U *Dense, perm []int, b, x *Vector) error {
	if L == nil || U == nil {
		return laErrorf(opSolve, ErrNilMatrix)
	}
	if err := ValidateSameShape(L, U); err != nil {
		return laErrorf(opSolve, err)
	}
	n := L.r
	if len(perm) != n {
		return laErrorf(opSolve, fmt.Errorf("permutation of length %d for %d rows: %w", len(perm), n, ErrDimensionMismatch))
	}
	if err := ValidateVecDim(b, n); err != nil {
		return laErrorf(opSolve, err)
	}
	if err := ValidateVecDim(x, n); err != nil {
		return laErrorf(opSolve, err)
	}

	y := make([]float64, n)
	var i, k int
	var sum, pivot float64
	// Forward substitution: L*y = P*b
	for i = 0; i < n; i++ {
		if perm[i] < 0 || perm[i] >= n {
			return laErrorf(opSolve, fmt.Errorf("permutation entry %d out of range: %w", perm[i], ErrDimensionMismatch))
		}
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b.data[perm[i]] - sum
	}
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U.data[i*n+k] * y[k]
		}
		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return laErrorf(opSolve, ErrSingular)
		}
		y[i] = (y[i] - sum) / pivot
	}
	copy(x.data, y)

	return nil
}

// Inverse returns A^{-1} via LU and one triangular solve per unit column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	L, U, perm, err := LU(m)
	if err != nil {
		return nil, laErrorf(opInverse, err)
	}

	n := L.r
	inv, _ := NewDense(n, n)
	e, _ := NewVector(n)
	col, _ := NewVector(n)
	var i, j int
	for j = 0; j < n; j++ {
		// e = unit vector j
		for i = 0; i < n; i++ {
			e.data[i] = 0
		}
		e.data[j] = 1
		if err = Solve(L, U, perm, e, col); err != nil {
			return nil, laErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+j] = col.data[i]
		}
	}

	return inv, nil
}

// ToDense returns an independent *Dense copy of any Matrix.
//
// Errors:
//   - ErrNilMatrix, plus any accessor error of m.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return denseCopy(m)
}

// denseCopy materializes any Matrix into a fresh *Dense (i→j order).
func denseCopy(m Matrix) (*Dense, error) {
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}
