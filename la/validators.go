// SPDX-License-Identifier: MIT
// Package: la
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil checks.
//  - Return plain sentinel errors (tagged with the validator name) so call
//    sites can wrap uniformly.
//
// Note:
//  - Each validator describes what it validates and what it assumes.

package la

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense hidden in the interface is still nil for our purposes.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecDim ensures x is non-nil with exactly n entries.
// Complexity: O(1).
func ValidateVecDim(x *Vector, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecDim", ErrNilMatrix)
	}
	if x.Dim() != n {
		return validatorErrorf("ValidateVecDim", fmt.Errorf("got %d, want %d: %w", x.Dim(), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameDim ensures a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameDim(a, b *Vector) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameDim", ErrNilMatrix)
	}
	if a.Dim() != b.Dim() {
		return validatorErrorf("ValidateSameDim", fmt.Errorf("%d != %d: %w", a.Dim(), b.Dim(), ErrDimensionMismatch))
	}

	return nil
}
