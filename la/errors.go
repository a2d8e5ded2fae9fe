// SPDX-License-Identifier: MIT
// Package la: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the la
// package. All kernels MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is.

package la

import (
	"errors"

	"github.com/katalvlaran/paramop/errs"
)

// NOTE ON SHARED KINDS
// --------------------
// Shape and index failures are the same conditions the operator layer
// reports to its callers, so they alias the shared kinds in errs. A caller
// testing errors.Is(err, errs.ErrSizesDoNotMatch) matches la failures too.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("la: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errs.ErrIndexOutOfRange

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errs.ErrSizesDoNotMatch

	// ErrNilMatrix indicates that a nil Matrix or Vector was used.
	ErrNilMatrix = errors.New("la: nil receiver or argument")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("la: NaN or Inf encountered")

	// ErrSingular is returned when LU finds a column without a non-zero
	// pivot candidate (partial pivoting, deterministic).
	ErrSingular = errors.New("la: singular matrix")
)
