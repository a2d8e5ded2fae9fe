// SPDX-License-Identifier: MIT
// Package: paramop/contract
//
// vector.go — the vector capability.

package contract

// Vector is the container capability operators and functionals consume.
// V is the concrete vector type itself (e.g. *la.Vector), so that Copy and
// the binary operations stay statically typed.
//
// Implementations must report dimension mismatches from Dot/Axpy as
// errs.ErrSizesDoNotMatch and bad indices from At/Set as
// errs.ErrIndexOutOfRange.
type Vector[V any] interface {
	// Copy returns an independent deep copy of the same shape.
	Copy() V
	// Dot returns the inner product with other.
	Dot(other V) (float64, error)
	// Axpy performs v ← v + alpha·x in place.
	Axpy(alpha float64, x V) error
	// Scale performs v ← alpha·v in place.
	Scale(alpha float64)
	// Dim returns the number of entries.
	Dim() int
	// At returns entry i.
	At(i int) (float64, error)
	// Set stores x at entry i.
	Set(i int, x float64) error
}
