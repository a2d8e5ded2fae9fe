// SPDX-License-Identifier: MIT

// Package la - dense column vector.
//
// Vector is the reference implementation of the vector capability consumed
// by operators and functionals (Copy/Dot/Axpy/Scale/indexed access). Every
// contract instantiation over *Vector re-checks its method set at compile time.

package la

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxVecAt   = "At"
	ctxVecSet  = "Set"
	ctxVecDot  = "Dot"
	ctxVecAxpy = "Axpy"
)

// vectorErrorf wraps err with a "Vector.<method>: %w" context.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is a dense float64 vector of fixed dimension.
type Vector struct {
	data []float64 // len(data) == Dim()
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns a zero vector of dimension n.
//
// Errors:
//   - ErrInvalidDimensions (n<=0).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NewVectorFrom copies values into a new vector.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrNaNInf (non-finite entry).
func NewVectorFrom(values []float64) (*Vector, error) {
	v, err := NewVector(len(values))
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		if err = v.Set(i, x); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Dim returns the number of entries.
func (v *Vector) Dim() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set stores x at entry i.
//
// Errors:
//   - ErrOutOfRange (bad index), ErrNaNInf (non-finite x).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return vectorErrorf(ctxVecSet, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Copy returns an independent deep copy.
func (v *Vector) Copy() *Vector {
	buf := make([]float64, len(v.data))
	copy(buf, v.data)

	return &Vector{data: buf}
}

// Dot returns the Euclidean inner product ⟨v, other⟩.
//
// Errors:
//   - ErrNilMatrix (nil other), ErrDimensionMismatch.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := ValidateSameDim(v, other); err != nil {
		return 0, vectorErrorf(ctxVecDot, err)
	}
	acc := ZeroSum
	for i, x := range v.data {
		acc += x * other.data[i]
	}

	return acc, nil
}

// Axpy performs v ← v + alpha·x in place.
//
// Errors:
//   - ErrNilMatrix (nil x), ErrDimensionMismatch.
func (v *Vector) Axpy(alpha float64, x *Vector) error {
	if err := ValidateSameDim(v, x); err != nil {
		return vectorErrorf(ctxVecAxpy, err)
	}
	if alpha == 0 {
		return nil
	}
	for i := range v.data {
		v.data[i] += alpha * x.data[i]
	}

	return nil
}

// Scale performs v ← alpha·v in place.
func (v *Vector) Scale(alpha float64) {
	for i := range v.data {
		v.data[i] *= alpha
	}
}

// Norm returns the Euclidean norm.
func (v *Vector) Norm() float64 {
	acc := ZeroSum
	for _, x := range v.data {
		acc += x * x
	}

	return math.Sqrt(acc)
}

// Values returns a copy of the entries.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as "[x0 x1 ...]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("]")

	return sb.String()
}
