// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// operator.go — the operator contract specialized to la.Vector.

package operator

import (
	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/la"
)

// Operator is a (possibly parametric) map ℝⁿ → ℝᵐ over la.Vector.
type Operator = contract.Operator[*la.Vector, *la.Vector]

// Decomposed is an affinely decomposed Operator over la.Vector.
type Decomposed = contract.AffinelyDecomposedOperator[*la.Vector, *la.Vector]

// Matrixer is implemented by operators that can expose their matrix; the
// affine wrapper needs it to assemble and invert A(μ).
type Matrixer interface {
	// Matrix returns an independent copy of the operator matrix.
	Matrix() la.Matrix
}

// InvertExact names the dense LU inversion strategy.
const InvertExact = "exact"
