// SPDX-License-Identifier: MIT
// Package: paramop/functional

package functional

import (
	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/la"
)

// Functional is a functional on la.Vector.
type Functional = contract.Functional[*la.Vector]

// Decomposed is an affinely decomposed functional on la.Vector.
type Decomposed = contract.AffinelyDecomposedFunctional[*la.Vector]

// Vectorer is implemented by linear functionals that can expose their
// Riesz vector, i.e. f(x) = v·x.
type Vectorer interface {
	Vector() *la.Vector
}
