// SPDX-License-Identifier: MIT
// Package: paramop/contract
//
// contracts.go — functional and operator capability contracts.
//
// Error surface shared by every implementation:
//   • errs.ErrSizesDoNotMatch     source/range dimension differs from DimSource/DimRange.
//   • errs.ErrWrongParameterType  mu is not of ParameterType().
//   • errs.ErrNotParametric       FreezeParameter on a non-parametric object.
//   • errs.ErrIndexOutOfRange     Component/Coefficient with q ∉ [0, NumComponents()).
//   • errs.ErrRequirementsNotMet  AffinePart without an affine part, unknown invert option.
//   • errs.ErrLinearSolverFailed  Invert could not factorize.

package contract

import "github.com/katalvlaran/paramop/parameter"

// Parametric is the read side of parameter.Parametric.
type Parametric interface {
	// ParameterType returns the declared (aggregate) parameter type.
	ParameterType() parameter.Type
	// Parametric reports whether ParameterType is non-empty.
	Parametric() bool
}

// Functional is a (possibly parametric) scalar map V → ℝ.
type Functional[V Vector[V]] interface {
	Parametric
	Tagged

	Name() string
	Linear() bool
	DimSource() int

	// Apply evaluates the functional at source for parameter mu.
	// Non-parametric functionals take the empty parameter.
	Apply(source V, mu parameter.Parameter) (float64, error)

	// FreezeParameter returns a non-parametric functional bound to mu.
	FreezeParameter(mu parameter.Parameter) (Functional[V], error)
}

// AffinelyDecomposedFunctional is a functional of the form
// f(μ) = f_A + Σ_q θ_q(μ) f_q.
type AffinelyDecomposedFunctional[V Vector[V]] interface {
	Functional[V]

	NumComponents() int
	Component(q int) (Functional[V], error)
	Coefficient(q int) (*parameter.Functional, error)
	HasAffinePart() bool
	AffinePart() (Functional[V], error)
}

// Operator is a (possibly parametric) map S → R writing into caller-supplied
// range vectors.
type Operator[S Vector[S], R Vector[R]] interface {
	Parametric
	Tagged

	Name() string
	Linear() bool
	DimSource() int
	DimRange() int

	// Apply computes rng ← op(source; mu). rng must have DimRange entries.
	Apply(source S, rng R, mu parameter.Parameter) error

	// InvertOptions lists the supported inversion strategies; the first one
	// is the default. Nil means Invert is unsupported.
	InvertOptions() []string

	// Invert returns the inverse operator at mu. The empty option selects
	// the default.
	Invert(option string, mu parameter.Parameter) (Operator[R, S], error)

	// FreezeParameter returns a non-parametric operator bound to mu.
	FreezeParameter(mu parameter.Parameter) (Operator[S, R], error)
}

// AffinelyDecomposedOperator is an operator of the form
// A(μ) = A_A + Σ_q θ_q(μ) A_q.
type AffinelyDecomposedOperator[S Vector[S], R Vector[R]] interface {
	Operator[S, R]

	NumComponents() int
	Component(q int) (Operator[S, R], error)
	Coefficient(q int) (*parameter.Functional, error)
	HasAffinePart() bool
	AffinePart() (Operator[S, R], error)
}

// Apply2er is implemented by operators with a cheaper ⟨r, op(s)⟩ than the
// generic Apply-then-Dot algorithm.
type Apply2er[S Vector[S], R Vector[R]] interface {
	Apply2(rng R, source S, mu parameter.Parameter) (float64, error)
}
