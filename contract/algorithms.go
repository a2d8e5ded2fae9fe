// SPDX-License-Identifier: MIT
// Package: paramop/contract
//
// algorithms.go — default algorithms generic over the contracts.

package contract

import (
	"fmt"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/parameter"
)

// Operation name constants for unified error wrapping.
const (
	opApplyNew        = "ApplyNew"
	opApply2          = "Apply2"
	opApplyInverse    = "ApplyInverse"
	opApplyInverseNew = "ApplyInverseNew"
	opResolveOption   = "ResolveInvertOption"
)

// contractErrorf wraps err with an operation tag, preserving it via %w.
func contractErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkDim reports errs.ErrSizesDoNotMatch when got != want.
func checkDim(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s has dimension %d, expected %d: %w", what, got, want, errs.ErrSizesDoNotMatch)
	}

	return nil
}

// ApplyNew applies op to source and returns a freshly allocated range
// vector. The range is allocated as a copy of source, so op must map a space
// onto itself.
//
// Errors:
//   - errs.ErrSizesDoNotMatch if source or the range does not fit op.
//   - anything op.Apply returns.
func ApplyNew[V Vector[V]](op Operator[V, V], source V, mu parameter.Parameter) (V, error) {
	var zero V
	if err := checkDim("source", source.Dim(), op.DimSource()); err != nil {
		return zero, contractErrorf(opApplyNew, err)
	}
	if err := checkDim("range", source.Dim(), op.DimRange()); err != nil {
		return zero, contractErrorf(opApplyNew, err)
	}
	rng := source.Copy()
	if err := op.Apply(source, rng, mu); err != nil {
		return zero, contractErrorf(opApplyNew, err)
	}

	return rng, nil
}

// Apply2 returns ⟨rng, op(source; mu)⟩.
// Operators implementing Apply2er are dispatched to their override;
// otherwise one Apply into a copy of rng is followed by a Dot.
//
// Errors:
//   - errs.ErrSizesDoNotMatch, plus anything op.Apply returns.
func Apply2[S Vector[S], R Vector[R]](op Operator[S, R], rng R, source S, mu parameter.Parameter) (float64, error) {
	if fast, ok := op.(Apply2er[S, R]); ok {
		v, err := fast.Apply2(rng, source, mu)
		if err != nil {
			return 0, contractErrorf(opApply2, err)
		}

		return v, nil
	}
	if err := checkDim("range", rng.Dim(), op.DimRange()); err != nil {
		return 0, contractErrorf(opApply2, err)
	}
	tmp := rng.Copy()
	if err := op.Apply(source, tmp, mu); err != nil {
		return 0, contractErrorf(opApply2, err)
	}
	v, err := rng.Dot(tmp)
	if err != nil {
		return 0, contractErrorf(opApply2, err)
	}

	return v, nil
}

// ResolveInvertOption maps option onto one of options; "" selects the
// first (default) option.
//
// Errors:
//   - errs.ErrRequirementsNotMet if options is empty or does not contain option.
func ResolveInvertOption(options []string, option string) (string, error) {
	if len(options) == 0 {
		return "", contractErrorf(opResolveOption, fmt.Errorf("operator is not invertible: %w", errs.ErrRequirementsNotMet))
	}
	if option == "" {
		return options[0], nil
	}
	for _, o := range options {
		if o == option {
			return o, nil
		}
	}

	return "", contractErrorf(opResolveOption,
		fmt.Errorf("unknown option %q, available %v: %w", option, options, errs.ErrRequirementsNotMet))
}

// ApplyInverse solves op(source; mu) = rng for source, writing source.
// It inverts op with option and applies the (non-parametric) inverse.
//
// Errors:
//   - errs.ErrRequirementsNotMet (unknown option), errs.ErrLinearSolverFailed,
//     errs.ErrSizesDoNotMatch, errs.ErrWrongParameterType.
func ApplyInverse[S Vector[S], R Vector[R]](op Operator[S, R], rng R, source S, option string, mu parameter.Parameter) error {
	inv, err := op.Invert(option, mu)
	if err != nil {
		return contractErrorf(opApplyInverse, err)
	}
	if err = inv.Apply(rng, source, parameter.Parameter{}); err != nil {
		return contractErrorf(opApplyInverse, err)
	}

	return nil
}

// ApplyInverseNew is ApplyInverse with the solution allocated as a copy of rng.
func ApplyInverseNew[V Vector[V]](op Operator[V, V], rng V, option string, mu parameter.Parameter) (V, error) {
	var zero V
	if err := checkDim("range", rng.Dim(), op.DimRange()); err != nil {
		return zero, contractErrorf(opApplyInverseNew, err)
	}
	if err := checkDim("source", rng.Dim(), op.DimSource()); err != nil {
		return zero, contractErrorf(opApplyInverseNew, err)
	}
	source := rng.Copy()
	if err := ApplyInverse(op, rng, source, option, mu); err != nil {
		return zero, contractErrorf(opApplyInverseNew, err)
	}

	return source, nil
}
