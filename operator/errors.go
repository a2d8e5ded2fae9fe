// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// errors.go — shared error helpers of the operator package.
//
// The operator package declares no sentinels of its own: every failure is
// one of the kinds in errs, wrapped with the operator name and method.

package operator

import (
	"fmt"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

// Method name constants for unified error wrapping.
const (
	opApply    = "Apply"
	opApply2   = "Apply2"
	opInvert   = "Invert"
	opFreeze   = "FreezeParameter"
	opNew      = "New"
	opAssemble = "AssembleMatrix"
)

// operatorErrorf wraps err as "<name>.<method>: err", preserving it via %w.
func operatorErrorf(name, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", name, method, err)
}

// requireEmpty rejects a non-empty parameter passed to a non-parametric operator.
func requireEmpty(mu parameter.Parameter) error {
	if !mu.Empty() {
		return fmt.Errorf("non-parametric operator got %s: %w", mu, errs.ErrWrongParameterType)
	}

	return nil
}

// checkVec reports errs.ErrSizesDoNotMatch for a nil or wrongly sized vector.
func checkVec(what string, v *la.Vector, dim int) error {
	if v == nil {
		return fmt.Errorf("nil %s: %w", what, errs.ErrSizesDoNotMatch)
	}
	if v.Dim() != dim {
		return fmt.Errorf("%s has dimension %d, expected %d: %w", what, v.Dim(), dim, errs.ErrSizesDoNotMatch)
	}

	return nil
}

// solverFailed maps a factorization failure onto errs.ErrLinearSolverFailed.
func solverFailed(err error) error {
	return fmt.Errorf("%w: %w", errs.ErrLinearSolverFailed, err)
}
