// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// matrix.go — non-parametric operators backed by an explicit matrix.

package operator

import (
	"fmt"

	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

const (
	// TypeMatrix is the registry name of MatrixBased.
	TypeMatrix = "operator.matrix"
	// KeyMatrix holds the matrix literal "[a b; c d]" in the configuration.
	KeyMatrix = "matrix"
)

// MatrixBased is the non-parametric linear operator x ↦ M·x.
// It owns a private copy of M and is immutable.
type MatrixBased struct {
	name string
	m    *la.Dense
}

var (
	_ Operator                                  = (*MatrixBased)(nil)
	_ contract.Apply2er[*la.Vector, *la.Vector] = (*MatrixBased)(nil)
	_ Matrixer                                  = (*MatrixBased)(nil)
)

// NewMatrixBased copies m into a new operator. An empty name defaults to TypeMatrix.
//
// Errors:
//   - la.ErrNilMatrix.
func NewMatrixBased(m la.Matrix, name string) (*MatrixBased, error) {
	d, err := la.ToDense(m)
	if err != nil {
		return nil, operatorErrorf(TypeMatrix, opNew, err)
	}
	if name == "" {
		name = TypeMatrix
	}

	return &MatrixBased{name: name, m: d}, nil
}

// ParameterType is always empty.
func (o *MatrixBased) ParameterType() parameter.Type { return parameter.Type{} }

// Parametric is always false.
func (o *MatrixBased) Parametric() bool { return false }

// Tags reports TagOperator.
func (o *MatrixBased) Tags() contract.Tag { return contract.TagOperator }

// Name returns the operator name.
func (o *MatrixBased) Name() string { return o.name }

// Linear is always true.
func (o *MatrixBased) Linear() bool { return true }

// DimSource returns the number of matrix columns.
func (o *MatrixBased) DimSource() int { return o.m.Cols() }

// DimRange returns the number of matrix rows.
func (o *MatrixBased) DimRange() int { return o.m.Rows() }

// Matrix returns a copy of the operator matrix.
func (o *MatrixBased) Matrix() la.Matrix { return o.m.Clone() }

// Apply computes rng ← M·source. source and rng may alias.
//
// Errors:
//   - errs.ErrWrongParameterType for a non-empty mu.
//   - errs.ErrSizesDoNotMatch.
func (o *MatrixBased) Apply(source, rng *la.Vector, mu parameter.Parameter) error {
	if err := requireEmpty(mu); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}
	if err := checkVec("source", source, o.DimSource()); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}
	if err := checkVec("range", rng, o.DimRange()); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}
	if source == rng {
		source = source.Copy()
	}
	if err := la.MatVec(o.m, source, rng); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}

	return nil
}

// Apply2 returns rngᵀ·M·source without allocating M·source.
func (o *MatrixBased) Apply2(rng, source *la.Vector, mu parameter.Parameter) (float64, error) {
	if err := requireEmpty(mu); err != nil {
		return 0, operatorErrorf(o.name, opApply2, err)
	}
	v, err := la.Bilinear(o.m, rng, source)
	if err != nil {
		return 0, operatorErrorf(o.name, opApply2, err)
	}

	return v, nil
}

// InvertOptions returns ["exact"].
func (o *MatrixBased) InvertOptions() []string { return []string{InvertExact} }

// Invert returns M⁻¹ as a new MatrixBased.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an unknown option.
//   - errs.ErrWrongParameterType for a non-empty mu.
//   - errs.ErrSizesDoNotMatch for a non-square M.
//   - errs.ErrLinearSolverFailed for a singular M.
func (o *MatrixBased) Invert(option string, mu parameter.Parameter) (Operator, error) {
	if _, err := contract.ResolveInvertOption(o.InvertOptions(), option); err != nil {
		return nil, operatorErrorf(o.name, opInvert, err)
	}
	if err := requireEmpty(mu); err != nil {
		return nil, operatorErrorf(o.name, opInvert, err)
	}
	inv, err := invertDense(o.m)
	if err != nil {
		return nil, operatorErrorf(o.name, opInvert, err)
	}

	return &MatrixBased{name: o.name + " (inverse)", m: inv}, nil
}

// FreezeParameter always fails: the operator is not parametric.
func (o *MatrixBased) FreezeParameter(parameter.Parameter) (Operator, error) {
	return nil, operatorErrorf(o.name, opFreeze, errs.ErrNotParametric)
}

// String renders "name: matrix".
func (o *MatrixBased) String() string {
	return fmt.Sprintf("%s:\n%s", o.name, o.m)
}

// invertDense inverts m, reporting singular pivots as errs.ErrLinearSolverFailed.
func invertDense(m la.Matrix) (*la.Dense, error) {
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%dx%d matrix: %w", m.Rows(), m.Cols(), errs.ErrSizesDoNotMatch)
	}
	inv, err := la.Inverse(m)
	if err != nil {
		return nil, solverFailed(err)
	}

	return inv, nil
}
