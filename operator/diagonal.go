// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// diagonal.go — non-parametric diagonal (mass-lumped) operators.

package operator

import (
	"fmt"

	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

const (
	// TypeDiagonal is the registry name of Diagonal.
	TypeDiagonal = "operator.diagonal"
	// KeyDiagonal holds the diagonal literal "[d0 d1 ...]" in the configuration.
	KeyDiagonal = "diagonal"
)

// Diagonal is the operator x ↦ diag(d)·x on ℝⁿ.
type Diagonal struct {
	name string
	d    *la.Vector
}

var (
	_ Operator                                  = (*Diagonal)(nil)
	_ contract.Apply2er[*la.Vector, *la.Vector] = (*Diagonal)(nil)
	_ Matrixer                                  = (*Diagonal)(nil)
)

// NewDiagonal copies d into a new operator. An empty name defaults to TypeDiagonal.
//
// Errors:
//   - errs.ErrSizesDoNotMatch for a nil d.
func NewDiagonal(d *la.Vector, name string) (*Diagonal, error) {
	if d == nil {
		return nil, operatorErrorf(TypeDiagonal, opNew, fmt.Errorf("nil diagonal: %w", errs.ErrSizesDoNotMatch))
	}
	if name == "" {
		name = TypeDiagonal
	}

	return &Diagonal{name: name, d: d.Copy()}, nil
}

// ParameterType is always empty.
func (o *Diagonal) ParameterType() parameter.Type { return parameter.Type{} }

// Parametric is always false.
func (o *Diagonal) Parametric() bool { return false }

// Tags reports TagOperator.
func (o *Diagonal) Tags() contract.Tag { return contract.TagOperator }

// Name returns the operator name.
func (o *Diagonal) Name() string { return o.name }

// Linear is always true.
func (o *Diagonal) Linear() bool { return true }

// DimSource returns the source dimension.
func (o *Diagonal) DimSource() int { return o.d.Dim() }

// DimRange returns the range dimension.
func (o *Diagonal) DimRange() int { return o.d.Dim() }

// Diagonal returns a copy of the diagonal entries.
func (o *Diagonal) Diagonal() *la.Vector { return o.d.Copy() }

// Matrix returns diag(d) as a dense matrix.
func (o *Diagonal) Matrix() la.Matrix {
	m, _ := la.NewDiagonal(o.d.Values()) // d is non-empty and finite by construction

	return m
}

// Apply computes rng_i ← d_i·source_i. source and rng may alias.
func (o *Diagonal) Apply(source, rng *la.Vector, mu parameter.Parameter) error {
	if err := requireEmpty(mu); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}
	if err := checkVec("source", source, o.d.Dim()); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}
	if err := checkVec("range", rng, o.d.Dim()); err != nil {
		return operatorErrorf(o.name, opApply, err)
	}
	for i, di := range o.d.Values() {
		x, _ := source.At(i)
		if err := rng.Set(i, di*x); err != nil {
			return operatorErrorf(o.name, opApply, err)
		}
	}

	return nil
}

// Apply2 returns Σ_i rng_i·d_i·source_i.
func (o *Diagonal) Apply2(rng, source *la.Vector, mu parameter.Parameter) (float64, error) {
	if err := requireEmpty(mu); err != nil {
		return 0, operatorErrorf(o.name, opApply2, err)
	}
	if err := checkVec("source", source, o.d.Dim()); err != nil {
		return 0, operatorErrorf(o.name, opApply2, err)
	}
	if err := checkVec("range", rng, o.d.Dim()); err != nil {
		return 0, operatorErrorf(o.name, opApply2, err)
	}
	total := 0.0
	for i, di := range o.d.Values() {
		r, _ := rng.At(i)
		s, _ := source.At(i)
		total += r * di * s
	}

	return total, nil
}

// InvertOptions returns ["exact"].
func (o *Diagonal) InvertOptions() []string { return []string{InvertExact} }

// Invert returns diag(1/d).
//
// Errors:
//   - errs.ErrRequirementsNotMet, errs.ErrWrongParameterType,
//     errs.ErrLinearSolverFailed (zero entry).
func (o *Diagonal) Invert(option string, mu parameter.Parameter) (Operator, error) {
	if _, err := contract.ResolveInvertOption(o.InvertOptions(), option); err != nil {
		return nil, operatorErrorf(o.name, opInvert, err)
	}
	if err := requireEmpty(mu); err != nil {
		return nil, operatorErrorf(o.name, opInvert, err)
	}
	values := o.d.Values()
	for i, di := range values {
		if di == 0 {
			return nil, operatorErrorf(o.name, opInvert,
				solverFailed(fmt.Errorf("zero diagonal entry %d: %w", i, la.ErrSingular)))
		}
		values[i] = 1 / di
	}
	inv, err := la.NewVectorFrom(values)
	if err != nil {
		return nil, operatorErrorf(o.name, opInvert, solverFailed(err))
	}

	return &Diagonal{name: o.name + " (inverse)", d: inv}, nil
}

// FreezeParameter always fails: the operator is not parametric.
func (o *Diagonal) FreezeParameter(parameter.Parameter) (Operator, error) {
	return nil, operatorErrorf(o.name, opFreeze, errs.ErrNotParametric)
}
