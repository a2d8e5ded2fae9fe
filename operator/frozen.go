// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// frozen.go — a parametric operator bound to a fixed parameter.

package operator

import (
	"fmt"

	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

// Frozen is the non-parametric operator x ↦ A(μ)x for a fixed μ.
// Coefficients are evaluated on every Apply.
type Frozen struct {
	op Operator
	mu parameter.Parameter
}

var _ Operator = (*Frozen)(nil)

// Mu returns the bound parameter.
func (f *Frozen) Mu() parameter.Parameter { return f.mu }

// Unfrozen returns the parametric operator f was frozen from.
func (f *Frozen) Unfrozen() Operator { return f.op }

// ParameterType is always empty.
func (f *Frozen) ParameterType() parameter.Type { return parameter.Type{} }

// Parametric is always false.
func (f *Frozen) Parametric() bool { return false }

// Tags reports TagOperator.
func (f *Frozen) Tags() contract.Tag { return contract.TagOperator }

// Linear reports whether the unfrozen operator is linear.
func (f *Frozen) Linear() bool { return f.op.Linear() }

// DimSource returns the source dimension.
func (f *Frozen) DimSource() int { return f.op.DimSource() }

// DimRange returns the range dimension.
func (f *Frozen) DimRange() int { return f.op.DimRange() }

// InvertOptions returns the options of the unfrozen operator.
func (f *Frozen) InvertOptions() []string { return f.op.InvertOptions() }

// Name returns "<name> at <mu>".
func (f *Frozen) Name() string { return fmt.Sprintf("%s at %s", f.op.Name(), f.mu) }

// Apply computes rng ← A(μ)·source; mu must be empty.
func (f *Frozen) Apply(source, rng *la.Vector, mu parameter.Parameter) error {
	if err := requireEmpty(mu); err != nil {
		return operatorErrorf(f.Name(), opApply, err)
	}

	return f.op.Apply(source, rng, f.mu)
}

// Invert returns the inverse of A(μ); mu must be empty.
func (f *Frozen) Invert(option string, mu parameter.Parameter) (Operator, error) {
	if err := requireEmpty(mu); err != nil {
		return nil, operatorErrorf(f.Name(), opInvert, err)
	}

	return f.op.Invert(option, f.mu)
}

// FreezeParameter always fails: a frozen operator is not parametric.
func (f *Frozen) FreezeParameter(parameter.Parameter) (Operator, error) {
	return nil, operatorErrorf(f.Name(), opFreeze, errs.ErrNotParametric)
}
