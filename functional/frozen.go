// SPDX-License-Identifier: MIT
// Package: paramop/functional

package functional

import (
	"fmt"

	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

// Frozen is the non-parametric functional x ↦ f(x; μ) for a fixed μ.
type Frozen struct {
	f  Functional
	mu parameter.Parameter
}

var _ Functional = (*Frozen)(nil)

// Mu returns the bound parameter.
func (z *Frozen) Mu() parameter.Parameter { return z.mu }

// Unfrozen returns the parametric functional z was frozen from.
func (z *Frozen) Unfrozen() Functional { return z.f }

// ParameterType is always empty.
func (z *Frozen) ParameterType() parameter.Type { return parameter.Type{} }

// Parametric is always false.
func (z *Frozen) Parametric() bool { return false }

// Tags reports TagFunctional.
func (z *Frozen) Tags() contract.Tag { return contract.TagFunctional }

// Linear reports whether the unfrozen functional is linear.
func (z *Frozen) Linear() bool { return z.f.Linear() }

// DimSource returns the source dimension.
func (z *Frozen) DimSource() int { return z.f.DimSource() }

// Name returns "<name> at <mu>".
func (z *Frozen) Name() string { return fmt.Sprintf("%s at %s", z.f.Name(), z.mu) }

// Apply returns f(source; μ); mu must be empty.
func (z *Frozen) Apply(source *la.Vector, mu parameter.Parameter) (float64, error) {
	if err := requireEmpty(mu); err != nil {
		return 0, functionalErrorf(z.Name(), opApply, err)
	}

	return z.f.Apply(source, z.mu)
}

// FreezeParameter always fails with errs.ErrNotParametric.
func (z *Frozen) FreezeParameter(parameter.Parameter) (Functional, error) {
	return nil, functionalErrorf(z.Name(), opFreeze, errs.ErrNotParametric)
}
