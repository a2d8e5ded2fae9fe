// SPDX-License-Identifier: MIT
// Package: paramop/functional
//
// vector.go — linear functionals x ↦ v·x given by a vector.

package functional

import (
	"fmt"

	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

const (
	// TypeVector is the registry name of VectorBased.
	TypeVector = "functional.vector"
	// KeyVector holds the vector literal "[v0 v1 ...]" in the configuration.
	KeyVector = "vector"
)

// VectorBased is the non-parametric linear functional x ↦ v·x.
type VectorBased struct {
	name string
	v    *la.Vector
}

var (
	_ Functional = (*VectorBased)(nil)
	_ Vectorer   = (*VectorBased)(nil)
)

// NewVectorBased copies v into a new functional. An empty name defaults to TypeVector.
//
// Errors:
//   - errs.ErrSizesDoNotMatch for a nil v.
func NewVectorBased(v *la.Vector, name string) (*VectorBased, error) {
	if v == nil {
		return nil, functionalErrorf(TypeVector, opNew, fmt.Errorf("nil vector: %w", errs.ErrSizesDoNotMatch))
	}
	if name == "" {
		name = TypeVector
	}

	return &VectorBased{name: name, v: v.Copy()}, nil
}

// ParameterType is always empty.
func (f *VectorBased) ParameterType() parameter.Type { return parameter.Type{} }

// Parametric is always false.
func (f *VectorBased) Parametric() bool { return false }

// Tags reports TagFunctional.
func (f *VectorBased) Tags() contract.Tag { return contract.TagFunctional }

// Name returns the functional name.
func (f *VectorBased) Name() string { return f.name }

// Linear is always true.
func (f *VectorBased) Linear() bool { return true }

// DimSource returns the source dimension.
func (f *VectorBased) DimSource() int { return f.v.Dim() }

// Vector returns a copy of v.
func (f *VectorBased) Vector() *la.Vector { return f.v.Copy() }

// Apply returns v·source.
//
// Errors:
//   - errs.ErrWrongParameterType for a non-empty mu.
//   - errs.ErrSizesDoNotMatch.
func (f *VectorBased) Apply(source *la.Vector, mu parameter.Parameter) (float64, error) {
	if err := requireEmpty(mu); err != nil {
		return 0, functionalErrorf(f.name, opApply, err)
	}
	if err := checkSource(source, f.DimSource()); err != nil {
		return 0, functionalErrorf(f.name, opApply, err)
	}
	out, err := f.v.Dot(source)
	if err != nil {
		return 0, functionalErrorf(f.name, opApply, err)
	}

	return out, nil
}

// FreezeParameter always fails with errs.ErrNotParametric.
func (f *VectorBased) FreezeParameter(parameter.Parameter) (Functional, error) {
	return nil, functionalErrorf(f.name, opFreeze, errs.ErrNotParametric)
}

// String renders the functional as "name: v·x".
func (f *VectorBased) String() string { return fmt.Sprintf("%s: %s·x", f.name, f.v) }
