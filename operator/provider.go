// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// provider.go — configuration constructors for the non-parametric operators.

package operator

import (
	"sync"

	"github.com/katalvlaran/paramop/affine"
	"github.com/katalvlaran/paramop/config"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/provider"
)

// ProviderName labels the operator registry in logs and errors.
const ProviderName = "operator"

var (
	defaultProvider     *provider.Registry[Operator]
	defaultProviderOnce sync.Once
)

// NewProvider returns a registry offering TypeMatrix and TypeDiagonal,
// in that order. Both default to the 2×2 identity.
func NewProvider(opts ...provider.Option) *provider.Registry[Operator] {
	r := provider.NewRegistry[Operator](ProviderName, opts...)
	r.MustRegister(TypeMatrix, matrixFromConfig, mustDefaults(KeyMatrix, "[1 0; 0 1]"))
	r.MustRegister(TypeDiagonal, diagonalFromConfig, mustDefaults(KeyDiagonal, "[1 1]"))

	return r
}

// DefaultProvider returns the shared registry used by CreateAffine.
func DefaultProvider() *provider.Registry[Operator] {
	defaultProviderOnce.Do(func() { defaultProvider = NewProvider() })

	return defaultProvider
}

func matrixFromConfig(cfg *config.Tree) (Operator, error) {
	rows, err := cfg.GetMatrix(KeyMatrix)
	if err != nil {
		return nil, operatorErrorf(TypeMatrix, opNew, err)
	}
	m, err := la.NewDenseFrom(rows)
	if err != nil {
		return nil, operatorErrorf(TypeMatrix, opNew, err)
	}

	return NewMatrixBased(m, cfg.GetOr(affine.KeyName, TypeMatrix))
}

func diagonalFromConfig(cfg *config.Tree) (Operator, error) {
	values, err := cfg.GetFloats(KeyDiagonal)
	if err != nil {
		return nil, operatorErrorf(TypeDiagonal, opNew, err)
	}
	d, err := la.NewVectorFrom(values)
	if err != nil {
		return nil, operatorErrorf(TypeDiagonal, opNew, err)
	}

	return NewDiagonal(d, cfg.GetOr(affine.KeyName, TypeDiagonal))
}

func mustDefaults(key, value string) *config.Tree {
	t := config.New()
	if err := t.Set(key, value); err != nil {
		panic(err)
	}

	return t
}
