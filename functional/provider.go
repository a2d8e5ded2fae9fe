// SPDX-License-Identifier: MIT
// Package: paramop/functional

package functional

import (
	"sync"

	"github.com/katalvlaran/paramop/affine"
	"github.com/katalvlaran/paramop/config"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/provider"
)

// ProviderName labels the functional registry in logs and errors.
const ProviderName = "functional"

var (
	defaultProvider     *provider.Registry[Functional]
	defaultProviderOnce sync.Once
)

// NewProvider returns a registry offering TypeVector (default "[1 1]").
func NewProvider(opts ...provider.Option) *provider.Registry[Functional] {
	r := provider.NewRegistry[Functional](ProviderName, opts...)
	defaults := config.New()
	if err := defaults.Set(KeyVector, "[1 1]"); err != nil {
		panic(err)
	}
	r.MustRegister(TypeVector, vectorFromConfig, defaults)

	return r
}

// DefaultProvider returns the shared registry used by CreateAffine.
func DefaultProvider() *provider.Registry[Functional] {
	defaultProviderOnce.Do(func() { defaultProvider = NewProvider() })

	return defaultProvider
}

func vectorFromConfig(cfg *config.Tree) (Functional, error) {
	values, err := cfg.GetFloats(KeyVector)
	if err != nil {
		return nil, functionalErrorf(TypeVector, opNew, err)
	}
	v, err := la.NewVectorFrom(values)
	if err != nil {
		return nil, functionalErrorf(TypeVector, opNew, err)
	}

	return NewVectorBased(v, cfg.GetOr(affine.KeyName, TypeVector))
}
