// SPDX-License-Identifier: MIT
// Package: paramop/functional
//
// errors.go — error wrapping shared by all functionals.

package functional

import (
	"fmt"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

const (
	opApply  = "Apply"
	opFreeze = "FreezeParameter"
	opNew    = "New"
)

// functionalErrorf wraps err as "<name>.<method>: err".
func functionalErrorf(name, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", name, method, err)
}

func requireEmpty(mu parameter.Parameter) error {
	if !mu.Empty() {
		return fmt.Errorf("non-parametric functional got %s: %w", mu, errs.ErrWrongParameterType)
	}

	return nil
}

func checkSource(v *la.Vector, dim int) error {
	if v == nil {
		return fmt.Errorf("nil source: %w", errs.ErrSizesDoNotMatch)
	}
	if v.Dim() != dim {
		return fmt.Errorf("source has dimension %d, expected %d: %w", v.Dim(), dim, errs.ErrSizesDoNotMatch)
	}

	return nil
}
