// SPDX-License-Identifier: MIT
// Package: paramop/parameter
//
// parametric.go — the embeddable "owns a parameter type" mixin.

package parameter

import (
	"fmt"

	"github.com/katalvlaran/paramop/errs"
)

// Parametric owns a parameter type and absorbs the types of contained
// objects under disambiguating aliases. Embed it by value and use the owner
// through a pointer.
//
// Not safe for concurrent mutation; inherit during construction only.
type Parametric struct {
	ptype     Type
	inherited map[string]Type // alias -> absorbed type
}

// NewParametric returns a Parametric declaring t.
func NewParametric(t Type) Parametric {
	return Parametric{ptype: t.Clone()}
}

// ParameterType returns the aggregate parameter type.
func (p *Parametric) ParameterType() Type { return p.ptype }

// Parametric reports whether the aggregate type is non-empty.
func (p *Parametric) Parametric() bool { return !p.ptype.Empty() }

// InheritParameterType merges t into the aggregate type under alias.
// On error nothing changes.
//
// Errors:
//   - errs.ErrConfiguration if alias is empty or already used.
//   - errs.ErrParameterTypeConflict (see Merge).
func (p *Parametric) InheritParameterType(t Type, alias string) error {
	if alias == "" {
		return fmt.Errorf("InheritParameterType: empty alias: %w", errs.ErrConfiguration)
	}
	if _, dup := p.inherited[alias]; dup {
		return fmt.Errorf("InheritParameterType: alias %q already inherited: %w", alias, errs.ErrConfiguration)
	}
	merged, err := Merge(p.ptype, t, alias)
	if err != nil {
		return err
	}
	if p.inherited == nil {
		p.inherited = make(map[string]Type)
	}
	p.inherited[alias] = t.Clone()
	p.ptype = merged

	return nil
}

// Inherited returns the type absorbed under alias.
func (p *Parametric) Inherited(alias string) (Type, bool) {
	t, ok := p.inherited[alias]

	return t, ok
}

// CheckParameter verifies that mu is of the aggregate type.
// The empty parameter is accepted exactly when the type is empty.
//
// Errors:
//   - errs.ErrWrongParameterType (or errs.ErrSizesDoNotMatch, see Parameter.Check).
func (p *Parametric) CheckParameter(mu Parameter) error {
	if err := mu.Check(p.ptype); err != nil {
		return fmt.Errorf("%w (%w)", errs.ErrWrongParameterType, err)
	}

	return nil
}

// Restrict maps mu (of the aggregate type) onto the sub-type inherited
// under alias; this inverts the absorption done by InheritParameterType.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an unknown alias.
//   - errs.ErrWrongParameterType (see Parameter.Restrict).
func (p *Parametric) Restrict(mu Parameter, alias string) (Parameter, error) {
	t, ok := p.inherited[alias]
	if !ok {
		return Parameter{}, fmt.Errorf("Restrict: unknown alias %q: %w", alias, errs.ErrRequirementsNotMet)
	}

	return mu.Restrict(t)
}
