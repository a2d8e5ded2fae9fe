// SPDX-License-Identifier: MIT
// Package: paramop/affine
//
// decomposition.go — the generic affine decomposition container.
//
// A Decomposition[C] represents
//
//	C(μ) = C_A + Σ_{q=0}^{N-1} θ_q(μ) C_q
//
// where C_A (the affine part) is optional, every C_q is a non-parametric
// payload and every θ_q is a parameter.Functional. Payloads are shared
// read-only values; the decomposition never combines or mutates them.
//
// Lifecycle: Empty → PartiallyBuilt. There is no sealed state; consumers
// check WellFormed before evaluating.

package affine

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/parameter"
)

// CoefficientAlias returns the alias under which the type of coefficient q
// is absorbed: "coefficient_<q>".
func CoefficientAlias(q int) string { return fmt.Sprintf("coefficient_%d", q) }

// Decomposition is an ordered list of (component, coefficient) pairs plus an
// optional affine part. Not safe for concurrent mutation; concurrent reads
// after construction are safe.
type Decomposition[C any] struct {
	params        parameter.Parametric
	name          string
	staticID      string
	affinePart    C
	hasAffinePart bool
	components    []C
	coefficients  []*parameter.Functional
	check         func([]C, C) error
	logger        *zap.Logger
}

// New returns an empty decomposition. It panics if a WithCheck option was
// built for another payload type.
func New[C any](opts ...Option) *Decomposition[C] {
	o := newOptions(opts...)
	d := &Decomposition[C]{name: o.name, staticID: o.staticID, logger: o.logger}
	if o.check != nil {
		check, ok := o.check.(func([]C, C) error)
		if !ok {
			panic(fmt.Sprintf("affine: New[%v]: WithCheck installed as %T", reflect.TypeOf((*C)(nil)).Elem(), o.check))
		}
		d.check = check
	}

	return d
}

// NewWithAffinePart returns a decomposition holding only affinePart.
//
// Errors:
//   - anything the installed check returns.
func NewWithAffinePart[C any](affinePart C, opts ...Option) (*Decomposition[C], error) {
	d := New[C](opts...)
	if err := d.RegisterAffinePart(affinePart); err != nil {
		return nil, err
	}

	return d, nil
}

// NewWithComponent returns a decomposition holding one (component, coefficient) pair.
//
// Errors:
//   - see RegisterComponent.
func NewWithComponent[C any](component C, coefficient *parameter.Functional, opts ...Option) (*Decomposition[C], error) {
	d := New[C](opts...)
	if err := d.RegisterComponent(component, coefficient); err != nil {
		return nil, err
	}

	return d, nil
}

// Name returns the decomposition name.
func (d *Decomposition[C]) Name() string { return d.name }

// StaticID returns the type identifier the decomposition was built with.
func (d *Decomposition[C]) StaticID() string { return d.staticID }

// RegisterAffinePart sets the affine part.
//
// Errors:
//   - errs.ErrRequirementsNotMet if an affine part is already registered.
//   - anything the installed check returns.
func (d *Decomposition[C]) RegisterAffinePart(affinePart C) error {
	if d.hasAffinePart {
		return fmt.Errorf("%s: RegisterAffinePart: affine part already registered: %w", d.name, errs.ErrRequirementsNotMet)
	}
	if d.check != nil {
		if err := d.check(d.Parts(), affinePart); err != nil {
			return fmt.Errorf("%s: RegisterAffinePart: %w", d.name, err)
		}
	}
	d.affinePart = affinePart
	d.hasAffinePart = true
	d.logger.Debug("affine part registered", zap.String("decomposition", d.name))

	return nil
}

// RegisterComponent appends (component, coefficient) as pair N and absorbs
// the coefficient's parameter type under CoefficientAlias(N). On error the
// decomposition is unchanged.
//
// Errors:
//   - errs.ErrRequirementsNotMet for a nil coefficient.
//   - errs.ErrParameterTypeConflict if the coefficient redeclares a name
//     with another size.
//   - anything the installed check returns.
func (d *Decomposition[C]) RegisterComponent(component C, coefficient *parameter.Functional) error {
	q := len(d.components)
	if coefficient == nil {
		return fmt.Errorf("%s: RegisterComponent(%d): nil coefficient: %w", d.name, q, errs.ErrRequirementsNotMet)
	}
	if d.check != nil {
		if err := d.check(d.Parts(), component); err != nil {
			return fmt.Errorf("%s: RegisterComponent(%d): %w", d.name, q, err)
		}
	}
	if err := d.params.InheritParameterType(coefficient.ParameterType(), CoefficientAlias(q)); err != nil {
		return fmt.Errorf("%s: RegisterComponent(%d): %w", d.name, q, err)
	}
	d.components = append(d.components, component)
	d.coefficients = append(d.coefficients, coefficient)
	d.logger.Debug("component registered",
		zap.String("decomposition", d.name),
		zap.Int("index", q),
		zap.String("coefficient", coefficient.Expression()),
		zap.Stringer("parameter_type", d.ParameterType()))

	return nil
}

// ParameterType returns the union of the coefficient types.
func (d *Decomposition[C]) ParameterType() parameter.Type { return d.params.ParameterType() }

// Parametric reports whether at least one coefficient declares a parameter.
func (d *Decomposition[C]) Parametric() bool { return d.params.Parametric() }

// CheckParameter verifies that mu is of ParameterType().
//
// Errors:
//   - errs.ErrWrongParameterType.
func (d *Decomposition[C]) CheckParameter(mu parameter.Parameter) error {
	return d.params.CheckParameter(mu)
}

// Restrict maps mu onto the parameter type of coefficient q.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an unknown coefficient.
//   - errs.ErrWrongParameterType.
func (d *Decomposition[C]) Restrict(mu parameter.Parameter, q int) (parameter.Parameter, error) {
	return d.params.Restrict(mu, CoefficientAlias(q))
}

// NumComponents returns N.
func (d *Decomposition[C]) NumComponents() int { return len(d.components) }

// Component returns C_q.
//
// Errors:
//   - errs.ErrIndexOutOfRange unless 0 <= q < N (in particular always when N == 0).
func (d *Decomposition[C]) Component(q int) (C, error) {
	if err := d.checkIndex("Component", q); err != nil {
		var zero C
		return zero, err
	}

	return d.components[q], nil
}

// Coefficient returns θ_q.
//
// Errors:
//   - errs.ErrIndexOutOfRange unless 0 <= q < N.
func (d *Decomposition[C]) Coefficient(q int) (*parameter.Functional, error) {
	if err := d.checkIndex("Coefficient", q); err != nil {
		return nil, err
	}

	return d.coefficients[q], nil
}

// Components returns the components in registration order (copy of the slice).
func (d *Decomposition[C]) Components() []C {
	out := make([]C, len(d.components))
	copy(out, d.components)

	return out
}

// Parts returns the affine part (if any) followed by the components.
func (d *Decomposition[C]) Parts() []C {
	out := make([]C, 0, len(d.components)+1)
	if d.hasAffinePart {
		out = append(out, d.affinePart)
	}

	return append(out, d.components...)
}

// HasAffinePart reports whether an affine part is registered.
func (d *Decomposition[C]) HasAffinePart() bool { return d.hasAffinePart }

// AffinePart returns C_A.
//
// Errors:
//   - errs.ErrRequirementsNotMet if no affine part is registered.
func (d *Decomposition[C]) AffinePart() (C, error) {
	if !d.hasAffinePart {
		var zero C
		return zero, fmt.Errorf("%s: AffinePart: no affine part registered: %w", d.name, errs.ErrRequirementsNotMet)
	}

	return d.affinePart, nil
}

// WellFormed reports whether the decomposition has an affine part or at
// least one component.
func (d *Decomposition[C]) WellFormed() bool {
	return d.hasAffinePart || len(d.components) > 0
}

// EvaluateCoefficients returns θ_0(μ), …, θ_{N-1}(μ). Each θ_q sees mu
// restricted to its own parameter type.
//
// Errors:
//   - errs.ErrWrongParameterType if mu is not of ParameterType().
//   - errs.ErrConfiguration if an expression fails at run time.
func (d *Decomposition[C]) EvaluateCoefficients(mu parameter.Parameter) ([]float64, error) {
	if err := d.params.CheckParameter(mu); err != nil {
		return nil, fmt.Errorf("%s: EvaluateCoefficients: %w", d.name, err)
	}
	out := make([]float64, len(d.coefficients))
	for q, theta := range d.coefficients {
		sub, err := d.params.Restrict(mu, CoefficientAlias(q))
		if err != nil {
			return nil, fmt.Errorf("%s: EvaluateCoefficients(%d): %w", d.name, q, err)
		}
		if out[q], err = theta.Evaluate(sub); err != nil {
			return nil, fmt.Errorf("%s: EvaluateCoefficients(%d): %w", d.name, q, err)
		}
	}

	return out, nil
}

func (d *Decomposition[C]) checkIndex(method string, q int) error {
	if q < 0 || q >= len(d.components) {
		return fmt.Errorf("%s: %s(%d): need 0 <= q < %d: %w", d.name, method, q, len(d.components), errs.ErrIndexOutOfRange)
	}

	return nil
}
