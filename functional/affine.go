// SPDX-License-Identifier: MIT
// Package: paramop/functional
//
// affine.go — affinely decomposed functionals f(x; μ) = f_A(x) + Σ_q θ_q(μ) f_q(x).

package functional

import (
	"fmt"

	"github.com/katalvlaran/paramop/affine"
	"github.com/katalvlaran/paramop/config"
	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

// StaticID identifies affinely decomposed functionals in configurations.
const StaticID = "functional.affinelydecomposed"

// Affine is an affinely decomposed functional over la.Vector.
type Affine struct {
	dec *affine.Decomposition[Functional]
}

var _ Decomposed = (*Affine)(nil)

func checkPart(existing []Functional, candidate Functional) error {
	if candidate == nil {
		return fmt.Errorf("nil functional: %w", errs.ErrRequirementsNotMet)
	}
	if candidate.Parametric() {
		return fmt.Errorf("%s is parametric, parts must not be: %w", candidate.Name(), errs.ErrThisDoesNotMakeAnySense)
	}
	if len(existing) > 0 && candidate.DimSource() != existing[0].DimSource() {
		return fmt.Errorf("%s has source dimension %d, %s has %d: %w",
			candidate.Name(), candidate.DimSource(), existing[0].Name(), existing[0].DimSource(), errs.ErrSizesDoNotMatch)
	}

	return nil
}

func affineOptions(opts []affine.Option) []affine.Option {
	return append([]affine.Option{affine.WithStaticID(StaticID), affine.WithCheck(checkPart)}, opts...)
}

// NewAffine returns an empty affinely decomposed functional.
func NewAffine(opts ...affine.Option) *Affine {
	return &Affine{dec: affine.New[Functional](affineOptions(opts)...)}
}

// CreateAffine builds an Affine from cfg with the package default provider;
// a nil cfg means DefaultAffineConfig().
func CreateAffine(cfg *config.Tree, opts ...affine.Option) (*Affine, error) {
	return CreateAffineFrom(DefaultProvider(), cfg, opts...)
}

// CreateAffineFrom builds an Affine from cfg with payloads from factory.
func CreateAffineFrom(factory affine.Factory[Functional], cfg *config.Tree, opts ...affine.Option) (*Affine, error) {
	dec, err := affine.Create[Functional](cfg, factory, affineOptions(opts)...)
	if err != nil {
		return nil, err
	}

	return &Affine{dec: dec}, nil
}

// DefaultAffineConfig returns a configuration CreateAffine accepts.
func DefaultAffineConfig(opts ...affine.Option) (*config.Tree, error) {
	return affine.DefaultConfig[Functional](DefaultProvider(), affineOptions(opts)...)
}

// RegisterAffinePart sets the affine part.
//
// Errors:
//   - errs.ErrRequirementsNotMet (already present, nil), errs.ErrSizesDoNotMatch,
//     errs.ErrThisDoesNotMakeAnySense (parametric part).
func (a *Affine) RegisterAffinePart(f Functional) error { return a.dec.RegisterAffinePart(f) }

// RegisterComponent appends (f_q, θ_q).
//
// Errors:
//   - as RegisterAffinePart, plus errs.ErrParameterTypeConflict.
func (a *Affine) RegisterComponent(f Functional, coefficient *parameter.Functional) error {
	return a.dec.RegisterComponent(f, coefficient)
}

// Decomposition exposes the underlying container.
func (a *Affine) Decomposition() *affine.Decomposition[Functional] { return a.dec }

// ParameterType returns the aggregate parameter type.
func (a *Affine) ParameterType() parameter.Type { return a.dec.ParameterType() }

// Parametric reports whether any coefficient declares a parameter.
func (a *Affine) Parametric() bool { return a.dec.Parametric() }

// Tags reports TagAffinelyDecomposedFunctional.
func (a *Affine) Tags() contract.Tag { return contract.TagAffinelyDecomposedFunctional }

// Name returns the functional name.
func (a *Affine) Name() string { return a.dec.Name() }

// NumComponents returns the number of (component, coefficient) pairs.
func (a *Affine) NumComponents() int { return a.dec.NumComponents() }

// HasAffinePart reports whether an affine part is registered.
func (a *Affine) HasAffinePart() bool { return a.dec.HasAffinePart() }

// Component returns component q (errs.ErrIndexOutOfRange).
func (a *Affine) Component(q int) (Functional, error) { return a.dec.Component(q) }

// Coefficient returns θ_q (errs.ErrIndexOutOfRange).
func (a *Affine) Coefficient(q int) (*parameter.Functional, error) { return a.dec.Coefficient(q) }

// AffinePart returns the affine part (errs.ErrRequirementsNotMet).
func (a *Affine) AffinePart() (Functional, error) { return a.dec.AffinePart() }

// Linear reports whether every part is linear.
func (a *Affine) Linear() bool {
	for _, p := range a.dec.Parts() {
		if !p.Linear() {
			return false
		}
	}

	return true
}

// DimSource returns the source dimension of the parts, 0 when empty.
func (a *Affine) DimSource() int {
	if parts := a.dec.Parts(); len(parts) > 0 {
		return parts[0].DimSource()
	}

	return 0
}

// Apply returns f_A(source) + Σ_q θ_q(mu)·f_q(source), where a missing affine
// part contributes 0.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an empty decomposition.
//   - errs.ErrWrongParameterType, errs.ErrSizesDoNotMatch.
func (a *Affine) Apply(source *la.Vector, mu parameter.Parameter) (float64, error) {
	if !a.dec.WellFormed() {
		return 0, functionalErrorf(a.Name(), opApply, fmt.Errorf("empty decomposition: %w", errs.ErrRequirementsNotMet))
	}
	theta, err := a.dec.EvaluateCoefficients(mu)
	if err != nil {
		return 0, functionalErrorf(a.Name(), opApply, err)
	}
	if err = checkSource(source, a.DimSource()); err != nil {
		return 0, functionalErrorf(a.Name(), opApply, err)
	}

	none := parameter.Parameter{}
	var sum float64
	if part, err := a.dec.AffinePart(); err == nil {
		if sum, err = part.Apply(source, none); err != nil {
			return 0, functionalErrorf(a.Name(), opApply, err)
		}
	}
	for q, comp := range a.dec.Components() {
		v, err := comp.Apply(source, none)
		if err != nil {
			return 0, functionalErrorf(a.Name(), opApply, err)
		}
		sum += theta[q] * v
	}

	return sum, nil
}

// AssembleVector returns the Riesz vector of f(·; mu) when every part
// implements Vectorer.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an empty decomposition.
//   - errs.ErrInterfaceViolation, errs.ErrWrongParameterType.
func (a *Affine) AssembleVector(mu parameter.Parameter) (*la.Vector, error) {
	const op = "AssembleVector"
	if !a.dec.WellFormed() {
		return nil, functionalErrorf(a.Name(), op, fmt.Errorf("empty decomposition: %w", errs.ErrRequirementsNotMet))
	}
	theta, err := a.dec.EvaluateCoefficients(mu)
	if err != nil {
		return nil, functionalErrorf(a.Name(), op, err)
	}
	out, err := la.NewVector(a.DimSource())
	if err != nil {
		return nil, functionalErrorf(a.Name(), op, err)
	}

	weights := make([]float64, 0, len(theta)+1)
	if a.dec.HasAffinePart() {
		weights = append(weights, 1)
	}
	weights = append(weights, theta...)
	for i, p := range a.dec.Parts() {
		vf, err := contract.Conform[Vectorer](p)
		if err != nil {
			return nil, functionalErrorf(a.Name(), op, err)
		}
		if err = out.Axpy(weights[i], vf.Vector()); err != nil {
			return nil, functionalErrorf(a.Name(), op, err)
		}
	}

	return out, nil
}

// FreezeParameter returns the non-parametric functional f(·; mu).
//
// Errors:
//   - errs.ErrNotParametric, errs.ErrWrongParameterType.
func (a *Affine) FreezeParameter(mu parameter.Parameter) (Functional, error) {
	if !a.Parametric() {
		return nil, functionalErrorf(a.Name(), opFreeze, errs.ErrNotParametric)
	}
	if err := a.dec.CheckParameter(mu); err != nil {
		return nil, functionalErrorf(a.Name(), opFreeze, err)
	}

	return &Frozen{f: a, mu: mu}, nil
}
