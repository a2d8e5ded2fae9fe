// SPDX-License-Identifier: MIT
// Package: paramop/operator
//
// affine.go — affinely decomposed operators A(μ) = A_A + Σ_q θ_q(μ) A_q.
//
// Structure:
//   • Payloads are non-parametric Operators with identical dimensions; the
//     decomposition rejects anything else at registration time.
//   • Apply evaluates the coefficients once, applies every part into a
//     scratch vector and accumulates with Axpy. Parts are never merged.
//   • Invert assembles the dense matrix of A(μ) (all parts must implement
//     Matrixer) and inverts it with the LU kernel of package la.

package operator

import (
	"fmt"

	"github.com/katalvlaran/paramop/affine"
	"github.com/katalvlaran/paramop/config"
	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

// StaticID identifies affinely decomposed operators in configurations.
const StaticID = "operator.affinelydecomposed"

// Affine is an affinely decomposed operator over la.Vector.
type Affine struct {
	dec *affine.Decomposition[Operator]
}

var _ Decomposed = (*Affine)(nil)

// checkPart admits non-parametric operators whose dimensions match the
// parts registered so far.
func checkPart(existing []Operator, candidate Operator) error {
	if candidate == nil {
		return fmt.Errorf("nil operator: %w", errs.ErrRequirementsNotMet)
	}
	if candidate.Parametric() {
		return fmt.Errorf("%s is parametric, parts must not be: %w", candidate.Name(), errs.ErrThisDoesNotMakeAnySense)
	}
	if len(existing) == 0 {
		return nil
	}
	ref := existing[0]
	if candidate.DimSource() != ref.DimSource() || candidate.DimRange() != ref.DimRange() {
		return fmt.Errorf("%s maps %d → %d, %s maps %d → %d: %w",
			candidate.Name(), candidate.DimSource(), candidate.DimRange(),
			ref.Name(), ref.DimSource(), ref.DimRange(), errs.ErrSizesDoNotMatch)
	}

	return nil
}

// affineOptions puts the operator defaults in front of the caller's options.
func affineOptions(opts []affine.Option) []affine.Option {
	return append([]affine.Option{affine.WithStaticID(StaticID), affine.WithCheck(checkPart)}, opts...)
}

// NewAffine returns an empty affinely decomposed operator.
func NewAffine(opts ...affine.Option) *Affine {
	return &Affine{dec: affine.New[Operator](affineOptions(opts)...)}
}

// CreateAffine builds an Affine from cfg using the package default provider.
// A nil cfg means DefaultAffineConfig().
//
// Errors:
//   - see affine.Create.
func CreateAffine(cfg *config.Tree, opts ...affine.Option) (*Affine, error) {
	return CreateAffineFrom(DefaultProvider(), cfg, opts...)
}

// CreateAffineFrom builds an Affine from cfg with payloads from factory.
func CreateAffineFrom(factory affine.Factory[Operator], cfg *config.Tree, opts ...affine.Option) (*Affine, error) {
	dec, err := affine.Create[Operator](cfg, factory, affineOptions(opts)...)
	if err != nil {
		return nil, err
	}

	return &Affine{dec: dec}, nil
}

// DefaultAffineConfig returns a configuration CreateAffine accepts.
func DefaultAffineConfig(opts ...affine.Option) (*config.Tree, error) {
	return affine.DefaultConfig[Operator](DefaultProvider(), affineOptions(opts)...)
}

// RegisterAffinePart sets A_A.
//
// Errors:
//   - errs.ErrRequirementsNotMet (already present, nil), errs.ErrSizesDoNotMatch,
//     errs.ErrThisDoesNotMakeAnySense (parametric part).
func (a *Affine) RegisterAffinePart(op Operator) error { return a.dec.RegisterAffinePart(op) }

// RegisterComponent appends (A_q, θ_q).
//
// Errors:
//   - as RegisterAffinePart, plus errs.ErrParameterTypeConflict.
func (a *Affine) RegisterComponent(op Operator, coefficient *parameter.Functional) error {
	return a.dec.RegisterComponent(op, coefficient)
}

// Decomposition exposes the underlying container.
func (a *Affine) Decomposition() *affine.Decomposition[Operator] { return a.dec }

// ParameterType returns the aggregate parameter type.
func (a *Affine) ParameterType() parameter.Type { return a.dec.ParameterType() }

// Parametric reports whether any coefficient declares a parameter.
func (a *Affine) Parametric() bool { return a.dec.Parametric() }

// Tags reports TagAffinelyDecomposedOperator.
func (a *Affine) Tags() contract.Tag { return contract.TagAffinelyDecomposedOperator }

// Name returns the operator name.
func (a *Affine) Name() string { return a.dec.Name() }

// NumComponents returns the number of (component, coefficient) pairs.
func (a *Affine) NumComponents() int { return a.dec.NumComponents() }

// HasAffinePart reports whether an affine part is registered.
func (a *Affine) HasAffinePart() bool { return a.dec.HasAffinePart() }

// Component returns A_q (errs.ErrIndexOutOfRange).
func (a *Affine) Component(q int) (Operator, error) { return a.dec.Component(q) }

// Coefficient returns θ_q (errs.ErrIndexOutOfRange).
func (a *Affine) Coefficient(q int) (*parameter.Functional, error) { return a.dec.Coefficient(q) }

// AffinePart returns A_A (errs.ErrRequirementsNotMet).
func (a *Affine) AffinePart() (Operator, error) { return a.dec.AffinePart() }

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

// DimRange returns the range dimension of the parts, 0 when empty.
func (a *Affine) DimRange() int {
	if parts := a.dec.Parts(); len(parts) > 0 {
		return parts[0].DimRange()
	}

	return 0
}

// Apply computes rng ← A_A(source) + Σ_q θ_q(mu)·A_q(source).
// Without an affine part the sum starts from zero. source and rng may alias.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an empty decomposition.
//   - errs.ErrWrongParameterType, errs.ErrSizesDoNotMatch.
func (a *Affine) Apply(source, rng *la.Vector, mu parameter.Parameter) error {
	if !a.dec.WellFormed() {
		return operatorErrorf(a.Name(), opApply, fmt.Errorf("empty decomposition: %w", errs.ErrRequirementsNotMet))
	}
	theta, err := a.dec.EvaluateCoefficients(mu)
	if err != nil {
		return operatorErrorf(a.Name(), opApply, err)
	}
	if err = checkVec("source", source, a.DimSource()); err != nil {
		return operatorErrorf(a.Name(), opApply, err)
	}
	if err = checkVec("range", rng, a.DimRange()); err != nil {
		return operatorErrorf(a.Name(), opApply, err)
	}
	if source == rng {
		source = source.Copy()
	}

	none := parameter.Parameter{}
	if part, ok := a.partOrNil(); ok {
		if err = part.Apply(source, rng, none); err != nil {
			return operatorErrorf(a.Name(), opApply, err)
		}
	} else {
		rng.Scale(0)
	}
	tmp := rng.Copy()
	for q, comp := range a.dec.Components() {
		if err = comp.Apply(source, tmp, none); err != nil {
			return operatorErrorf(a.Name(), opApply, err)
		}
		if err = rng.Axpy(theta[q], tmp); err != nil {
			return operatorErrorf(a.Name(), opApply, err)
		}
	}

	return nil
}

// InvertOptions returns ["exact"] when every part exposes its matrix, nil otherwise.
func (a *Affine) InvertOptions() []string {
	parts := a.dec.Parts()
	if len(parts) == 0 {
		return nil
	}
	for _, p := range parts {
		if _, ok := p.(Matrixer); !ok {
			return nil
		}
	}

	return []string{InvertExact}
}

// Invert returns the inverse of A(mu) as a MatrixBased operator.
//
// Errors:
//   - errs.ErrRequirementsNotMet (unknown option, a part without matrix).
//   - errs.ErrWrongParameterType, errs.ErrLinearSolverFailed.
func (a *Affine) Invert(option string, mu parameter.Parameter) (Operator, error) {
	if _, err := contract.ResolveInvertOption(a.InvertOptions(), option); err != nil {
		return nil, operatorErrorf(a.Name(), opInvert, err)
	}
	m, err := a.AssembleMatrix(mu)
	if err != nil {
		return nil, operatorErrorf(a.Name(), opInvert, err)
	}
	inv, err := invertDense(m)
	if err != nil {
		return nil, operatorErrorf(a.Name(), opInvert, err)
	}

	return &MatrixBased{name: fmt.Sprintf("%s at %s (inverse)", a.Name(), mu), m: inv}, nil
}

// AssembleMatrix returns the dense matrix of A(mu) = A_A + Σ_q θ_q(mu) A_q.
//
// Errors:
//   - errs.ErrRequirementsNotMet for an empty decomposition.
//   - errs.ErrInterfaceViolation if a part does not implement Matrixer.
//   - errs.ErrWrongParameterType.
func (a *Affine) AssembleMatrix(mu parameter.Parameter) (*la.Dense, error) {
	if !a.dec.WellFormed() {
		return nil, operatorErrorf(a.Name(), opAssemble, fmt.Errorf("empty decomposition: %w", errs.ErrRequirementsNotMet))
	}
	theta, err := a.dec.EvaluateCoefficients(mu)
	if err != nil {
		return nil, operatorErrorf(a.Name(), opAssemble, err)
	}
	dst, err := la.NewDense(a.DimRange(), a.DimSource())
	if err != nil {
		return nil, operatorErrorf(a.Name(), opAssemble, err)
	}

	weights := make([]float64, 0, len(theta)+1)
	if a.dec.HasAffinePart() {
		weights = append(weights, 1)
	}
	weights = append(weights, theta...)
	for i, p := range a.dec.Parts() {
		mx, err := contract.Conform[Matrixer](p)
		if err != nil {
			return nil, operatorErrorf(a.Name(), opAssemble, err)
		}
		if err = la.AddScaled(dst, weights[i], mx.Matrix()); err != nil {
			return nil, operatorErrorf(a.Name(), opAssemble, err)
		}
	}

	return dst, nil
}

// FreezeParameter returns the non-parametric operator A(mu).
//
// Errors:
//   - errs.ErrNotParametric if the decomposition has no components.
//   - errs.ErrWrongParameterType.
func (a *Affine) FreezeParameter(mu parameter.Parameter) (Operator, error) {
	if !a.Parametric() {
		return nil, operatorErrorf(a.Name(), opFreeze, errs.ErrNotParametric)
	}
	if err := a.dec.CheckParameter(mu); err != nil {
		return nil, operatorErrorf(a.Name(), opFreeze, err)
	}

	return &Frozen{op: a, mu: mu}, nil
}

func (a *Affine) partOrNil() (Operator, bool) {
	part, err := a.dec.AffinePart()

	return part, err == nil
}
