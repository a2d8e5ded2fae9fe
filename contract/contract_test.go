// Package contract_test exercises the generic algorithms against a small
// scaling operator over la.Vector.
package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/la"
	"github.com/katalvlaran/paramop/parameter"
)

// scaler is y = alpha·x on ℝⁿ.
type scaler struct {
	n      int
	alpha  float64
	apply2 int // number of Apply2 override calls (fast variant only)
}

var _ contract.Operator[*la.Vector, *la.Vector] = (*scaler)(nil)

func (s *scaler) ParameterType() parameter.Type { return parameter.Type{} }
func (s *scaler) Parametric() bool              { return false }
func (s *scaler) Tags() contract.Tag            { return contract.TagOperator }
func (s *scaler) Name() string                  { return "scaler" }
func (s *scaler) Linear() bool                  { return true }
func (s *scaler) DimSource() int                { return s.n }
func (s *scaler) DimRange() int                 { return s.n }
func (s *scaler) InvertOptions() []string       { return []string{"exact", "also-exact"} }

func (s *scaler) Apply(source, rng *la.Vector, mu parameter.Parameter) error {
	if !mu.Empty() {
		return errs.ErrWrongParameterType
	}
	if source.Dim() != s.n || rng.Dim() != s.n {
		return errs.ErrSizesDoNotMatch
	}
	for i := 0; i < s.n; i++ {
		x, _ := source.At(i)
		if err := rng.Set(i, s.alpha*x); err != nil {
			return err
		}
	}

	return nil
}

func (s *scaler) Invert(option string, mu parameter.Parameter) (contract.Operator[*la.Vector, *la.Vector], error) {
	if _, err := contract.ResolveInvertOption(s.InvertOptions(), option); err != nil {
		return nil, err
	}
	if s.alpha == 0 {
		return nil, fmt.Errorf("zero scale: %w", errs.ErrLinearSolverFailed)
	}

	return &scaler{n: s.n, alpha: 1 / s.alpha}, nil
}

func (s *scaler) FreezeParameter(parameter.Parameter) (contract.Operator[*la.Vector, *la.Vector], error) {
	return nil, errs.ErrNotParametric
}

// fastScaler overrides Apply2.
type fastScaler struct{ scaler }

var _ contract.Apply2er[*la.Vector, *la.Vector] = (*fastScaler)(nil)

func (f *fastScaler) Apply2(rng, source *la.Vector, _ parameter.Parameter) (float64, error) {
	f.apply2++
	d, err := rng.Dot(source)

	return f.alpha * d, err
}

func mustVec(t *testing.T, values ...float64) *la.Vector {
	t.Helper()
	v, err := la.NewVectorFrom(values)
	require.NoError(t, err)

	return v
}

func TestApplyNew(t *testing.T) {
	op := &scaler{n: 3, alpha: 2}
	src := mustVec(t, 1, 2, 3)

	out, err := contract.ApplyNew[*la.Vector](op, src, parameter.Parameter{})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, out.Values())
	require.Equal(t, []float64{1, 2, 3}, src.Values(), "source untouched")

	_, err = contract.ApplyNew[*la.Vector](op, mustVec(t, 1), parameter.Parameter{})
	require.ErrorIs(t, err, errs.ErrSizesDoNotMatch)
}

func TestApply2DefaultMatchesOverride(t *testing.T) {
	r := mustVec(t, 1, 0, -1)
	s := mustVec(t, 3, 4, 5)

	plain := &scaler{n: 3, alpha: 2}
	fast := &fastScaler{scaler{n: 3, alpha: 2}}

	want, err := contract.Apply2[*la.Vector, *la.Vector](plain, r, s, parameter.Parameter{})
	require.NoError(t, err)
	require.Equal(t, -4.0, want)

	got, err := contract.Apply2[*la.Vector, *la.Vector](fast, r, s, parameter.Parameter{})
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 1, fast.apply2)

	_, err = contract.Apply2[*la.Vector, *la.Vector](plain, mustVec(t, 1), s, parameter.Parameter{})
	require.ErrorIs(t, err, errs.ErrSizesDoNotMatch)
}

func TestResolveInvertOption(t *testing.T) {
	cases := []struct {
		options []string
		option  string
		want    string
		err     error
	}{
		{[]string{"exact", "cg"}, "", "exact", nil},
		{[]string{"exact", "cg"}, "cg", "cg", nil},
		{[]string{"exact"}, "lu", "", errs.ErrRequirementsNotMet},
		{nil, "", "", errs.ErrRequirementsNotMet},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v/%q", tc.options, tc.option), func(t *testing.T) {
			got, err := contract.ResolveInvertOption(tc.options, tc.option)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApplyInverse(t *testing.T) {
	op := &scaler{n: 2, alpha: 4}
	x := mustVec(t, 1, -2)

	y, err := contract.ApplyNew[*la.Vector](op, x, parameter.Parameter{})
	require.NoError(t, err)

	back, err := contract.ApplyInverseNew[*la.Vector](op, y, "", parameter.Parameter{})
	require.NoError(t, err)
	require.Equal(t, x.Values(), back.Values())

	into := mustVec(t, 0, 0)
	require.NoError(t, contract.ApplyInverse[*la.Vector, *la.Vector](op, y, into, "also-exact", parameter.Parameter{}))
	require.Equal(t, x.Values(), into.Values())

	err = contract.ApplyInverse[*la.Vector, *la.Vector](op, y, into, "nope", parameter.Parameter{})
	require.ErrorIs(t, err, errs.ErrRequirementsNotMet)

	_, err = contract.ApplyInverseNew[*la.Vector](&scaler{n: 2}, y, "", parameter.Parameter{})
	require.ErrorIs(t, err, errs.ErrLinearSolverFailed)
}

func TestTags(t *testing.T) {
	require.True(t, contract.TagAffinelyDecomposedOperator.Has(contract.TagOperator))
	require.False(t, contract.TagOperator.Has(contract.TagAffinelyDecomposedOperator))
	require.True(t, contract.TagAffinelyDecomposedFunctional.Has(contract.TagFunctional))
	require.False(t, contract.TagAffinelyDecomposedFunctional.Has(contract.TagOperator))
	require.False(t, contract.TagOperator.Has(0))

	require.Equal(t, "AffinelyDecomposedOperator", contract.TagAffinelyDecomposedOperator.String())
	require.Equal(t, "Functional", contract.TagFunctional.String())
	require.Equal(t, "None", contract.Tag(0).String())

	require.True(t, contract.HasTag(&scaler{}, contract.TagOperator))
	require.False(t, contract.HasTag(&scaler{}, contract.TagFunctional))
	require.False(t, contract.HasTag(42, contract.TagOperator))
}

func TestConform(t *testing.T) {
	var v any = &scaler{n: 1, alpha: 1}
	op, err := contract.Conform[contract.Operator[*la.Vector, *la.Vector]](v)
	require.NoError(t, err)
	require.Equal(t, "scaler", op.Name())

	_, err = contract.Conform[contract.Apply2er[*la.Vector, *la.Vector]](v)
	require.ErrorIs(t, err, errs.ErrInterfaceViolation)

	_, err = contract.Conform[contract.Functional[*la.Vector]]("not a functional")
	require.ErrorIs(t, err, errs.ErrInterfaceViolation)
	_, err = contract.Conform[contract.Tagged](nil)
	require.ErrorIs(t, err, errs.ErrInterfaceViolation)

	require.Panics(t, func() { contract.MustConform[contract.Tagged](3.14) })
}
