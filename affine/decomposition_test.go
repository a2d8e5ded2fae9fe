// Package affine_test covers the decomposition container and declarative
// construction, using plain strings as payloads.
package affine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/paramop/affine"
	"github.com/katalvlaran/paramop/contract"
	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/parameter"
)

// MustCoefficient compiles expression over the given names/sizes or fails the test.
func MustCoefficient(t *testing.T, expression string, names []string, sizes []int) *parameter.Functional {
	t.Helper()
	ty, err := parameter.NewType(names, sizes)
	require.NoError(t, err)
	theta, err := parameter.NewFunctional(ty, expression)
	require.NoError(t, err)

	return theta
}

var _ contract.Parametric = (*affine.Decomposition[string])(nil)

type DecompositionSuite struct {
	suite.Suite
	dec *affine.Decomposition[string]
}

func (s *DecompositionSuite) SetupTest() {
	s.dec = affine.New[string](affine.WithName("dec"))
}

func (s *DecompositionSuite) TestEmpty() {
	s.False(s.dec.WellFormed())
	s.False(s.dec.HasAffinePart())
	s.False(s.dec.Parametric())
	s.Zero(s.dec.NumComponents())

	_, err := s.dec.AffinePart()
	s.ErrorIs(err, errs.ErrRequirementsNotMet)
	_, err = s.dec.Component(0)
	s.ErrorIs(err, errs.ErrIndexOutOfRange)
	_, err = s.dec.Coefficient(0)
	s.ErrorIs(err, errs.ErrIndexOutOfRange)
}

func (s *DecompositionSuite) TestRegistrationOrder() {
	t := s.T()
	theta0 := MustCoefficient(t, "a[0]", []string{"a"}, []int{1})
	theta1 := MustCoefficient(t, "2 * b[0]", []string{"b"}, []int{1})

	s.Require().NoError(s.dec.RegisterComponent("X", theta0))
	s.Require().NoError(s.dec.RegisterComponent("Y", theta1))
	s.Equal(2, s.dec.NumComponents())

	c0, err := s.dec.Component(0)
	s.Require().NoError(err)
	s.Equal("X", c0)
	c1, err := s.dec.Component(1)
	s.Require().NoError(err)
	s.Equal("Y", c1)

	got, err := s.dec.Coefficient(1)
	s.Require().NoError(err)
	s.Same(theta1, got)
	s.Equal([]string{"X", "Y"}, s.dec.Components())

	for _, q := range []int{-1, 2} {
		_, err = s.dec.Component(q)
		s.ErrorIs(err, errs.ErrIndexOutOfRange)
		_, err = s.dec.Coefficient(q)
		s.ErrorIs(err, errs.ErrIndexOutOfRange)
	}
	s.True(s.dec.WellFormed())
	s.True(s.dec.Parametric())
}

func (s *DecompositionSuite) TestAffinePartOnlyOnce() {
	s.Require().NoError(s.dec.RegisterAffinePart("A"))
	s.ErrorIs(s.dec.RegisterAffinePart("B"), errs.ErrRequirementsNotMet)

	part, err := s.dec.AffinePart()
	s.Require().NoError(err)
	s.Equal("A", part)
	s.True(s.dec.WellFormed())
	s.False(s.dec.Parametric())
}

func (s *DecompositionSuite) TestParameterTypeAggregation() {
	t := s.T()
	s.Require().NoError(s.dec.RegisterComponent("X", MustCoefficient(t, "a[0] + a[1]", []string{"a"}, []int{2})))
	s.Require().NoError(s.dec.RegisterComponent("Y", MustCoefficient(t, "a[1]", []string{"a"}, []int{2})))

	err := s.dec.RegisterComponent("Z", MustCoefficient(t, "a[2]", []string{"a"}, []int{3}))
	s.ErrorIs(err, errs.ErrParameterTypeConflict)
	s.Equal(2, s.dec.NumComponents(), "failed registration leaves the decomposition unchanged")
	s.True(s.dec.ParameterType().Equal(parameter.MustType([]string{"a"}, []int{2})))

	s.ErrorIs(s.dec.RegisterComponent("W", nil), errs.ErrRequirementsNotMet)
	s.Equal(2, s.dec.NumComponents())
}

func (s *DecompositionSuite) TestEvaluateCoefficients() {
	t := s.T()
	s.Require().NoError(s.dec.RegisterComponent("diffusion",
		MustCoefficient(t, "diffusion[0]", []string{"diffusion"}, []int{1})))
	s.Require().NoError(s.dec.RegisterComponent("force",
		MustCoefficient(t, "force[0] + sin(force[1])", []string{"force"}, []int{2})))

	mu, err := parameter.New([]string{"diffusion", "force"}, [][]float64{{2}, {1, 0}})
	s.Require().NoError(err)
	theta, err := s.dec.EvaluateCoefficients(mu)
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{2, 1}, theta, 1e-15)

	bad, err := parameter.New([]string{"diffusion"}, [][]float64{{2}})
	s.Require().NoError(err)
	_, err = s.dec.EvaluateCoefficients(bad)
	s.ErrorIs(err, errs.ErrWrongParameterType)
}

func (s *DecompositionSuite) TestCheckRejectsPayload() {
	errOdd := errors.New("odd payload")
	var seen [][]string
	dec := affine.New[string](affine.WithCheck(func(existing []string, c string) error {
		seen = append(seen, existing)
		if c == "bad" {
			return errOdd
		}
		return nil
	}))
	s.ErrorIs(dec.RegisterAffinePart("bad"), errOdd)
	s.False(dec.HasAffinePart())

	err := dec.RegisterComponent("bad", MustCoefficient(s.T(), "a[0]", []string{"a"}, []int{1}))
	s.ErrorIs(err, errOdd)
	s.Zero(dec.NumComponents())
	s.False(dec.Parametric())

	s.Require().NoError(dec.RegisterAffinePart("A"))
	s.Require().NoError(dec.RegisterComponent("X", MustCoefficient(s.T(), "a[0]", []string{"a"}, []int{1})))
	s.Require().NoError(dec.RegisterComponent("Y", MustCoefficient(s.T(), "a[0]", []string{"a"}, []int{1})))
	s.Equal([]string{"A", "X"}, seen[len(seen)-1])
	s.Equal([]string{"A", "X", "Y"}, dec.Parts())
}

func (s *DecompositionSuite) TestRestrictPerCoefficient() {
	t := s.T()
	s.Require().NoError(s.dec.RegisterComponent("X", MustCoefficient(t, "a[0]", []string{"a"}, []int{1})))
	s.Require().NoError(s.dec.RegisterComponent("Y", MustCoefficient(t, "b[0] + b[1]", []string{"b"}, []int{2})))

	mu, err := parameter.New([]string{"a", "b"}, [][]float64{{1}, {2, 3}})
	s.Require().NoError(err)
	s.Require().NoError(s.dec.CheckParameter(mu))

	sub, err := s.dec.Restrict(mu, 1)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, sub.Names())

	_, err = s.dec.Restrict(mu, 2)
	s.ErrorIs(err, errs.ErrRequirementsNotMet)
	s.ErrorIs(s.dec.CheckParameter(parameter.Parameter{}), errs.ErrWrongParameterType)
}

func TestDecompositionSuite(t *testing.T) {
	suite.Run(t, new(DecompositionSuite))
}

func TestConstructors(t *testing.T) {
	d, err := affine.NewWithAffinePart("A")
	require.NoError(t, err)
	require.True(t, d.HasAffinePart())
	require.Equal(t, affine.DefaultStaticID, d.Name())

	d, err = affine.NewWithComponent("X", MustCoefficient(t, "k[0]", []string{"k"}, []int{1}), affine.WithStaticID("thing"))
	require.NoError(t, err)
	require.Equal(t, 1, d.NumComponents())
	require.Equal(t, "thing", d.Name())
	require.Equal(t, "thing", d.StaticID())

	_, err = affine.NewWithComponent[string]("X", nil)
	require.ErrorIs(t, err, errs.ErrRequirementsNotMet)

	require.Equal(t, "coefficient_3", affine.CoefficientAlias(3))
}

func TestOptionsPanic(t *testing.T) {
	require.Panics(t, func() { affine.WithName("") })
	require.Panics(t, func() { affine.WithStaticID("") })
	require.Panics(t, func() { affine.WithSubName("") })
	require.Panics(t, func() { affine.WithLogger(nil) })
	require.Panics(t, func() { affine.WithCheck[string](nil) })
}

func TestCheckForOtherPayloadTypePanics(t *testing.T) {
	intCheck := affine.WithCheck(func([]int, int) error { return nil })
	require.Panics(t, func() { affine.New[string](intCheck) })
	require.NotPanics(t, func() { affine.New[int](intCheck) })
}

func TestRegistrationIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := affine.New[string](affine.WithLogger(zap.New(core)))
	require.NoError(t, d.RegisterAffinePart("A"))
	require.NoError(t, d.RegisterComponent("X", MustCoefficient(t, "k[0]", []string{"k"}, []int{1})))

	entries := logs.FilterMessage("component registered").All()
	require.Len(t, entries, 1)
	require.Equal(t, "k[0]", entries[0].ContextMap()["coefficient"])
	require.Equal(t, 1, logs.FilterMessage("affine part registered").Len())
}
