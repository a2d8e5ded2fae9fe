package parameter_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/parameter"
)

func TestFunctionalDiffusionForce(t *testing.T) {
	diffusion := parameter.MustFunctional(parameter.MustType([]string{"diffusion"}, []int{1}), "diffusion[0]")
	force := parameter.MustFunctional(parameter.MustType([]string{"force"}, []int{2}), "force[0] + sin(force[1])")

	d, err := diffusion.Evaluate(MustParameter(t, []string{"diffusion"}, [][]float64{{2}}))
	require.NoError(t, err)
	require.Equal(t, 2.0, d)

	f, err := force.Evaluate(MustParameter(t, []string{"force"}, [][]float64{{1, 0}}))
	require.NoError(t, err)
	require.InDelta(t, 1.0, f, 1e-15)

	f, err = force.Evaluate(MustParameter(t, []string{"force"}, [][]float64{{0, math.Pi / 2}}))
	require.NoError(t, err)
	require.InDelta(t, 1.0, f, 1e-15)
}

func TestFunctionalExpressions(t *testing.T) {
	ty := parameter.MustType([]string{"k", "x"}, []int{1, 2})
	mu := MustParameter(t, []string{"k", "x"}, [][]float64{{4}, {2, 3}})

	cases := []struct {
		expression string
		want       float64
	}{
		{"k[0] * x[0] + x[1]", 11},
		{"sqrt(k[0]) + x[0] - x[1]", 1},
		{"pow(x[0], x[1]) / k[0]", 2},
		{"exp(0 * k[0]) + log(x[0] / x[0])", 1},
		{"max(k[0], x[1]) + abs(-x[0])", 6},
		{"k[0] > 3 ? x[0] : x[1]", 2},
	}
	for _, tc := range cases {
		t.Run(tc.expression, func(t *testing.T) {
			theta, err := parameter.NewFunctional(ty, tc.expression)
			require.NoError(t, err)
			got, err := theta.Evaluate(mu)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestNewFunctionalRejects(t *testing.T) {
	ty := parameter.MustType([]string{"a", "b"}, []int{1, 1})
	cases := map[string]string{
		"empty":            "",
		"syntax":           "a[0] +",
		"unknown variable": "a[0] + b[0] + c",
		"unused name":      "a[0]",
		"non-numeric":      `a[0] > 0 && b[0] > 0`,
		"unknown function": "a[0] + frob(b[0])",
	}
	for name, expression := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parameter.NewFunctional(ty, expression)
			require.ErrorIs(t, err, errs.ErrConfiguration)
		})
	}

	require.Panics(t, func() { parameter.MustFunctional(ty, "") })
}

func TestFunctionalEvaluateWrongType(t *testing.T) {
	theta := parameter.MustFunctional(parameter.MustType([]string{"a"}, []int{2}), "a[0] + a[1]")

	_, err := theta.Evaluate(MustParameter(t, []string{"a"}, [][]float64{{1}}))
	require.ErrorIs(t, err, errs.ErrWrongParameterType)

	_, err = theta.Evaluate(MustParameter(t, []string{"b"}, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, errs.ErrWrongParameterType)

	_, err = theta.Evaluate(parameter.Parameter{})
	require.ErrorIs(t, err, errs.ErrWrongParameterType)
}

func TestFunctionalAccessors(t *testing.T) {
	ty := parameter.MustType([]string{"a"}, []int{1})
	theta := parameter.MustFunctional(ty, "2 * a[0]")
	require.Equal(t, "2 * a[0]", theta.Expression())
	require.True(t, theta.ParameterType().Equal(ty))
	require.Equal(t, "2 * a[0] over {a: 1}", theta.String())
}

func TestFunctionalConcurrentEvaluate(t *testing.T) {
	theta := parameter.MustFunctional(parameter.MustType([]string{"a"}, []int{1}), "a[0] * a[0]")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mu, err := parameter.New([]string{"a"}, [][]float64{{float64(i)}})
			if err != nil {
				t.Error(err)
				return
			}
			got, err := theta.Evaluate(mu)
			if err != nil || got != float64(i*i) {
				t.Errorf("Evaluate(%d) = %v, %v", i, got, err)
			}
		}(i)
	}
	wg.Wait()
}
