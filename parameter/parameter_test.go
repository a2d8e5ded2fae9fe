package parameter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/errs"
	"github.com/katalvlaran/paramop/parameter"
)

// MustParameter builds a Parameter or fails the test.
func MustParameter(t *testing.T, names []string, values [][]float64) parameter.Parameter {
	t.Helper()
	mu, err := parameter.New(names, values)
	require.NoError(t, err)

	return mu
}

func TestNewParameterErrors(t *testing.T) {
	cases := []struct {
		name   string
		names  []string
		values [][]float64
		err    error
	}{
		{"length mismatch", []string{"a", "b"}, [][]float64{{1}}, errs.ErrSizesDoNotMatch},
		{"empty group", []string{"a"}, [][]float64{{}}, errs.ErrSizesDoNotMatch},
		{"empty name", []string{""}, [][]float64{{1}}, errs.ErrConfiguration},
		{"duplicate", []string{"a", "a"}, [][]float64{{1}, {2}}, errs.ErrConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parameter.New(tc.names, tc.values)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParameterTypeAndCheck(t *testing.T) {
	mu := MustParameter(t, []string{"diffusion", "force"}, [][]float64{{2}, {1, 0}})
	want := parameter.MustType([]string{"force", "diffusion"}, []int{2, 1})

	require.True(t, mu.IsOfType(want))
	require.NoError(t, mu.Check(want))
	require.Equal(t, "{diffusion: [2], force: [1 0]}", mu.String())

	short := parameter.MustType([]string{"diffusion", "force"}, []int{1, 3})
	require.ErrorIs(t, mu.Check(short), errs.ErrSizesDoNotMatch)

	other := parameter.MustType([]string{"diffusion", "load"}, []int{1, 2})
	require.ErrorIs(t, mu.Check(other), errs.ErrWrongParameterType)
	require.ErrorIs(t, mu.Check(parameter.Type{}), errs.ErrWrongParameterType)

	require.NoError(t, parameter.Parameter{}.Check(parameter.Type{}))
}

func TestNewOfType(t *testing.T) {
	ty := parameter.MustType([]string{"a"}, []int{2})
	_, err := parameter.NewOfType(ty, []string{"a"}, [][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = parameter.NewOfType(ty, []string{"a"}, [][]float64{{1}})
	require.ErrorIs(t, err, errs.ErrSizesDoNotMatch)
}

func TestParameterValueIsCopied(t *testing.T) {
	src := [][]float64{{1, 2}}
	mu := MustParameter(t, []string{"a"}, src)
	src[0][0] = 99

	v, ok := mu.Value("a")
	require.True(t, ok)
	require.Equal(t, []float64{1, 2}, v)
	v[1] = 42
	again, _ := mu.Value("a")
	require.Equal(t, 2.0, again[1])

	_, ok = mu.Value("missing")
	require.False(t, ok)
}

func TestFromMapSortsNames(t *testing.T) {
	mu, err := parameter.FromMap(map[string][]float64{"z": {1}, "a": {2, 3}})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"a", "z"}, mu.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestParameterRestrict(t *testing.T) {
	mu := MustParameter(t, []string{"diffusion", "force"}, [][]float64{{2}, {1, 0}})

	sub, err := mu.Restrict(parameter.MustType([]string{"force"}, []int{2}))
	require.NoError(t, err)
	require.Equal(t, []string{"force"}, sub.Names())

	_, err = mu.Restrict(parameter.MustType([]string{"force"}, []int{3}))
	require.ErrorIs(t, err, errs.ErrWrongParameterType)
	_, err = mu.Restrict(parameter.MustType([]string{"load"}, []int{1}))
	require.ErrorIs(t, err, errs.ErrWrongParameterType)

	empty, err := mu.Restrict(parameter.Type{})
	require.NoError(t, err)
	require.True(t, empty.Empty())
}
