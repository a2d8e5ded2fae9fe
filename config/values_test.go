package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramop/config"
)

func TestTypedGetters(t *testing.T) {
	tree := MustTree(t,
		"size", " 2 ",
		"scale", "1e-3",
		"vec", "[1 2.5 -3]",
		"csv", "1, 2, 3",
		"mat", "[1 2; 3 4]",
		"bad", "two",
		"ragged", "[1 2; 3]",
	)

	n, err := tree.GetInt("size")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	x, err := tree.GetFloat("scale")
	require.NoError(t, err)
	require.Equal(t, 1e-3, x)

	v, err := tree.GetFloats("vec")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5, -3}, v)

	v, err = tree.GetFloats("csv")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, v)

	m, err := tree.GetMatrix("mat")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = tree.GetInt("bad")
	require.ErrorIs(t, err, config.ErrMalformedValue)
	_, err = tree.GetFloat("bad")
	require.ErrorIs(t, err, config.ErrMalformedValue)
	_, err = tree.GetFloats("bad")
	require.ErrorIs(t, err, config.ErrMalformedValue)
	_, err = tree.GetMatrix("ragged")
	require.ErrorIs(t, err, config.ErrMalformedValue)
	_, err = tree.GetInt("missing")
	require.ErrorIs(t, err, config.ErrKeyNotFound)
}

func TestParseFloatsEmpty(t *testing.T) {
	_, err := config.ParseFloats("[]")
	require.ErrorIs(t, err, config.ErrMalformedValue)
}

func TestFormatLiterals(t *testing.T) {
	require.Equal(t, "[1 0.5 -2]", config.FormatFloats([]float64{1, 0.5, -2}))
	require.Equal(t, "[1 2; 3 4]", config.FormatMatrix([][]float64{{1, 2}, {3, 4}}))

	m, err := config.ParseMatrix(config.FormatMatrix([][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)
}
