// Package parameter models the parameter space of parametric objects.
//
// A parameter type (Type) declares named components and their sizes, e.g.
// {diffusion: 1, force: 2}. A parameter (Parameter) assigns values to such
// names and is checked against a declared type before use. Objects that depend
// on a parameter embed Parametric, which aggregates the types of everything
// they contain under disambiguating aliases and rejects conflicting sizes.
//
// Functional is a scalar coefficient θ(μ) given as an arithmetic expression
// over the declared names:
//
//	t := parameter.MustType([]string{"force"}, []int{2})
//	theta, _ := parameter.NewFunctional(t, "force[0] + sin(force[1])")
//	mu, _ := parameter.New([]string{"force"}, [][]float64{{1, 0}})
//	v, _ := theta.Evaluate(mu) // 1
//
// Expressions are compiled once with expr-lang/expr; evaluation is safe for
// concurrent use.
package parameter
