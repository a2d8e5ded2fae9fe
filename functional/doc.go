// Package functional provides scalar functionals on la.Vector: vector-based
// linear functionals and affinely decomposed parametric functionals
//
//	f(x; μ) = f_A(x) + Σ_q θ_q(μ) f_q(x)
//
// They are the outputs and right-hand sides of the parametric problems whose
// operators live in package operator, and are built the same way: directly
// with NewAffine/RegisterComponent, or declaratively with CreateAffine from a
// config.Tree whose payload types are registered in DefaultProvider.
package functional
