// Package affine implements the affine decomposition engine.
//
// A Decomposition[C] stores an optional affine part C_A and an ordered list
// of (C_q, θ_q) pairs, representing C(μ) = C_A + Σ θ_q(μ) C_q. The payload
// type C is whatever the consumer combines (operators, functionals, vectors);
// the engine only stores payloads, aggregates the parameter types of the
// coefficients, and evaluates θ_0(μ), …, θ_{N-1}(μ).
//
// Create builds a decomposition from a config.Tree and a Factory (usually a
// provider.Registry); DefaultConfig produces a tree Create accepts.
//
// Parameter types are absorbed under the aliases "coefficient_0",
// "coefficient_1", …; two coefficients may share a parameter name only with
// the same size.
package affine
