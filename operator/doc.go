// Package operator provides linear operators on la.Vector: explicit matrices,
// diagonals, and affinely decomposed parametric operators
//
//	A(μ) = A_A + Σ_q θ_q(μ) A_q
//
// built on package affine.
//
// Affine.Apply never assembles A(μ): it applies every part and accumulates the
// weighted results, so the parts can be any Operator of matching dimensions.
// Inversion assembles the dense matrix of A(μ) and therefore requires every
// part to implement Matrixer.
//
// FreezeParameter binds μ and returns a non-parametric Frozen operator, the
// usual shape handed to solvers:
//
//	op, _ := operator.CreateAffine(cfg)
//	frozen, _ := op.FreezeParameter(mu)
//	u, _ := contract.ApplyInverseNew[*la.Vector](frozen, rhs, "", parameter.Parameter{})
//
// Configuration types are registered in a provider.Registry (see NewProvider);
// the package-level DefaultProvider is shared and safe for concurrent use.
package operator
