// Package paramop models parametric, affinely decomposed operators and
// functionals for reduced-order modeling of parametrized PDEs:
//
//	A(μ) = A_A + Σ_q θ_q(μ) A_q        f(x; μ) = f_A(x) + Σ_q θ_q(μ) f_q(x)
//
// The non-parametric parts A_A, A_q are plain matrices, diagonals or vectors;
// the coefficients θ_q are expressions over named parameter components.
//
// Packages:
//
//	errs/       — shared error kinds (errors.Is across every layer)
//	la/         — dense vectors and matrices, MatVec, LU, Inverse
//	parameter/  — parameter types, values μ and coefficient expressions θ(μ)
//	contract/   — Operator/Functional interfaces, tags, generic algorithms
//	config/     — dotted-key configuration tree with YAML load/dump
//	provider/   — type-name → constructor registries
//	affine/     — the generic decomposition container and its declarative Create
//	operator/   — matrix, diagonal, affine and frozen operators
//	functional/ — vector, affine and frozen functionals
//
// A typical flow reads a YAML file, creates the decomposed operator and
// right-hand side, freezes them at μ and solves:
//
//	cfg, _ := config.Load("problem.yaml")
//	a, _ := operator.CreateAffine(cfg, affine.WithSubName("operator"))
//	frozen, _ := a.FreezeParameter(mu)
//	u, _ := contract.ApplyInverseNew[*la.Vector](frozen, rhs, "", parameter.Parameter{})
//
// See examples/stationary for a complete program.
package paramop
