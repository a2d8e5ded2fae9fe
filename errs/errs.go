// SPDX-License-Identifier: MIT
// Package: paramop/errs
//
// errs.go — the shared error kinds of every paramop package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, errs.ErrX) to branch on semantics.
//   • Packages attach context with `%w` at the detection site; package-local
//     sentinels (la.ErrSingular, provider.ErrUnknownType, ...) either alias or
//     wrap one of these kinds so that errors.Is keeps working across layers.
//   • All kinds are synchronous and non-retryable: they signal programmer or
//     configuration mistakes, never transient conditions.

package errs

import "errors"

var (
	// ErrConfiguration marks malformed or incomplete declarative input:
	// missing type/expression keys, mismatched component/coefficient pairs,
	// decompositions with neither affine part nor components.
	ErrConfiguration = errors.New("configuration error")

	// ErrInterfaceViolation marks a value that does not satisfy a required
	// capability contract.
	ErrInterfaceViolation = errors.New("interface violation")

	// ErrRequirementsNotMet marks a violated precondition, e.g. AffinePart()
	// without an affine part, or registering a second affine part.
	ErrRequirementsNotMet = errors.New("requirements not met")

	// ErrIndexOutOfRange marks Component(q)/Coefficient(q) with q outside
	// [0, NumComponents()) and out-of-bounds container access.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSizesDoNotMatch marks a vector/matrix dimension mismatch.
	ErrSizesDoNotMatch = errors.New("sizes do not match")

	// ErrWrongParameterType marks a Parameter whose shape differs from the
	// declared parameter type of the receiving object.
	ErrWrongParameterType = errors.New("wrong parameter type")

	// ErrParameterTypeConflict marks two absorbed parameter types declaring
	// the same name with different sizes.
	ErrParameterTypeConflict = errors.New("parameter type conflict")

	// ErrNotParametric marks FreezeParameter on an object whose parameter
	// type is empty.
	ErrNotParametric = errors.New("this is not parametric")

	// ErrLinearSolverFailed marks a failed inversion (singular pivot, no
	// convergence).
	ErrLinearSolverFailed = errors.New("linear solver failed")

	// ErrThisDoesNotMakeAnySense marks an operation that is logically invalid
	// for the concrete type.
	ErrThisDoesNotMakeAnySense = errors.New("this does not make any sense")
)
