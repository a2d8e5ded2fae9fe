// Package contract declares the capability contracts of paramop and the
// generic algorithms written against them.
//
// Capability families:
//
//   - Vector[V]: the container capability (Copy, Dot, Axpy, Scale, indexed
//     access) every operator and functional is generic over.
//   - Functional[V] and AffinelyDecomposedFunctional[V]: scalar maps V → ℝ.
//   - Operator[S,R] and AffinelyDecomposedOperator[S,R]: maps S → R that
//     write into caller-supplied range vectors.
//
// Conformance is checked by the compiler: each concrete type carries
// `var _ contract.Operator[*la.Vector, *la.Vector] = (*T)(nil)` assertions,
// so a type missing a capability method fails the build. Values that only
// become known at run time (factory output, `any`) are checked with Conform,
// which reports errs.ErrInterfaceViolation.
//
// Tags give a cheap run-time classification (functional vs operator, plain vs
// affinely decomposed) without type switches over concrete types.
//
// Algorithms:
//
//	ApplyNew         allocate the range from the source's shape, then Apply
//	Apply2           ⟨r, op(s)⟩ via one Apply and Dot, or the Apply2er override
//	ApplyInverse     Invert(option, μ) followed by Apply of the inverse
//	ApplyInverseNew  allocating variant of ApplyInverse
package contract
