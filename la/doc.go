// Package la is the reference linear-algebra container backend of paramop.
//
// The la package provides:
//
//   - Vector: a dense float64 vector exposing Copy, Dot, Axpy, Scale and
//     bounds-checked At/Set, i.e. exactly the vector capability operators
//     and functionals are written against.
//   - Dense: a row-major matrix with safe accessors.
//   - Kernels: MatVec, Bilinear, AddScaled (affine assembly), LU, Solve and
//     Inverse (LU with partial pivoting, deterministic).
//
// Dense storage is best for the small reduced systems produced by model
// order reduction, where O(n²) memory and O(n³) factorization are acceptable.
// Production discretizations plug their own containers in through the
// contract package instead.
package la
