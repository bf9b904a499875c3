// Package matrix offers dense row-major matrices and the linear-algebra
// kernels built on them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked, error-returning
//     accessors and an optional finite-only numeric policy.
//   - Arithmetic kernels (Add, Sub, Mul, Scale, Transpose) with flat
//     fast-paths for *Dense and generic fallbacks for any Matrix.
//   - LU (Doolittle, no pivoting) and Inverse, with singularity decided by a
//     configurable epsilon (WithEpsilon).
//   - Validators (ValidateSquare, ValidateWellFormed, ...) shared by kernels
//     and by callers that accept matrices of unknown provenance.
//   - AllClose for epsilon-tolerant comparison of results.
//
// All operations are deterministic: fixed loop orders, no randomness, no map
// iteration. Failures are reported as wrapped sentinel errors (ErrSingular,
// ErrNonSquare, ...) matchable with errors.Is.
//
// See the examples in this package and memo for usage patterns.
package matrix
