// Package matrix offers dense linear-algebra primitives for the factorization
// and eigenvalue packages.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over 2-D float64 data, and Dense,
//     its row-major implementation with a NaN/Inf numeric policy.
//   - Kernels: Identity, Mul, Transpose, Trace.
//   - Verification helpers: MaxAbsDiff, Equal, IsUpperTriangular, IsOrthogonal.
//   - Construction from literal data (NewFromRows, Parse) and gonum interop
//     (FromGonum, ToGonum).
//
// All operations allocate fresh results; inputs are never mutated. Errors are
// package sentinels matched with errors.Is.
//
// See the examples in this package and in qr and eigen for usage patterns.
package matrix
