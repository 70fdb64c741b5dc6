// Package eigen approximates the eigenvalues of a real square matrix with the
// unshifted QR algorithm.
//
// 🚀 What is the QR algorithm?
//
//	Starting from A₀ = A, each step factors A_k = Q_k·R_k (package qr) and
//	recombines A_{k+1} = R_k·Q_k. Every iterate is orthogonally similar to A,
//	and for many matrices the sequence converges to an upper quasi-triangular
//	matrix: upper-triangular except for isolated 2×2 diagonal blocks, each
//	carrying a complex-conjugate pair.
//
// ✨ Key features:
//   - tagged eigenvalues (KindReal / KindComplex) read off 1×1 and 2×2 blocks
//   - explicit convergence status: Result.Converged tells "met tolerance"
//     apart from "iteration budget exhausted"; values are returned either way
//   - one entry per diagonal-block eigenvalue (multiplicity kept);
//     WithDeduplicate or Unique give set semantics on request
//   - optional zap logger for per-iteration tracing
//
// ⚙️ Usage:
//
//	a, _ := matrix.Parse("2,1;1,2")
//	res, err := eigen.Solve(a, eigen.WithTolerance(1e-9))
//	if err != nil {
//	  // *DimensionError for non-square input
//	}
//	fmt.Println(res.Values, res.Converged)
//
// Performance:
//
//   - Time:   O(I·n⁴) with explicit reflectors, I = iterations
//   - Memory: O(n²) per iteration; no state survives a call
package eigen
