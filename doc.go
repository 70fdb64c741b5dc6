// Package spectra is a small numeric toolkit: explicit Householder QR
// factorization and an eigenvalue approximator built on top of it.
//
// 🚀 What is spectra?
//
//	Two composable capabilities over a bounds-checked dense matrix:
//		• QR factorization: A = Q·R for any rows×cols matrix, Q orthogonal,
//		  R upper-triangular, built from explicit Householder reflections
//		• Eigenvalues: the unshifted QR algorithm, reading real values and
//		  complex-conjugate pairs off the diagonal blocks of the last iterate
//
// ✨ Why spectra?
//
//   - Readable: every reflection is an explicit matrix, easy to inspect
//   - Honest: non-convergence is reported, never hidden or turned into an error
//   - Sentinel errors: match with errors.Is, wrapped with the failing operation
//   - Quiet by default: logging only through an injected zap logger
//
// Under the hood, everything is organized under three packages and a command:
//
//	matrix/       Dense storage, validators, kernels, literal parsing, gonum interop
//	qr/           Householder reflectors and Decompose
//	eigen/        Solve, Extract, tagged Eigenvalue values
//	cmd/spectra/  command-line front end (qr, eigen)
//
// Quick example:
//
//	a, _ := matrix.Parse("2,1;1,2")
//	res, _ := eigen.Solve(a)
//	fmt.Println(res.Values) // [3 1] (within 1e-6)
//
//	go get github.com/katalvlaran/spectra
package spectra
