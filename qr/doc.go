// Package qr factors a dense real matrix A (m×n) into an orthogonal Q (m×m)
// and an upper-triangular R (m×n) with Q·R = A, using Householder reflections.
//
// What & Why:
//
//	Each step takes the sub-column x = R[k:, k], builds the unit vector
//	u = (x + ‖x‖·e₁)/‖x + ‖x‖·e₁‖, forms the reflector H_sub = I − 2uuᵀ on the
//	trailing block, embeds it into an m×m identity and updates
//	Q ← Q·Hᵀ, R ← H·R. The loop stops when k reaches either dimension or when
//	the sub-column has a single entry.
//
// Key properties:
//   - Rectangular input is legal: tall, wide and square matrices all factor.
//   - The input matrix is never mutated; Q and R are fresh allocations.
//   - A vanishing Householder vector (x = 0, or x a negative multiple of e₁)
//     is an identity reflection: the column is already reduced.
//   - The additive sign rule is the default. WithSignCorrection switches to
//     u = x + sign(x₀)·‖x‖·e₁, which avoids cancellation when x₀ < 0.
//
// Usage:
//
//	a, _ := matrix.Parse("1,1,4;2,1,4")
//	res, err := qr.Decompose(a)
//	if err != nil {
//	  // only nil input or accessor failures
//	}
//	fmt.Print(res.Q, res.R)
//
// Complexity:
//
//	min(m-1, n) reflections, each formed explicitly and applied with dense
//	products: O(min(m,n)·m²·(m+n)) time, O(m² + m·n) memory.
package qr
