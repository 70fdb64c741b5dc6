// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/spectra/matrix"
)

// Extract reads eigenvalues off the diagonal of a quasi-triangular matrix m.
//
// Scanning index i from 0: if |m[i+1,i]| < tol the entry m[i,i] is a 1×1
// block and is recorded as real; otherwise the 2×2 block at (i,i) is solved
// through its characteristic polynomial λ² − (a+d)λ + (ad − bc) and both
// roots are recorded (real roots larger first, complex pairs +Im first).
// A trailing diagonal entry left over by the scan is recorded as real.
//
// Errors: ErrNilMatrix, *DimensionError for non-square m, ErrInvalidTolerance.
func Extract(m matrix.Matrix, tol float64) ([]Eigenvalue, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, eigenErrorf(opExtract, err)
	}
	if m.Rows() != m.Cols() {
		return nil, &DimensionError{Op: opExtract, Rows: m.Rows(), Cols: m.Cols()}
	}
	if err := matrix.ValidateTolerance(tol); err != nil {
		return nil, eigenErrorf(opExtract, err)
	}

	n := m.Rows()
	values := make([]Eigenvalue, 0, n)
	var (
		index      int
		a, b, c, d float64
		err        error
	)
	for index < n-1 {
		if c, err = m.At(index+1, index); err != nil {
			return nil, eigenErrorf(opExtract, err)
		}
		if a, err = m.At(index, index); err != nil {
			return nil, eigenErrorf(opExtract, err)
		}
		if math.Abs(c) < tol {
			values = append(values, RealValue(a))
			index++
			continue
		}
		if b, err = m.At(index, index+1); err != nil {
			return nil, eigenErrorf(opExtract, err)
		}
		if d, err = m.At(index+1, index+1); err != nil {
			return nil, eigenErrorf(opExtract, err)
		}
		first, second := blockRoots(a, b, c, d)
		values = append(values, first, second)
		index += 2
	}
	if index == n-1 {
		if a, err = m.At(index, index); err != nil {
			return nil, eigenErrorf(opExtract, err)
		}
		values = append(values, RealValue(a))
	}

	return values, nil
}

// blockRoots solves λ² − (a+d)λ + (ad − bc) = 0 for the block [[a,b],[c,d]].
// The discriminant is taken in the centred form ((a−d)/2)² + bc, which equals
// ((a+d)² − 4(ad − bc))/4 without the cancellation of the expanded form.
func blockRoots(a, b, c, d float64) (Eigenvalue, Eigenvalue) {
	mid := (a + d) / 2
	half := (a - d) / 2
	disc := half*half + b*c
	if disc >= 0 {
		s := math.Sqrt(disc)
		return RealValue(mid + s), RealValue(mid - s)
	}
	im := math.Sqrt(-disc)

	return ComplexValue(mid, im), ComplexValue(mid, -im)
}
