// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// identity construction, multiplication, transpose and the
// structural checks used to verify factorizations (triangularity,
// orthogonality, entry-wise distance). All functions validate fail-fast and
// never mutate their inputs.
//
// Notes:
//   - *Dense operands unlock flat-slice fast paths; any other Matrix falls back
//     to the bounds-checked At/Set interface with identical loop orders.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of dot-product style accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opIdentity   = "Identity"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opMaxAbsDiff = "MaxAbsDiff"
	opEqual      = "Equal"
	opTrace      = "Trace"
	opUpperTri   = "IsUpperTriangular"
	opOrthogonal = "IsOrthogonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Identity returns the n×n identity matrix. Options set the NaN/Inf policy
// of the result (WithNoValidateNaNInf for blocks derived from admitted data).
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n²) time and space.
func Identity(n int, opts ...Option) (*Dense, error) {
	res, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	var i int
	for i = 0; i < n; i++ {
		res.data[i*n+i] = 1.0
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] − b[i,j]|, the convergence measure of
// iterative solvers and the reconstruction error of factorizations.
// A NaN entry on either side yields NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var (
		maxDiff, d float64
		av, bv     float64
		err        error
		i, j       int
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = range da.data {
				d = math.Abs(da.data[i] - db.data[i])
				if math.IsNaN(d) {
					return d, nil
				}
				if d > maxDiff {
					maxDiff = d
				}
			}
			return maxDiff, nil
		}
	}

	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			d = math.Abs(av - bv)
			if math.IsNaN(d) {
				return d, nil
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff, nil
}

// Equal reports whether a and b have the same shape and every entry differs
// by at most eps (DefaultEpsilon unless WithEpsilon is given).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	d, err := MaxAbsDiff(a, b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return d <= o.eps, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var (
		sum, v float64
		err    error
		i      int
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// IsUpperTriangular reports whether every entry strictly below the diagonal
// satisfies |m[i,j]| <= tol. Rectangular matrices are allowed.
//
// Errors: ErrNilMatrix, ErrInvalidTolerance.
// Complexity: O(r*min(r,c)).
func IsUpperTriangular(m Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opUpperTri, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return false, matrixErrorf(opUpperTri, err)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opUpperTri, err)
			}
			if !(math.Abs(v) <= tol) { // NaN fails too
				return false, nil
			}
		}
	}

	return true, nil
}

// IsOrthogonal reports whether mᵀ·m equals the identity within tol per entry.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidTolerance.
// Complexity: O(n³).
func IsOrthogonal(m Matrix, tol float64) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	prod, err := Mul(mt, m)
	if err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	id, err := Identity(m.Rows())
	if err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}
	d, err := MaxAbsDiff(prod, id)
	if err != nil {
		return false, matrixErrorf(opOrthogonal, err)
	}

	return d <= tol, nil
}
