package qr

import (
	"fmt"

	"github.com/katalvlaran/spectra/matrix"
)

// Operation tags for error wrapping.
const (
	opDecompose   = "qr.Decompose"
	opReconstruct = "qr.Reconstruct"
	opHouseholder = "qr.Householder"
	opEmbed       = "qr.Embed"
)

func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Decompose computes A = Q·R by Householder reflections.
//
// Implementation:
//   - Stage 1: Q = I(rows), R = copy(A), index = 0.
//   - Stage 2: while index < rows and index < cols:
//     x = R[index:, index]; stop if len(x) == 1;
//     u = Reflector(x); skip (identity) if u vanishes;
//     H = Embed(I − 2uuᵀ, index, rows); Q = Q·Hᵀ; R = H·R.
//   - Stage 3: return fresh Q and R.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - Accessor/numeric-policy errors surfaced by a custom Matrix implementation.
//
// Non-square input is legal and never an error.
//
// Accuracy: under the default additive rule a sub-column close to −c·e₁
// cancels in u₀ = x₀ + ‖x‖, and the entries below the diagonal of R are left
// at roughly their input size instead of rounding level. For example
// [[-1,0],[1e-8,1]] yields R[1,0] = −1e-8. WithSignCorrection avoids the
// cancellation.
//
// Non-finite entries (admitted with matrix.WithNoValidateNaNInf) propagate
// into Q and R; they are not an error.
func Decompose(a matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, qrErrorf(opDecompose, err)
	}
	o := NewOptions(opts...)
	rows, cols := a.Rows(), a.Cols()

	q, err := matrix.Identity(rows)
	if err != nil {
		return nil, qrErrorf(opDecompose, err)
	}
	r, err := copyDense(a)
	if err != nil {
		return nil, qrErrorf(opDecompose, err)
	}

	var (
		Q, R        matrix.Matrix = q, r
		H, Ht, hSub matrix.Matrix
		x, u        []float64
		ok          bool
		reflections int
		index       int
	)
	for index = 0; index < rows && index < cols; index++ {
		if x, err = subColumn(R, index); err != nil {
			return nil, qrErrorf(opDecompose, err)
		}
		if len(x) == 1 {
			break // nothing below the diagonal
		}
		if u, ok = Reflector(x, o.signCorrection); !ok {
			continue // identity reflection
		}
		if hSub, err = Householder(u); err != nil {
			return nil, qrErrorf(opDecompose, err)
		}
		if H, err = Embed(hSub, index, rows); err != nil {
			return nil, qrErrorf(opDecompose, err)
		}
		if Ht, err = matrix.Transpose(H); err != nil {
			return nil, qrErrorf(opDecompose, err)
		}
		if Q, err = matrix.Mul(Q, Ht); err != nil {
			return nil, qrErrorf(opDecompose, err)
		}
		if R, err = matrix.Mul(H, R); err != nil {
			return nil, qrErrorf(opDecompose, err)
		}
		reflections++
	}

	return &Result{Q: Q, R: R, Reflections: reflections}, nil
}

// copyDense materializes any Matrix as an independent *Dense. Values already
// held by a are copied as is, non-finite ones included.
func copyDense(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	rows, cols := a.Rows(), a.Cols()
	out, err := matrix.NewDense(rows, cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// subColumn returns m[index:, index].
func subColumn(m matrix.Matrix, index int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Col(index, index)
	}
	out := make([]float64, m.Rows()-index)
	var (
		i   int
		err error
	)
	for i = index; i < m.Rows(); i++ {
		if out[i-index], err = m.At(i, index); err != nil {
			return nil, err
		}
	}

	return out, nil
}
