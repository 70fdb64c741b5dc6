package qr

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectra/matrix"
)

// Reflector returns the unit Householder vector for x.
//
// u = x + s·‖x‖·e₁ normalized, with s = +1 by default and s = sign(x₀) when
// signCorrection is set. The boolean is false when ‖u‖ = 0, i.e. the
// reflection degenerates to the identity; this happens for x = 0 and, under
// the additive rule, for x = −c·e₁ with c > 0. In both cases x needs no
// reduction.
//
// Complexity: O(len(x)).
func Reflector(x []float64, signCorrection bool) ([]float64, bool) {
	if len(x) == 0 {
		return nil, false
	}
	norm := floats.Norm(x, 2)

	u := make([]float64, len(x))
	copy(u, x)
	if signCorrection && x[0] < 0 {
		u[0] -= norm
	} else {
		u[0] += norm
	}

	un := floats.Norm(u, 2)
	if un == 0 {
		return nil, false
	}
	floats.Scale(1/un, u)

	return u, true
}

// Householder forms the k×k reflector H_sub = I − 2uuᵀ for a unit vector u.
// The result does not reject NaN/Inf: u comes from data the caller already
// admitted, so non-finite entries propagate instead of failing.
//
// Errors: ErrInvalidDimensions for an empty u.
// Complexity: O(k²).
func Householder(u []float64) (*matrix.Dense, error) {
	k := len(u)
	h, err := matrix.Identity(k, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, qrErrorf(opHouseholder, err)
	}
	var i, j int
	var v float64
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			v, _ = h.At(i, j) // in range by construction
			if err = h.Set(i, j, v-2*u[i]*u[j]); err != nil {
				return nil, qrErrorf(opHouseholder, err)
			}
		}
	}

	return h, nil
}

// Embed places the square block sub into a size×size identity so that the
// result acts as sub on rows/columns [index, size) and as the identity
// elsewhere. Like Householder, the result carries NaN/Inf entries of sub.
//
// Errors:
//   - ErrNilMatrix when sub is nil.
//   - ErrNonSquare when sub is not square.
//   - ErrOutOfRange when index < 0.
//   - ErrDimensionMismatch when index + sub.Rows() != size.
//
// Complexity: O(size²).
func Embed(sub matrix.Matrix, index, size int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(sub); err != nil {
		return nil, qrErrorf(opEmbed, err)
	}
	if index < 0 {
		return nil, qrErrorf(opEmbed, fmt.Errorf("index %d: %w", index, matrix.ErrOutOfRange))
	}
	k := sub.Rows()
	if index+k != size {
		return nil, qrErrorf(opEmbed,
			fmt.Errorf("block %d at %d into %d: %w", k, index, size, matrix.ErrDimensionMismatch))
	}

	h, err := matrix.Identity(size, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, qrErrorf(opEmbed, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if v, err = sub.At(i, j); err != nil {
				return nil, qrErrorf(opEmbed, err)
			}
			if err = h.Set(index+i, index+j, v); err != nil {
				return nil, qrErrorf(opEmbed, err)
			}
		}
	}

	return h, nil
}
