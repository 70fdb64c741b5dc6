package qr

import "github.com/katalvlaran/spectra/matrix"

// Result is the owned pair (Q, R) of a factorization A = Q·R.
//
//   - Q is rows×rows and orthogonal (QᵀQ = I within rounding).
//   - R is rows×cols and upper-triangular (entries below the diagonal ≈ 0).
//   - Reflections counts the non-identity reflections applied; degenerate
//     columns skipped by the zero-norm guard are not counted.
type Result struct {
	Q           matrix.Matrix
	R           matrix.Matrix
	Reflections int
}

// Reconstruct returns Q·R, which equals the factored matrix within rounding.
func (r *Result) Reconstruct() (matrix.Matrix, error) {
	if r == nil {
		return nil, qrErrorf(opReconstruct, matrix.ErrNilMatrix)
	}
	p, err := matrix.Mul(r.Q, r.R)
	if err != nil {
		return nil, qrErrorf(opReconstruct, err)
	}

	return p, nil
}

// Option configures Decompose.
type Option func(*Options)

// Options holds the resolved configuration of a factorization.
type Options struct {
	signCorrection bool
}

// SignCorrection reports whether the stable sign rule is enabled.
func (o Options) SignCorrection() bool { return o.signCorrection }

// WithSignCorrection chooses the reflection sign that matches the leading
// entry of each sub-column, u = x + sign(x₀)·‖x‖·e₁ (sign(0) = +1).
// The default additive rule loses precision when x₀ ≈ −‖x‖.
func WithSignCorrection() Option {
	return func(o *Options) { o.signCorrection = true }
}

// NewOptions resolves option setters against the defaults.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, set := range opts {
		set(&o)
	}

	return o
}
