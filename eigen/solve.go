// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/qr"
)

const (
	opSolve   = "eigen.Solve"
	opExtract = "eigen.Extract"
)

func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve approximates the eigenvalues of the square matrix a with the
// unshifted QR algorithm.
//
// Stages:
//  1. Validate: nil → ErrNilMatrix; non-square → *DimensionError.
//  2. Iterate A_{k+1} = R_k·Q_k where A_k = Q_k·R_k, while the largest
//     entry-wise change exceeds the tolerance and the budget lasts.
//  3. Read eigenvalues off the diagonal blocks of the last iterate (Extract).
//
// Running out of budget is not an error: Converged is false and Values hold
// the estimates of the last iterate. Matrices with equal-modulus eigenvalues
// (rotations, for example) oscillate and never converge without shifts. For
// non-symmetric input the entries above the diagonal may flip sign every
// step, so Converged stays false even once the diagonal has settled.
//
// a is never mutated.
func Solve(a matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, eigenErrorf(opSolve, err)
	}
	if a.Rows() != a.Cols() {
		return nil, &DimensionError{Op: opSolve, Rows: a.Rows(), Cols: a.Cols()}
	}
	o := gatherOptions(opts...)
	qrOpts := o.qrOptions()

	var (
		current    = a.Clone()
		previous   matrix.Matrix
		f          *qr.Result
		difference = math.Inf(1)
		iteration  int
		err        error
	)
	for difference > o.tolerance && iteration < o.maxIterations {
		previous = current
		if f, err = qr.Decompose(previous, qrOpts...); err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
		if current, err = matrix.Mul(f.R, f.Q); err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
		if difference, err = matrix.MaxAbsDiff(current, previous); err != nil {
			return nil, eigenErrorf(opSolve, err)
		}
		iteration++
		if ce := o.logger.Check(zap.DebugLevel, "qr step"); ce != nil {
			ce.Write(zap.Int("iteration", iteration), zap.Float64("difference", difference))
		}
	}

	converged := difference <= o.tolerance
	if !converged {
		o.logger.Warn("iteration budget exhausted",
			zap.Int("iterations", iteration),
			zap.Float64("difference", difference),
			zap.Float64("tolerance", o.tolerance))
	}

	values, err := Extract(current, o.tolerance)
	if err != nil {
		return nil, eigenErrorf(opSolve, err)
	}
	if o.deduplicate {
		values = Unique(values, o.tolerance)
	}

	return &Result{
		Values:     values,
		Converged:  converged,
		Iterations: iteration,
		Difference: difference,
		Final:      current,
	}, nil
}
