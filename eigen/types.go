package eigen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectra/matrix"
)

// Kind tags an Eigenvalue as real or as a member of a complex-conjugate pair.
type Kind uint8

const (
	// KindReal marks an eigenvalue read off a 1×1 block or a real root of a 2×2 block.
	KindReal Kind = iota

	// KindComplex marks one member of a complex-conjugate pair from a 2×2 block.
	KindComplex
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Eigenvalue is a tagged scalar. Im is zero for KindReal.
type Eigenvalue struct {
	Kind Kind
	Re   float64
	Im   float64
}

// RealValue returns a KindReal eigenvalue.
func RealValue(v float64) Eigenvalue { return Eigenvalue{Kind: KindReal, Re: v} }

// ComplexValue returns a KindComplex eigenvalue re + im·i.
func ComplexValue(re, im float64) Eigenvalue {
	return Eigenvalue{Kind: KindComplex, Re: re, Im: im}
}

// IsReal reports whether e is tagged KindReal.
func (e Eigenvalue) IsReal() bool { return e.Kind == KindReal }

// Complex returns e as a complex128.
func (e Eigenvalue) Complex() complex128 { return complex(e.Re, e.Im) }

// String renders "3" for real values and "1+2i" for complex ones, using the
// shortest representation that round-trips.
func (e Eigenvalue) String() string { return e.Text(-1) }

// Text is String with at most prec significant digits ('g' format).
func (e Eigenvalue) Text(prec int) string {
	re := strconv.FormatFloat(e.Re, 'g', prec, 64)
	if e.Kind == KindReal {
		return re
	}
	im := strconv.FormatFloat(e.Im, 'g', prec, 64)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}

	return re + im + "i"
}

// Result is the outcome of Solve.
type Result struct {
	// Values holds one eigenvalue per diagonal-block entry, in diagonal order
	// (deduplicated only under WithDeduplicate).
	Values []Eigenvalue

	// Converged is true when the last iteration changed no entry by more
	// than the tolerance; false means the budget ran out first.
	Converged bool

	// Iterations is the number of QR steps performed.
	Iterations int

	// Difference is max|A_k − A_{k−1}| of the last step.
	Difference float64

	// Final is the last iterate, the (approximately) quasi-triangular matrix
	// the values were read from.
	Final matrix.Matrix
}

// DimensionError reports a non-square input. It matches matrix.ErrNonSquare
// under errors.Is.
type DimensionError struct {
	Op   string
	Rows int
	Cols int
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %dx%d: %v", e.Op, e.Rows, e.Cols, matrix.ErrNonSquare)
}

// Unwrap exposes the sentinel.
func (e *DimensionError) Unwrap() error { return matrix.ErrNonSquare }
