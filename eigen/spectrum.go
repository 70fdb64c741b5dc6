package eigen

import "math"

// Unique returns values with near-duplicates removed, keeping the first
// occurrence of each. Two eigenvalues are duplicates when both their real and
// imaginary parts differ by at most tol. The input slice is not modified.
func Unique(values []Eigenvalue, tol float64) []Eigenvalue {
	out := make([]Eigenvalue, 0, len(values))
	for _, v := range values {
		seen := false
		for _, u := range out {
			if math.Abs(u.Re-v.Re) <= tol && math.Abs(u.Im-v.Im) <= tol {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}

	return out
}

// Sum returns Σλ, which equals the trace for a full (non-deduplicated) spectrum.
func Sum(values []Eigenvalue) complex128 {
	var s complex128
	for _, v := range values {
		s += v.Complex()
	}

	return s
}

// Product returns Πλ, which equals the determinant for a full spectrum.
func Product(values []Eigenvalue) complex128 {
	p := complex(1, 0)
	for _, v := range values {
		p *= v.Complex()
	}

	return p
}
