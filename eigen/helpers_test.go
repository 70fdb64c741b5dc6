package eigen_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
)

// valueTol bounds the distance between solver output and exact eigenvalues.
const valueTol = 1e-6

// hide masks the concrete *Dense type to force interface fallback paths.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func sortComplex(vs []complex128) []complex128 {
	out := append([]complex128(nil), vs...)
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})

	return out
}

func asComplex(values []eigen.Eigenvalue) []complex128 {
	out := make([]complex128, len(values))
	for i, v := range values {
		out[i] = v.Complex()
	}

	return out
}

// oracle returns gonum's eigenvalues of rows, sorted.
func oracle(t *testing.T, rows [][]float64) []complex128 {
	t.Helper()
	n := len(rows)
	g := mat.NewDense(n, n, nil)
	for i := range rows {
		g.SetRow(i, rows[i])
	}
	var eig mat.Eigen
	require.True(t, eig.Factorize(g, mat.EigenNone), "gonum eigen factorization failed")

	return sortComplex(eig.Values(nil))
}

// flatten lays complex values out as re0, im0, re1, im1, ...
func flatten(vs []complex128) []float64 {
	out := make([]float64, 0, 2*len(vs))
	for _, v := range vs {
		out = append(out, real(v), imag(v))
	}

	return out
}

func requireSameSpectrum(t *testing.T, want, got []complex128, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	want, got = sortComplex(want), sortComplex(got)
	for i := range want {
		require.InDelta(t, real(want[i]), real(got[i]), delta, "real part %d: want %v got %v", i, want, got)
		require.InDelta(t, imag(want[i]), imag(got[i]), delta, "imag part %d: want %v got %v", i, want, got)
	}
}
