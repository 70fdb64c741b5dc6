package qr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/katalvlaran/spectra/qr"
)

// tol is the per-entry tolerance of every factorization property.
const tol = 1e-9

// hide masks the concrete *Dense type to force interface fallback paths.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return mustRows(t, rows)
}

func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireFactorization asserts the three defining properties of A = Q·R.
func requireFactorization(t *testing.T, a matrix.Matrix, res *qr.Result) {
	t.Helper()

	require.Equal(t, a.Rows(), res.Q.Rows(), "Q rows")
	require.Equal(t, a.Rows(), res.Q.Cols(), "Q cols")
	require.Equal(t, a.Rows(), res.R.Rows(), "R rows")
	require.Equal(t, a.Cols(), res.R.Cols(), "R cols")

	qrProd, err := res.Reconstruct()
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(qrProd, a)
	require.NoError(t, err)
	require.LessOrEqual(t, d, tol, "reconstruction error")

	ok, err := matrix.IsOrthogonal(res.Q, tol)
	require.NoError(t, err)
	require.True(t, ok, "QᵀQ != I")

	ok, err = matrix.IsUpperTriangular(res.R, tol)
	require.NoError(t, err)
	require.True(t, ok, "R not upper-triangular:\n%v", res.R)
}
