// SPDX-License-Identifier: MIT
// Cross-checks the cofactor kernels against LU-based routines from gonum.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Matrix into a *mat.Dense.
func toGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range GridOf(t, m) {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

func TestDeterminant_MatchesLU(t *testing.T) {
	for n := 1; n <= 7; n++ {
		m := RandFilledDense(t, n, n, int64(100+n))
		got, err := matrix.Determinant(m)
		require.NoError(t, err)

		want := mat.Det(toGonum(t, m))
		require.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), "n=%d", n)
	}
}

func TestInverse_MatchesLU(t *testing.T) {
	for n := 1; n <= 6; n++ {
		m := DiagDominantDense(t, n, int64(200+n))
		got, err := matrix.Inverse(m)
		require.NoError(t, err)

		var inv mat.Dense
		require.NoError(t, inv.Inverse(toGonum(t, m)))

		gotG := toGonum(t, got)
		require.Truef(t, mat.EqualApprox(&inv, gotG, 1e-9), "n=%d\nwant:\n%v\ngot:\n%v",
			n, mat.Formatted(&inv), mat.Formatted(gotG))
	}
}

func TestMul_MatchesGonum(t *testing.T) {
	a := RandFilledDense(t, 3, 5, 1)
	b := RandFilledDense(t, 5, 2, 2)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(t, a), toGonum(t, b))
	require.True(t, mat.EqualApprox(&want, toGonum(t, got), 1e-12))
}
