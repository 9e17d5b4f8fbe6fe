// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowSums(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 2, 3}, {-1, 0.5, 0.5}})
	got, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 0}, got)

	got, err = matrix.RowSums(hide{m})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 0}, got)

	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestToProbabilities(t *testing.T) {
	tests := []struct {
		name string
		grid [][]float64
		want [][]float64
	}{
		{"counts", [][]float64{{1, 1, 2}}, [][]float64{{0.25, 0.25, 0.5}}},
		{"already stochastic", [][]float64{{0.5, 0.5}}, [][]float64{{0.5, 0.5}}},
		{"fractional sum kept", [][]float64{{0.5, 1}, {3, 1}}, [][]float64{{1.0 / 3, 2.0 / 3}, {0.75, 0.25}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustGrid(t, tc.grid)
			require.NoError(t, matrix.ToProbabilities(m))
			require.Equal(t, tc.want, m.Grid())

			g := MustGrid(t, tc.grid)
			require.NoError(t, matrix.ToProbabilities(hide{g}))
			require.Equal(t, tc.want, g.Grid())
		})
	}
}

// TestToProbabilities_RowsSumToOne on random non-negative data.
func TestToProbabilities_RowsSumToOne(t *testing.T) {
	m := RandFilledDense(t, 6, 4, 5)
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) + 0.01 }))
	require.NoError(t, matrix.ToProbabilities(m))

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	for i, s := range sums {
		require.InDelta(t, 1.0, s, 1e-12, "row %d", i)
	}
}

func TestToProbabilities_ZeroRow(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 3}, {0, 0}})
	require.NoError(t, matrix.ToProbabilities(m))

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.75}, row)

	row, err = m.Row(1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(row[0]))
	require.True(t, math.IsNaN(row[1]))
}

func TestToProbabilities_FiniteOnlyPolicy(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{2, 2}, {0, 0}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ToProbabilities(m), matrix.ErrNaNInf)

	require.ErrorIs(t, matrix.ToProbabilities(nil), matrix.ErrNilMatrix)
}
