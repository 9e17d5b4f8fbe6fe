// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// rows*cols overflowing int is rejected, not passed to make
	_, err = matrix.NewDense(math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewZeros(2, math.MaxInt/2+1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroed verifies the shape-only constructor yields zeros.
func TestNewDenseZeroed(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m.Grid())
}

func TestNewDenseFrom(t *testing.T) {
	t.Run("shape inferred", func(t *testing.T) {
		m := MustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
		r, c := m.Shape()
		require.Equal(t, 2, r)
		require.Equal(t, 3, c)
		v, err := m.At(1, 2)
		require.NoError(t, err)
		require.Equal(t, 6.0, v)
	})

	t.Run("grid is copied", func(t *testing.T) {
		grid := [][]float64{{1, 2}, {3, 4}}
		m := MustGrid(t, grid)
		grid[0][0] = 99 // caller edits must not leak into the matrix
		v, err := m.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)

		require.NoError(t, m.Set(1, 1, -7))
		require.Equal(t, 4.0, grid[1][1]) // and vice versa
	})

	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFrom(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.NewDenseFrom([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrBadShape)
	})

	t.Run("finite-only policy", func(t *testing.T) {
		_, err := matrix.NewDenseFrom([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
		require.ErrorIs(t, err, matrix.ErrNaNInf)

		m, err := matrix.NewDenseFrom([][]float64{{1, math.Inf(1)}})
		require.NoError(t, err) // default policy accepts Inf
		v, err := m.At(0, 1)
		require.NoError(t, err)
		require.True(t, math.IsInf(v, 1))
	})
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

func TestSetPolicy(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	// Clone carries the policy.
	c := m.Clone()
	require.ErrorIs(t, c.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
}

func TestIsSquareAndSize(t *testing.T) {
	sq := MustDense(t, 3, 3)
	require.True(t, sq.IsSquare())
	n, err := sq.Size()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	rect := MustDense(t, 2, 3)
	require.False(t, rect.IsSquare())
	_, err = rect.Size()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestRow(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 100 // copy, not a view
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

func TestGridIsDeepCopy(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 2}})
	g := m.Grid()
	g[0][1] = 42
	require.Equal(t, [][]float64{{1, 2}}, m.Grid())
}

// TestStringOutput checks the "|a, b|" row rendering.
func TestStringOutput(t *testing.T) {
	tests := []struct {
		name string
		grid [][]float64
		want string
	}{
		{"2x2 integers", [][]float64{{1, 2}, {3, 4}}, "|1, 2|\n|3, 4|\n"},
		{"single cell", [][]float64{{7}}, "|7|\n"},
		{"fractions and signs", [][]float64{{0.5, -1.25, 1e21}}, "|0.5, -1.25, 1e+21|\n"},
		{"column", [][]float64{{1}, {2}}, "|1|\n|2|\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MustGrid(t, tc.grid).String())
		})
	}
}

func TestInduced(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.Induced([]int{2, 0}, []int{1, 1})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{8, 8}, {2, 2}}, sub.Grid())

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDoAndApply(t *testing.T) {
	m := MustGrid(t, [][]float64{{1, 2}, {3, 4}})

	var visited []float64
	m.Do(func(_, _ int, v float64) bool {
		visited = append(visited, v)
		return len(visited) < 3 // stop after the third element
	})
	require.Equal(t, []float64{1, 2, 3}, visited)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, [][]float64{{10, 20}, {30, 40}}, m.Grid())

	strict, err := matrix.NewDenseFrom([][]float64{{1, 0}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	err = strict.Apply(func(_, _ int, v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
