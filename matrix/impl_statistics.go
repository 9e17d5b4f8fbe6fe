// SPDX-License-Identifier: MIT
// Package matrix - row statistics and row-stochastic normalization.
//
// Determinism:
//   - Row sums accumulate left to right in float64 (j = 0..c-1).

package matrix

// RowSums returns r where r[i] = Σ_j m[i,j] (float64 accumulation).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var base int
		for i := 0; i < rows; i++ {
			base = i * cols
			sum := ZeroSum
			for j := 0; j < cols; j++ {
				sum += d.data[base+j]
			}
			out[i] = sum
		}

		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		sum := ZeroSum
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sum += v
		}
		out[i] = sum
	}

	return out, nil
}

// ToProbabilities divides every entry of each row by that row's sum, IN PLACE,
// turning non-negative rows into probability distributions.
//
// Implementation:
//   - Stage 1: RowSums(m), float64 summation with no truncation.
//   - Stage 2: write m[i,j] / sum[i] back (Apply for *Dense, Set otherwise).
//
// Behavior highlights:
//   - A row summing to zero is not guarded: its entries become NaN (0/0) or
//     ±Inf (x/0). If m enforces finite values (WithValidateNaNInf) the write
//     fails with ErrNaNInf and rows before the failing cell stay updated.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (finite-only policy).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func ToProbabilities(m Matrix) error {
	sums, err := RowSums(m)
	if err != nil {
		return matrixErrorf(opProbabilities, err)
	}

	if d, ok := m.(*Dense); ok {
		if err = d.Apply(func(i, _ int, v float64) float64 { return v / sums[i] }); err != nil {
			return matrixErrorf(opProbabilities, err)
		}

		return nil
	}

	rows, cols := m.Rows(), m.Cols()
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opProbabilities, err)
			}
			if err = m.Set(i, j, v/sums[i]); err != nil {
				return matrixErrorf(opProbabilities, err)
			}
		}
	}

	return nil
}
