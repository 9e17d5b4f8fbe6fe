// SPDX-License-Identifier: MIT
// Package matrix - structural kernels: row/column removal, submatrix
// extraction and the leading ones column used by regression-style designs.
//
// Contract shared by every kernel here:
//   - The result is a fresh *Dense; the operand is never mutated.
//   - Indices are validated (ErrOutOfRange) before shapes are derived.
//   - A cut that would leave a zero-sized axis fails with ErrBadShape.
//   - The result keeps the finite-only policy of a *Dense operand.

package matrix

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through At. Kernels use it to run a single flat-slice implementation.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// indicesExcept returns 0..n-1 without skip, in ascending order.
func indicesExcept(n, skip int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}

	return out
}

// indicesAll returns 0..n-1.
func indicesAll(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// CutRow returns a copy of m with row removed; remaining rows keep their order.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad row), ErrBadShape (m has a single row).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CutRow(m Matrix, row int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCutRow, err)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return nil, matrixErrorf(opCutRow, err)
	}
	if err := ValidateCuttable(m.Rows()); err != nil {
		return nil, matrixErrorf(opCutRow, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCutRow, err)
	}
	res, err := d.Induced(indicesExcept(d.r, row), indicesAll(d.c))
	if err != nil {
		return nil, matrixErrorf(opCutRow, err)
	}

	return res, nil
}

// CutCol returns a copy of m with col removed; remaining columns keep their order.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad col), ErrBadShape (m has a single column).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CutCol(m Matrix, col int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCutCol, err)
	}
	if err := ValidateColIndex(m, col); err != nil {
		return nil, matrixErrorf(opCutCol, err)
	}
	if err := ValidateCuttable(m.Cols()); err != nil {
		return nil, matrixErrorf(opCutCol, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCutCol, err)
	}
	res, err := d.Induced(indicesAll(d.r), indicesExcept(d.c, col))
	if err != nil {
		return nil, matrixErrorf(opCutCol, err)
	}

	return res, nil
}

// Submatrix returns the (r-1)×(c-1) matrix obtained by deleting excludeRow
// and excludeCol at once. Equivalent to CutRow followed by CutCol, computed
// in a single pass.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrBadShape (an axis of length 1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Submatrix(m Matrix, excludeRow, excludeCol int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateRowIndex(m, excludeRow); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateColIndex(m, excludeCol); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateCuttable(m.Rows()); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateCuttable(m.Cols()); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return d.without(excludeRow, excludeCol), nil
}

// without is the unchecked core of Submatrix. Callers guarantee valid
// indices and r, c ≥ 2. The result keeps the numeric policy of d.
func (d *Dense) without(excludeRow, excludeCol int) *Dense {
	rows, cols := d.r-1, d.c-1
	out := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: d.validateNaNInf,
	}
	var i, j, base int
	dst := 0
	for i = 0; i < d.r; i++ {
		if i == excludeRow {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if j == excludeCol {
				continue
			}
			out.data[dst] = d.data[base+j]
			dst++
		}
	}

	return out
}

// PrependOnesColumn returns [1 | m]: a leading column of 1.0 followed by the
// columns of m, same row count. This is the usual design matrix with an
// intercept term.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*(c+1)).
func PrependOnesColumn(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opOnesColumn, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opOnesColumn, err)
	}
	res, err := newDenseWithPolicy(d.r, d.c+1, d.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opOnesColumn, err)
	}
	w := d.c + 1
	for i := 0; i < d.r; i++ {
		res.data[i*w] = 1.0
		copy(res.data[i*w+1:(i+1)*w], d.data[i*d.c:(i+1)*d.c])
	}

	return sealResult(res, opOnesColumn)
}
