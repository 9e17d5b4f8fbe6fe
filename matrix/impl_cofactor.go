// SPDX-License-Identifier: MIT
// Package matrix - determinant, minors, cofactor matrix, adjugate and the
// adjugate-based inverse.
//
// Purpose:
//   - Compute det(A) by recursive Laplace (cofactor) expansion along row 0.
//   - Build the cofactor matrix, its transpose (the adjugate) and
//     A⁻¹ = adj(A) / det(A).
//
// COST WARNING:
//   - Determinant is O(n!) in time: every level of the recursion allocates n
//     submatrices of order n-1 and recurses into each. There is no memoization,
//     pivoting or row reduction. Cofactor and Inverse evaluate n² such
//     determinants of order n-1. Orders up to ~10 are practical; beyond that,
//     use an LU-based routine from a general-purpose library.
//
// Numeric policy:
//   - Plain IEEE-754 arithmetic, no near-zero detection. A singular input
//     yields det == 0 (or a rounding residue) and, in Inverse, ±Inf/NaN
//     entries, unless WithSingularTolerance is supplied or the input
//     carries the finite-only policy.

package matrix

import (
	"fmt"
	"math"
)

// cofactorSign is +1 for even indices and -1 for odd ones. Applied per axis,
// sign(i)*sign(j) reproduces the (-1)^(i+j) checkerboard.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Determinant returns det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - n = 1: the sole element.
//   - n = 2: a00*a11 - a01*a10.
//   - n ≥ 3: Σ_j sign(j) * m[0,j] * det(Submatrix(m, 0, j)).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: view m as *Dense once (copy only for foreign implementations).
//   - Stage 3: recurse on flat-slice submatrices.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any time along one recursion path.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return detExpand(d), nil
}

// detExpand is the unchecked recursion behind Determinant. d must be square.
func detExpand(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	sum := ZeroSum
	for j := 0; j < d.c; j++ {
		sum += cofactorSign(j) * d.data[j] * detExpand(d.without(0, j))
	}

	return sum
}

// Minor returns det(Submatrix(m, row, col)) for a square m of order ≥ 2.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrBadShape (order 1).
func Minor(m Matrix, row, col int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	sub, err := Submatrix(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return detExpand(sub.(*Dense)), nil
}

// Cofactor returns the cofactor matrix C with C[i,j] = sign(i)*sign(j)*M(i,j),
// where M(i,j) is the (i,j) minor.
//
// Behavior highlights:
//   - For a 1×1 input the result is [[1]]: the minor of an order-1 matrix is
//     the determinant of the empty matrix, which is 1 by convention. This
//     keeps Inverse correct for order 1 (adj = [[1]], A⁻¹ = [[1/a]]).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactor(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	n := d.r
	res, err := newDenseWithPolicy(n, n, d.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if n == 1 {
		res.data[0] = 1

		return sealResult(res, opCofactor)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = cofactorSign(i) * cofactorSign(j) * detExpand(d.without(i, j))
		}
	}

	return sealResult(res, opCofactor)
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (Matrix, error) {
	cof, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = Cofactor(m)ᵀ * (1 / det(m)).
// MAIN DESCRIPTION:
//   - Classical adjugate-over-determinant formula; no LU, no pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options.
//   - Stage 2: det := Determinant(m); optional singularity guard.
//   - Stage 3: adj := Adjugate(m); return Scale(adj, 1/det).
//
// Behavior highlights:
//   - Default (no options): det == 0 is NOT intercepted. 1/det becomes ±Inf and
//     the entries become ±Inf or NaN (0 * Inf), following IEEE-754.
//   - WithSingularTolerance(tol): |det| <= tol fails with ErrSingular.
//   - A finite-only m (WithValidateNaNInf) passes its policy to every
//     intermediate, so a zero determinant fails with ErrNaNInf instead of
//     returning ±Inf entries.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (guard enabled only),
//     ErrNaNInf (finite-only policy).
//
// Complexity:
//   - Time O(n² · (n-1)! + n!), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if tol, on := o.SingularTolerance(); on && math.Abs(det) <= tol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det|=%g <= %g: %w", math.Abs(det), tol, ErrSingular))
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1.0/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
