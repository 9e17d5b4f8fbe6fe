// SPDX-License-Identifier: MIT
// Package matrix - private element-wise helpers behind the public facades.

package matrix

import "math"

// ewAllClose checks |a-b| ≤ atol + rtol*|b| element-wise.
// Tolerances are abs-ed; NaN/Inf tolerances are rejected with ErrNaNInf.
// NaN never compares close; equal infinities do (a == b short-circuit).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar relation used by ewAllClose.
func closeEnough(av, bv, rtol, atol float64) bool {
	if av == bv {
		return true // covers equal infinities
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
