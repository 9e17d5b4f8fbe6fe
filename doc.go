// Package lvmat is a small dense-matrix toolkit built around exact,
// textbook algorithms: determinant by cofactor expansion, the cofactor
// matrix, the adjugate and the adjugate-over-determinant inverse.
//
// What is inside:
//
//	matrix/    — Dense storage, products, cuts, cofactor kernels, row
//	             normalization, validators and functional options
//	gridio/    — YAML codec for rectangular grids ("rows: [[1, 2], [3, 4]]")
//	cmd/lvmat/ — command-line front-end over matrix and gridio
//	examples/  — runnable scenario (absorbing Markov chain)
//
// Cost model:
//
//	Determinant, Cofactor and Inverse are factorial in the matrix order.
//	They are meant for small systems (order ≲ 10) where exact cofactor
//	arithmetic is wanted; use an LU-based library beyond that.
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 1}})
//	inv, _ := matrix.Inverse(m)
//	fmt.Print(inv)
//	// |1, -1|
//	// |-1, 2|
//
//	go get github.com/katalvlaran/lvmat
package lvmat
