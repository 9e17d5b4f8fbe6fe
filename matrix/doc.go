// Package matrix offers a small dense-matrix algebra toolkit built around
// the classical cofactor pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set/Row and the
//     "|v0, v1, ..., vn|" text rendering.
//   - Kernels as free functions: Add, Sub, Mul, Transpose, Scale, CutRow,
//     CutCol, Submatrix, PrependOnesColumn, RowSums and the in-place
//     ToProbabilities.
//   - Determinant by recursive Laplace expansion, Minor, Cofactor, Adjugate and
//     Inverse = adj(A)/det(A).
//
// Determinant, Cofactor and Inverse are O(n!) by construction. They exist
// for small, exactly specified matrices; they are not a substitute for an
// LU-based solver.
//
// Every kernel returns a freshly allocated *Dense and never mutates its
// operands; ToProbabilities, Set and Apply are the only mutators. Failures
// are reported through the sentinels in errors.go and match with errors.Is.
package matrix
