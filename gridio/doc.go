// SPDX-License-Identifier: MIT

// Package gridio reads and writes matrices as small YAML documents.
//
// Format:
//
//	rows:
//	  - [1, 2]
//	  - [3, 4]
//
// The document is a mapping with a single "rows" key holding a rectangular
// sequence of numeric rows. Decoding delegates validation to
// matrix.NewDenseFrom, so ragged rows fail with matrix.ErrBadShape and an
// empty first row with matrix.ErrInvalidDimensions. Non-finite values are
// written as .inf, -.inf and .nan, which is how YAML spells them.
//
// Encoding writes each row in flow style so the file reads like the grid it
// stores.
package gridio
