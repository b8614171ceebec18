// SPDX-License-Identifier: MIT

// Package interop converts vecmat values to and from the plain array types
// of golang.org/x/image/math/f64.
//
// Every f64 matrix type is row major: m[N*r + c] is the element in the r'th
// row and c'th column, which matches matrix.MatN[T][r][c]. Conversions go
// through float64, so integer scalars convert exactly and float32 widens
// losslessly; the From* direction truncates toward zero for integer T.
//
// Affine pairs are written in composition order, outermost map first, the
// order ReorderLinear returns them in:
//
//	s, l := transform.ReorderLinear(l0, s0) // apply s0 then l0 == apply l then s
//	a := interop.Aff3(s, l)                 // x ↦ L·x + s, stored as 2×3
package interop
