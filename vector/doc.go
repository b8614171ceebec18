// Package vector provides fixed-size vectors over a generic scalar type.
//
// What & Why:
//
//	Vec2, Vec3 and Vec4 are plain Go arrays ([N]T), so the dimension is part
//	of the type, values are stored inline and copied on assignment, and ==
//	compares element-wise. Every method takes and returns values; nothing is
//	mutated in place.
//
// Surface:
//
//   - Element-wise algebra: Map, Zip, Add, Sub, Mul, Div, Scale, DivScalar, Neg.
//   - Reductions: FoldFirst, Sum, Max, Min, Dot.
//   - Norms: NormL1, NormL2Sqr, NormL2, NormLInf, and Normalize.
//   - Named axes: X, Y, Z (N ≥ 3), W (N = 4).
//   - Cross products specialised per dimension (scalar for Vec2, vector for
//     Vec3, first-three-components for Vec4).
//   - Tuple-style construction (New2/New3/New4) and destructuring (Tuple).
//
// Scalars:
//
//	Scalar admits signed integers and floats. Operations that need a square
//	root (NormL2, Normalize) compute it in float64 and convert back, so integer
//	vectors get truncated results there.
//
// Complexity:
//
//	All operations are O(N) time and O(1) space; no heap allocation.
package vector
