// Package vecmat is a small, allocation-free linear-algebra toolkit for
// graphics- and physics-style code: fixed-size vectors and square matrices
// over a generic scalar type, plus composable affine building blocks.
//
// 🚀 What is inside?
//
//	vector/       Vec2, Vec3, Vec4: element-wise algebra, norms, cross products
//	matrix/       Mat2, Mat3, Mat4: identity, transpose, products, det, inverse
//	transform/    Shift (translation) and Linear (linear map) transforms,
//	              the Transform/Directional interfaces and the reorder algebra
//	hypercomplex/ Complex and Quaternion value types
//	interop/      conversions to golang.org/x/image/math/f64 arrays
//
// ✨ Why vecmat?
//
//   - Dimension is part of the type: a Vec3 can never be mixed with a Vec4.
//   - Values only: every operation returns a new value.
//   - No hidden allocations: vectors and matrices are plain Go arrays.
//
// An affine map x ↦ L·x + s is never stored as a combined struct. It is an
// ordered pair of one transform.Linear and one transform.Shift, and the
// reorder functions convert between the two application orders:
//
//	  x ──L──▶ ──+s──▶         ≡         x ──+L⁻¹s──▶ ──L──▶
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/vecmat
package vecmat
