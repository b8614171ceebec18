// Package transform implements composable geometric transforms over the
// fixed-size vectors and matrices of vecmat.
//
// What & Why:
//
//	Two transform kinds cover affine maps x ↦ L·x + s without ever storing a
//	combined matrix-plus-vector struct:
//
//	  - Shift:  pure translation, x ↦ x + s.
//	  - Linear: pure linear map,  x ↦ L·x.
//
//	Both implement Transform (identity, inverse, point application,
//	directional derivative, composition) and Directional (tangent and normal
//	mapping). An affine map is an ordered pair of one Shift and one Linear,
//	and the reorder functions swap the application order of such a pair while
//	preserving its net effect.
//
// Composition order:
//
//	a.Chain(b) applies b first, then a:
//
//	  a.Chain(b).Apply(x) == a.Apply(b.Apply(x))
//
//	Chain is associative but not commutative in general.
//
// Reorder algebra:
//
//	ReorderShift(s, l)   "l then s"  x ↦ L·x + s   ⇒  (l, Shift(L⁻¹·s))  "shift then l"
//	ReorderLinear(l, s)  "s then l"  x ↦ L·(x + s) ⇒  (Shift(L·s), l)    "l then shift"
//
//	The two are mutual inverses: exact for integer scalars with a unimodular
//	L, within the conditioning of L for floats.
//
// Normals:
//
//	Normals transform with the inverse-transpose of the linear part
//	(NormalTransform); using L itself is only correct when L is orthogonal.
//
// Errors:
//
//	Unchecked operations (Inv, ReorderShift, NormalTransform, ApplyNormal,
//	LookAt) do not test their preconditions: a singular L yields non-finite
//	float results (or an integer division panic), and LookAt with dir ∥ up
//	yields NaNs. The Try* variants check first and return matrix.ErrSingular
//	or ErrDegenerateBasis, configured through Option values.
//
// Type parameters:
//
//	Shift[V, T] and Linear[M, V, T] are generic over the vector type V, the
//	matrix type M and the scalar T; Shift2/3/4 and Linear2/3/4 are the
//	aliases normally used. Constructors NewShiftN and NewLinearN infer T.
package transform
