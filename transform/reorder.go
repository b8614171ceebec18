// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/vecmat/vector"

// ReorderShift converts the pipeline "apply l, then s" into the equivalent
// pipeline "apply a shift, then l", returned as (l, shift).
//
// Derivation:
//
//	before: x ↦ L·x + s
//	after:  x ↦ L·(x + s') = L·x + L·s'
//	⇒ s' = L⁻¹·s
//
// L is inverted unchecked; see TryReorderShift.
func ReorderShift[M Matrix[M, V, T], V Vector[V, T], T vector.Scalar](s Shift[V, T], l Linear[M, V, T]) (Linear[M, V, T], Shift[V, T]) {
	return l, Shift[V, T]{pos: l.Inv().Apply(s.pos)}
}

// ReorderLinear converts the pipeline "apply s, then l" into the equivalent
// pipeline "apply l, then a shift", returned as (shift, l).
//
// Derivation:
//
//	before: x ↦ L·(x + s) = L·x + L·s
//	after:  x ↦ L·x + s'
//	⇒ s' = L·s
//
// No inversion is involved, so this direction is always defined.
func ReorderLinear[M Matrix[M, V, T], V Vector[V, T], T vector.Scalar](l Linear[M, V, T], s Shift[V, T]) (Shift[V, T], Linear[M, V, T]) {
	return Shift[V, T]{pos: l.Apply(s.pos)}, l
}

// TryReorderShift is ReorderShift returning an error wrapping
// matrix.ErrSingular when L cannot be inverted under the configured epsilon.
func TryReorderShift[M Matrix[M, V, T], V Vector[V, T], T vector.Scalar](s Shift[V, T], l Linear[M, V, T], opts ...Option) (Linear[M, V, T], Shift[V, T], error) {
	inv, err := l.TryInv(opts...)
	if err != nil {
		return Linear[M, V, T]{}, Shift[V, T]{}, transformErrorf(opReorderShift, err)
	}

	return l, Shift[V, T]{pos: inv.Apply(s.pos)}, nil
}
