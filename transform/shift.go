// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/vecmat/vector"

// Shift is a translation-only transform, x ↦ x + offset.
//
// The zero value is the identity shift. Two shifts are equal (==) iff their
// offsets are equal.
type Shift[V Vector[V, T], T vector.Scalar] struct {
	pos V
}

// Shift2 translates 2-D points.
type Shift2[T vector.Scalar] = Shift[vector.Vec2[T], T]

// Shift3 translates 3-D points.
type Shift3[T vector.Scalar] = Shift[vector.Vec3[T], T]

// Shift4 translates 4-D points.
type Shift4[T vector.Scalar] = Shift[vector.Vec4[T], T]

// NewShift2 wraps v as a translation.
func NewShift2[T vector.Scalar](v vector.Vec2[T]) Shift2[T] { return Shift2[T]{pos: v} }

// NewShift3 wraps v as a translation.
func NewShift3[T vector.Scalar](v vector.Vec3[T]) Shift3[T] { return Shift3[T]{pos: v} }

// NewShift4 wraps v as a translation.
func NewShift4[T vector.Scalar](v vector.Vec4[T]) Shift4[T] { return Shift4[T]{pos: v} }

// Vector returns the translation offset.
func (s Shift[V, T]) Vector() V { return s.pos }

// Identity returns the zero shift.
func (Shift[V, T]) Identity() Shift[V, T] { return Shift[V, T]{} }

// Inv returns the shift by the negated offset. Exact for every scalar type.
func (s Shift[V, T]) Inv() Shift[V, T] {
	return Shift[V, T]{pos: s.pos.Neg()}
}

// Apply returns p + offset.
func (s Shift[V, T]) Apply(p V) V {
	return p.Add(s.pos)
}

// Deriv returns dir: a translation does not act on directions.
func (Shift[V, T]) Deriv(_, dir V) V {
	return dir
}

// Chain returns the shift by s.offset + other.offset.
func (s Shift[V, T]) Chain(other Shift[V, T]) Shift[V, T] {
	return Shift[V, T]{pos: s.pos.Add(other.pos)}
}

// ApplyDir returns dir unchanged. Unlike the Directional contract for
// general transforms it does not normalize: a translation preserves
// directions exactly, including their length.
func (Shift[V, T]) ApplyDir(_, dir V) V {
	return dir
}

// ApplyNormal returns normal unchanged.
func (Shift[V, T]) ApplyNormal(_, normal V) V {
	return normal
}

// AbsDiffEq reports whether the offsets agree within eps per component.
func (s Shift[V, T]) AbsDiffEq(o Shift[V, T], eps T) bool {
	return s.pos.AbsDiffEq(o.pos, eps)
}
