// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecmat/internal/array"

// Vec2 is a 2-element vector. Index 0 is x, 1 is y.
type Vec2[T Scalar] [2]T

// New2 builds a Vec2 from its components.
func New2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Tuple returns the components as (x, y).
func (v Vec2[T]) Tuple() (x, y T) {
	return v[0], v[1]
}

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v Vec2[T]) Map(f func(T) T) Vec2[T] {
	var out Vec2[T]
	array.Map(out[:], v[:], f)

	return out
}

func (v Vec2[T]) Zip(o Vec2[T], f func(a, b T) T) Vec2[T] {
	var out Vec2[T]
	array.Zip(out[:], v[:], o[:], f)

	return out
}

func (v Vec2[T]) FoldFirst(f func(acc, x T) T) T {
	return array.FoldFirst(v[:], f)
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - o[0], v[1] - o[1]} }

func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return v.Zip(o, func(a, b T) T { return a * b })
}

func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return v.Zip(o, func(a, b T) T { return a / b })
}

func (v Vec2[T]) Scale(a T) Vec2[T]     { return Vec2[T]{v[0] * a, v[1] * a} }
func (v Vec2[T]) DivScalar(a T) Vec2[T] { return Vec2[T]{v[0] / a, v[1] / a} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-v[0], -v[1]} }

func (v Vec2[T]) Dot(o Vec2[T]) T { return array.Dot(v[:], o[:]) }

// Cross returns the pseudo-cross product x₁·y₂ − y₁·x₂, the z component of
// the 3-D cross product of the two vectors lifted into the z = 0 plane.
// Positive when o lies counter-clockwise of v.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v[0]*o[1] - v[1]*o[0]
}

func (v Vec2[T]) Sum() T       { return array.Sum(v[:]) }
func (v Vec2[T]) Max() T       { return array.Max(v[:]) }
func (v Vec2[T]) Min() T       { return array.Min(v[:]) }
func (v Vec2[T]) NormL1() T    { return array.NormL1(v[:]) }
func (v Vec2[T]) NormL2Sqr() T { return array.NormL2Sqr(v[:]) }
func (v Vec2[T]) NormL2() T    { return array.NormL2(v[:]) }
func (v Vec2[T]) NormLInf() T  { return array.NormLInf(v[:]) }

// Normalize returns v scaled to unit length; see Vec3.Normalize.
func (v Vec2[T]) Normalize() Vec2[T] {
	return v.DivScalar(v.NormL2())
}

func (v Vec2[T]) IsZero() bool { return v == Vec2[T]{} }

func (v Vec2[T]) AbsDiffEq(o Vec2[T], eps T) bool {
	return array.AbsDiffEq(v[:], o[:], eps)
}
