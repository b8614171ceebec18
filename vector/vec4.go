// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecmat/internal/array"

// Vec4 is a 4-element vector. Index 0..3 are x, y, z, w.
// In homogeneous coordinates w is 1 for points and 0 for directions.
type Vec4[T Scalar] [4]T

// New4 builds a Vec4 from its components.
func New4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Tuple returns the components as (x, y, z, w).
func (v Vec4[T]) Tuple() (x, y, z, w T) {
	return v[0], v[1], v[2], v[3]
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

func (v Vec4[T]) Map(f func(T) T) Vec4[T] {
	var out Vec4[T]
	array.Map(out[:], v[:], f)

	return out
}

func (v Vec4[T]) Zip(o Vec4[T], f func(a, b T) T) Vec4[T] {
	var out Vec4[T]
	array.Zip(out[:], v[:], o[:], f)

	return out
}

func (v Vec4[T]) FoldFirst(f func(acc, x T) T) T {
	return array.FoldFirst(v[:], f)
}

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return v.Zip(o, func(a, b T) T { return a * b })
}

func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return v.Zip(o, func(a, b T) T { return a / b })
}

func (v Vec4[T]) Scale(a T) Vec4[T] {
	return Vec4[T]{v[0] * a, v[1] * a, v[2] * a, v[3] * a}
}

func (v Vec4[T]) DivScalar(a T) Vec4[T] {
	return Vec4[T]{v[0] / a, v[1] / a, v[2] / a, v[3] / a}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4[T]) Dot(o Vec4[T]) T { return array.Dot(v[:], o[:]) }

// Cross returns the cross product of the first three components; the fourth
// component of the result is zero (a direction in homogeneous coordinates).
func (v Vec4[T]) Cross(o Vec4[T]) Vec4[T] {
	return Vec4[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
		0,
	}
}

func (v Vec4[T]) Sum() T       { return array.Sum(v[:]) }
func (v Vec4[T]) Max() T       { return array.Max(v[:]) }
func (v Vec4[T]) Min() T       { return array.Min(v[:]) }
func (v Vec4[T]) NormL1() T    { return array.NormL1(v[:]) }
func (v Vec4[T]) NormL2Sqr() T { return array.NormL2Sqr(v[:]) }
func (v Vec4[T]) NormL2() T    { return array.NormL2(v[:]) }
func (v Vec4[T]) NormLInf() T  { return array.NormLInf(v[:]) }

func (v Vec4[T]) Normalize() Vec4[T] {
	return v.DivScalar(v.NormL2())
}

func (v Vec4[T]) IsZero() bool { return v == Vec4[T]{} }

func (v Vec4[T]) AbsDiffEq(o Vec4[T], eps T) bool {
	return array.AbsDiffEq(v[:], o[:], eps)
}
