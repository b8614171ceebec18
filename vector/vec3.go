// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecmat/internal/array"

// Vec3 is a 3-element vector. Index 0 is x, 1 is y, 2 is z.
type Vec3[T Scalar] [3]T

// New3 builds a Vec3 from its components.
func New3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Tuple returns the components as (x, y, z).
func (v Vec3[T]) Tuple() (x, y, z T) {
	return v[0], v[1], v[2]
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// Map returns the vector of f applied to every component.
func (v Vec3[T]) Map(f func(T) T) Vec3[T] {
	var out Vec3[T]
	array.Map(out[:], v[:], f)

	return out
}

// Zip combines v and o pairwise: out[i] = f(v[i], o[i]).
func (v Vec3[T]) Zip(o Vec3[T], f func(a, b T) T) Vec3[T] {
	var out Vec3[T]
	array.Zip(out[:], v[:], o[:], f)

	return out
}

// FoldFirst reduces the components left to right, seeded with v[0].
func (v Vec3[T]) FoldFirst(f func(acc, x T) T) T {
	return array.FoldFirst(v[:], f)
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul returns the element-wise (Hadamard) product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return v.Zip(o, func(a, b T) T { return a * b })
}

// Div returns the element-wise quotient.
// Integer components panic on a zero divisor; floats follow IEEE-754.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return v.Zip(o, func(a, b T) T { return a / b })
}

// Scale returns v·a.
func (v Vec3[T]) Scale(a T) Vec3[T] {
	return Vec3[T]{v[0] * a, v[1] * a, v[2] * a}
}

// DivScalar returns v/a.
func (v Vec3[T]) DivScalar(a T) Vec3[T] {
	return Vec3[T]{v[0] / a, v[1] / a, v[2] / a}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v[0], -v[1], -v[2]}
}

// Dot returns the scalar product v·o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return array.Dot(v[:], o[:])
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Sum returns x + y + z.
func (v Vec3[T]) Sum() T { return array.Sum(v[:]) }

// Max returns the largest component.
func (v Vec3[T]) Max() T { return array.Max(v[:]) }

// Min returns the smallest component.
func (v Vec3[T]) Min() T { return array.Min(v[:]) }

// NormL1 returns |x| + |y| + |z|.
func (v Vec3[T]) NormL1() T { return array.NormL1(v[:]) }

// NormL2Sqr returns the squared Euclidean length.
func (v Vec3[T]) NormL2Sqr() T { return array.NormL2Sqr(v[:]) }

// NormL2 returns the Euclidean length.
func (v Vec3[T]) NormL2() T { return array.NormL2(v[:]) }

// NormLInf returns max(|x|, |y|, |z|).
func (v Vec3[T]) NormLInf() T { return array.NormLInf(v[:]) }

// Normalize returns v scaled to unit Euclidean length.
// The zero vector has no direction: floats yield NaN components and integers
// panic on the division.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.DivScalar(v.NormL2())
}

// IsZero reports whether every component is zero.
func (v Vec3[T]) IsZero() bool {
	return v == Vec3[T]{}
}

// AbsDiffEq reports whether every component of v is within eps of o.
func (v Vec3[T]) AbsDiffEq(o Vec3[T], eps T) bool {
	return array.AbsDiffEq(v[:], o[:], eps)
}
