// SPDX-License-Identifier: MIT

package interop

import (
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/transform"
	"github.com/katalvlaran/vecmat/vector"
)

// Aff3 stores "apply l, then s" as the 2×3 affine matrix [L | s].
func Aff3[T vector.Scalar](s transform.Shift2[T], l transform.Linear2[T]) f64.Aff3 {
	m, t := l.Matrix(), s.Vector()
	return f64.Aff3{
		float64(m[0][0]), float64(m[0][1]), float64(t[0]),
		float64(m[1][0]), float64(m[1][1]), float64(t[1]),
	}
}

// FromAff3 splits a 2×3 affine matrix into its translation and linear part.
// Aff3(FromAff3(a)) == a for values representable in T.
func FromAff3[T vector.Scalar](a f64.Aff3) (transform.Shift2[T], transform.Linear2[T]) {
	s := transform.NewShift2(vector.New2(T(a[2]), T(a[5])))
	l := transform.NewLinear2(matrix.FromRows2(
		vector.New2(T(a[0]), T(a[1])),
		vector.New2(T(a[3]), T(a[4])),
	))

	return s, l
}

// Aff4 stores "apply l, then s" as the 3×4 affine matrix [L | s].
func Aff4[T vector.Scalar](s transform.Shift3[T], l transform.Linear3[T]) f64.Aff4 {
	var out f64.Aff4
	m, t := l.Matrix(), s.Vector()
	for r := range m {
		out[4*r+0] = float64(m[r][0])
		out[4*r+1] = float64(m[r][1])
		out[4*r+2] = float64(m[r][2])
		out[4*r+3] = float64(t[r])
	}

	return out
}

// FromAff4 splits a 3×4 affine matrix into its translation and linear part.
func FromAff4[T vector.Scalar](a f64.Aff4) (transform.Shift3[T], transform.Linear3[T]) {
	var m matrix.Mat3[T]
	var t vector.Vec3[T]
	for r := range m {
		m[r] = vector.New3(T(a[4*r+0]), T(a[4*r+1]), T(a[4*r+2]))
		t[r] = T(a[4*r+3])
	}

	return transform.NewShift3(t), transform.NewLinear3(m)
}

// Homogeneous embeds "apply l, then s" in a 4×4 map acting on points with
// w = 1. Directions (w = 0) see only l.
func Homogeneous[T vector.Scalar](s transform.Shift3[T], l transform.Linear3[T]) transform.Linear4[T] {
	m, t := l.Matrix(), s.Vector()
	return transform.NewLinear4(matrix.FromRows4(
		vector.New4(m[0][0], m[0][1], m[0][2], t[0]),
		vector.New4(m[1][0], m[1][1], m[1][2], t[1]),
		vector.New4(m[2][0], m[2][1], m[2][2], t[2]),
		vector.New4[T](0, 0, 0, 1),
	))
}
