// SPDX-License-Identifier: MIT

package interop

import (
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func Vec2[T vector.Scalar](v vector.Vec2[T]) f64.Vec2 {
	return f64.Vec2{float64(v[0]), float64(v[1])}
}

func Vec3[T vector.Scalar](v vector.Vec3[T]) f64.Vec3 {
	return f64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func Vec4[T vector.Scalar](v vector.Vec4[T]) f64.Vec4 {
	return f64.Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

func FromVec2[T vector.Scalar](v f64.Vec2) vector.Vec2[T] {
	return vector.New2(T(v[0]), T(v[1]))
}

func FromVec3[T vector.Scalar](v f64.Vec3) vector.Vec3[T] {
	return vector.New3(T(v[0]), T(v[1]), T(v[2]))
}

func FromVec4[T vector.Scalar](v f64.Vec4) vector.Vec4[T] {
	return vector.New4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

// Mat3 flattens m in row major order.
func Mat3[T vector.Scalar](m matrix.Mat3[T]) f64.Mat3 {
	var out f64.Mat3
	for r := range m {
		for c := range m[r] {
			out[3*r+c] = float64(m[r][c])
		}
	}

	return out
}

// FromMat3 is the inverse of Mat3.
func FromMat3[T vector.Scalar](a f64.Mat3) matrix.Mat3[T] {
	var out matrix.Mat3[T]
	for r := range out {
		for c := range out[r] {
			out[r][c] = T(a[3*r+c])
		}
	}

	return out
}

// Mat4 flattens m in row major order.
func Mat4[T vector.Scalar](m matrix.Mat4[T]) f64.Mat4 {
	var out f64.Mat4
	for r := range m {
		for c := range m[r] {
			out[4*r+c] = float64(m[r][c])
		}
	}

	return out
}

// FromMat4 is the inverse of Mat4.
func FromMat4[T vector.Scalar](a f64.Mat4) matrix.Mat4[T] {
	var out matrix.Mat4[T]
	for r := range out {
		for c := range out[r] {
			out[r][c] = T(a[4*r+c])
		}
	}

	return out
}
