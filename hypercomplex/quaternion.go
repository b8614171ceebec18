// SPDX-License-Identifier: MIT

package hypercomplex

import (
	"math"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// Quaternion is w + x·i + y·j + z·k.
type Quaternion[T vector.Scalar] struct {
	W, X, Y, Z T
}

// NewQuaternion builds w + x·i + y·j + z·k.
func NewQuaternion[T vector.Scalar](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromParts builds w + v.x·i + v.y·j + v.z·k.
func QuaternionFromParts[T vector.Scalar](w T, v vector.Vec3[T]) Quaternion[T] {
	return Quaternion[T]{W: w, X: v[0], Y: v[1], Z: v[2]}
}

// AxisAngle returns the unit quaternion rotating by angle radians about the
// unit vector axis, counter-clockwise when looking down the axis.
func AxisAngle[T vector.Float](axis vector.Vec3[T], angle T) Quaternion[T] {
	s, c := math.Sincos(float64(angle) / 2)
	return QuaternionFromParts(T(c), axis.Scale(T(s)))
}

// Real returns w.
func (q Quaternion[T]) Real() T { return q.W }

// Imag returns (x, y, z).
func (q Quaternion[T]) Imag() vector.Vec3[T] { return vector.New3(q.X, q.Y, q.Z) }

// Vec returns (w, x, y, z).
func (q Quaternion[T]) Vec() vector.Vec4[T] { return vector.New4(q.W, q.X, q.Y, q.Z) }

func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W - o.W, q.X - o.X, q.Y - o.Y, q.Z - o.Z}
}

func (q Quaternion[T]) Neg() Quaternion[T] { return Quaternion[T]{-q.W, -q.X, -q.Y, -q.Z} }

func (q Quaternion[T]) Scale(a T) Quaternion[T] {
	return Quaternion[T]{q.W * a, q.X * a, q.Y * a, q.Z * a}
}

// Mul returns the Hamilton product q·o. It is not commutative.
//
// With q = (w₁, v₁) and o = (w₂, v₂):
//
//	q·o = (w₁w₂ − v₁·v₂, w₁v₂ + w₂v₁ + v₁×v₂)
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	v1, v2 := q.Imag(), o.Imag()
	w := q.W*o.W - v1.Dot(v2)
	v := v2.Scale(q.W).Add(v1.Scale(o.W)).Add(v1.Cross(v2))

	return QuaternionFromParts(w, v)
}

// Conj returns w − x·i − y·j − z·k.
func (q Quaternion[T]) Conj() Quaternion[T] { return Quaternion[T]{q.W, -q.X, -q.Y, -q.Z} }

// NormSqr returns w² + x² + y² + z², so q·Conj(q) == (NormSqr, 0, 0, 0).
func (q Quaternion[T]) NormSqr() T { return q.Vec().NormL2Sqr() }

// Rotate returns q·(0, v)·q̄, the rotation of v by a unit quaternion q.
// For a non-unit q the result is additionally scaled by NormSqr.
func (q Quaternion[T]) Rotate(v vector.Vec3[T]) vector.Vec3[T] {
	return q.Mul(QuaternionFromParts(0, v)).Mul(q.Conj()).Imag()
}

// Mat3 returns the rotation matrix of a unit quaternion: Mat3().DotVec(v)
// equals Rotate(v).
func (q Quaternion[T]) Mat3() matrix.Mat3[T] {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return matrix.FromRows3(
		vector.New3(w*w+x*x-y*y-z*z, 2*(x*y-w*z), 2*(x*z+w*y)),
		vector.New3(2*(x*y+w*z), w*w-x*x+y*y-z*z, 2*(y*z-w*x)),
		vector.New3(2*(x*z-w*y), 2*(y*z+w*x), w*w-x*x-y*y+z*z),
	)
}
