// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// lookAtAnyThreshold bounds |dir.z| below which +z is far enough from dir to
// serve as the up hint; above it +y is used. Either way the angle between
// dir and the hint stays away from 0 and π.
const lookAtAnyThreshold = 0.5

// LookAt returns the rotation mapping −z onto dir and +y into the plane
// spanned by dir and up, for a unit dir.
//
// Implementation:
//   - right    = normalize(dir × up)
//   - strictUp = right × dir
//   - the matrix with rows [right, strictUp, −dir], transposed, so its
//     columns are the images of +x, +y and +z.
//
// dir parallel to up (or either zero) is undefined: the cross product is
// zero and its normalization yields NaNs. Use TryLookAt or LookAtAny when
// that can happen.
func LookAt[T vector.Float](dir, up vector.Vec3[T]) Linear3[T] {
	right := dir.Cross(up).Normalize()
	return lookAtBasis(dir, right)
}

func lookAtBasis[T vector.Float](dir, right vector.Vec3[T]) Linear3[T] {
	strictUp := right.Cross(dir)
	return NewLinear3(matrix.FromRows3(right, strictUp, dir.Neg()).Transpose())
}

// LookAtAny returns one of the rotations mapping −z onto the unit vector dir,
// choosing the up hint itself: +z when |dir.z| < 0.5, otherwise +y.
func LookAtAny[T vector.Float](dir vector.Vec3[T]) Linear3[T] {
	return LookAt(dir, lookAtAnyUp(dir))
}

func lookAtAnyUp[T vector.Float](dir vector.Vec3[T]) vector.Vec3[T] {
	if math.Abs(float64(dir.Z())) < lookAtAnyThreshold {
		return vector.New3[T](0, 0, 1)
	}

	return vector.New3[T](0, 1, 0)
}

// TryLookAt is LookAt returning ErrDegenerateBasis (wrapped with the
// "LookAt" tag) when |dir × up| <= eps instead of producing NaNs.
func TryLookAt[T vector.Float](dir, up vector.Vec3[T], opts ...Option) (Linear3[T], error) {
	o := gatherOptions(opts...)
	c := dir.Cross(up)
	n := float64(c.NormL2())
	if math.IsNaN(n) || n <= o.eps {
		o.logger.Debug("transform: rejected degenerate basis", "op", opLookAt, "eps", o.eps, "cross_norm", n)
		return Linear3[T]{}, transformErrorf(opLookAt, ErrDegenerateBasis)
	}

	return lookAtBasis(dir, c.DivScalar(T(n))), nil
}
