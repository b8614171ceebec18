// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// Linear is a linear-map transform, x ↦ M·x, over a square matrix M.
//
// The zero value wraps the zero matrix (everything maps to the origin);
// use Identity or a constructor for anything else.
type Linear[M Matrix[M, V, T], V Vector[V, T], T vector.Scalar] struct {
	lin M
}

// Linear2 is a linear map of the plane.
type Linear2[T vector.Scalar] = Linear[matrix.Mat2[T], vector.Vec2[T], T]

// Linear3 is a linear map of 3-D space.
type Linear3[T vector.Scalar] = Linear[matrix.Mat3[T], vector.Vec3[T], T]

// Linear4 is a linear map of 4-D (typically homogeneous) space.
type Linear4[T vector.Scalar] = Linear[matrix.Mat4[T], vector.Vec4[T], T]

// NewLinear2 wraps m as a linear transform.
func NewLinear2[T vector.Scalar](m matrix.Mat2[T]) Linear2[T] { return Linear2[T]{lin: m} }

// NewLinear3 wraps m as a linear transform.
func NewLinear3[T vector.Scalar](m matrix.Mat3[T]) Linear3[T] { return Linear3[T]{lin: m} }

// NewLinear4 wraps m as a linear transform.
func NewLinear4[T vector.Scalar](m matrix.Mat4[T]) Linear4[T] { return Linear4[T]{lin: m} }

// Matrix returns the underlying matrix.
func (l Linear[M, V, T]) Matrix() M { return l.lin }

// Identity returns the identity map.
func (Linear[M, V, T]) Identity() Linear[M, V, T] {
	var m M
	return Linear[M, V, T]{lin: m.Identity()}
}

// Inv returns the inverse map. The matrix is not checked for singularity;
// see TryInv.
func (l Linear[M, V, T]) Inv() Linear[M, V, T] {
	return Linear[M, V, T]{lin: l.lin.Inv()}
}

// Apply returns M·p.
func (l Linear[M, V, T]) Apply(p V) V {
	return l.lin.DotVec(p)
}

// Deriv returns M·dir: a linear map is its own derivative everywhere.
func (l Linear[M, V, T]) Deriv(_, dir V) V {
	return l.Apply(dir)
}

// Chain returns the map applying other first, then l: M_l · M_other.
func (l Linear[M, V, T]) Chain(other Linear[M, V, T]) Linear[M, V, T] {
	return Linear[M, V, T]{lin: l.lin.Dot(other.lin)}
}

// NormalTransform returns the linear map (M⁻¹)ᵀ, which carries surface
// normals of l's input to normals of its output. Unchecked; see
// TryNormalTransform.
func (l Linear[M, V, T]) NormalTransform() Linear[M, V, T] {
	return Linear[M, V, T]{lin: l.lin.Inv().Transpose()}
}

// ApplyDir maps the tangent dir and normalizes the result.
func (l Linear[M, V, T]) ApplyDir(pos, dir V) V {
	return l.Deriv(pos, dir).Normalize()
}

// ApplyNormal maps normal through the inverse-transpose and normalizes it.
// Under a non-uniform scale this keeps the result orthogonal to mapped
// tangents, which applying M directly would not.
func (l Linear[M, V, T]) ApplyNormal(_, normal V) V {
	return l.NormalTransform().Apply(normal).Normalize()
}

// TryInv returns the inverse map, or an error wrapping matrix.ErrSingular
// when |det M| <= eps (DefaultEpsilon unless WithEpsilon is given).
func (l Linear[M, V, T]) TryInv(opts ...Option) (Linear[M, V, T], error) {
	o := gatherOptions(opts...)
	inv, err := l.lin.TryInv(o.eps)
	if err != nil {
		o.logger.Debug("transform: rejected singular linear map", "op", opInverse, "eps", o.eps)
		return Linear[M, V, T]{}, err
	}

	return Linear[M, V, T]{lin: inv}, nil
}

// TryNormalTransform is NormalTransform with the singularity check of TryInv.
func (l Linear[M, V, T]) TryNormalTransform(opts ...Option) (Linear[M, V, T], error) {
	inv, err := l.TryInv(opts...)
	if err != nil {
		return Linear[M, V, T]{}, transformErrorf(opNormalTransform, err)
	}

	return Linear[M, V, T]{lin: inv.lin.Transpose()}, nil
}

// AbsDiffEq reports whether the matrices agree within eps per entry.
func (l Linear[M, V, T]) AbsDiffEq(o Linear[M, V, T], eps T) bool {
	return l.lin.AbsDiffEq(o.lin, eps)
}
