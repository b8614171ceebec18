// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/vecmat/vector"

// Transform is a map over points of type P whose concrete type is S.
//
//   - Identity returns the transform with no effect; its receiver is ignored.
//   - Inv returns g with g.Apply(t.Apply(p)) == p and t.Apply(g.Apply(p)) == p.
//   - Apply maps a point forward.
//   - Deriv is the directional derivative of Apply at p along dir. For the
//     affine kinds here it does not depend on p and never evaluates Apply(p).
//   - Chain returns the transform applying other first, then the receiver.
type Transform[P, S any] interface {
	Identity() S
	Inv() S
	Apply(p P) P
	Deriv(p, dir P) P
	Chain(other S) S
}

// Directional extends Transform with tangent and normal mapping.
//
// ApplyDir maps a tangent direction at pos and normalizes it, i.e.
// Normalize(Deriv(pos, dir)). ApplyNormal maps a surface normal through the
// inverse-transpose of the linear part and normalizes it.
type Directional[P, S any] interface {
	Transform[P, S]
	ApplyDir(pos, dir P) P
	ApplyNormal(pos, normal P) P
}

// Vector is the point/offset constraint: the vector types of package vector
// satisfy it for their own scalar.
type Vector[V any, T vector.Scalar] interface {
	Add(o V) V
	Neg() V
	Normalize() V
	AbsDiffEq(o V, eps T) bool
}

// Matrix is the linear-part constraint: the square matrix types of package
// matrix satisfy it for their row vector type.
type Matrix[M, V any, T vector.Scalar] interface {
	Identity() M
	Dot(o M) M
	DotVec(v V) V
	Transpose() M
	Inv() M
	TryInv(eps float64) (M, error)
	AbsDiffEq(o M, eps T) bool
}
