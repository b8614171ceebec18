// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/internal/array"
	"github.com/katalvlaran/vecmat/vector"
)

// Mat2 is a 2×2 matrix of two row vectors.
type Mat2[T vector.Scalar] [2]vector.Vec2[T]

func FromRows2[T vector.Scalar](r0, r1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

func FromCols2[T vector.Scalar](c0, c1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{c0, c1}.Transpose()
}

func Identity2[T vector.Scalar]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

func Diag2[T vector.Scalar](d vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{{d[0], 0}, {0, d[1]}}
}

// Identity returns the multiplicative identity; the receiver is ignored.
func (Mat2[T]) Identity() Mat2[T] { return Identity2[T]() }

func (m Mat2[T]) At(i, j int) T            { return m[i][j] }
func (m Mat2[T]) Row(i int) vector.Vec2[T] { return m[i] }
func (m Mat2[T]) Col(j int) vector.Vec2[T] { return vector.Vec2[T]{m[0][j], m[1][j]} }
func (m Mat2[T]) Map(f func(T) T) Mat2[T]  { return Mat2[T]{m[0].Map(f), m[1].Map(f)} }
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T]    { return Mat2[T]{m[0].Add(o[0]), m[1].Add(o[1])} }
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T]    { return Mat2[T]{m[0].Sub(o[0]), m[1].Sub(o[1])} }
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T]    { return Mat2[T]{m[0].Mul(o[0]), m[1].Mul(o[1])} }
func (m Mat2[T]) Div(o Mat2[T]) Mat2[T]    { return Mat2[T]{m[0].Div(o[0]), m[1].Div(o[1])} }
func (m Mat2[T]) Scale(a T) Mat2[T]        { return Mat2[T]{m[0].Scale(a), m[1].Scale(a)} }
func (m Mat2[T]) DivScalar(a T) Mat2[T]    { return Mat2[T]{m[0].DivScalar(a), m[1].DivScalar(a)} }
func (m Mat2[T]) Neg() Mat2[T]             { return Mat2[T]{m[0].Neg(), m[1].Neg()} }
func (m Mat2[T]) Transpose() Mat2[T]       { return Mat2[T]{m.Col(0), m.Col(1)} }
func (m Mat2[T]) IsZero() bool             { return m == Mat2[T]{} }

func (m Mat2[T]) Zip(o Mat2[T], f func(a, b T) T) Mat2[T] {
	return Mat2[T]{m[0].Zip(o[0], f), m[1].Zip(o[1], f)}
}

func (m Mat2[T]) Sum() T {
	rows := [2]T{m[0].Sum(), m[1].Sum()}
	return array.Sum(rows[:])
}

func (m Mat2[T]) Max() T {
	rows := [2]T{m[0].Max(), m[1].Max()}
	return array.Max(rows[:])
}

func (m Mat2[T]) Min() T {
	rows := [2]T{m[0].Min(), m[1].Min()}
	return array.Min(rows[:])
}

func (m Mat2[T]) NormL1() T {
	rows := [2]T{m[0].NormL1(), m[1].NormL1()}
	return array.Sum(rows[:])
}

func (m Mat2[T]) NormL2Sqr() T {
	rows := [2]T{m[0].NormL2Sqr(), m[1].NormL2Sqr()}
	return array.Sum(rows[:])
}

func (m Mat2[T]) NormL2() T { return sqrt(m.NormL2Sqr()) }

func (m Mat2[T]) NormLInf() T {
	rows := [2]T{m[0].NormLInf(), m[1].NormLInf()}
	return array.Max(rows[:])
}

// Dot returns the matrix product m·o.
func (m Mat2[T]) Dot(o Mat2[T]) Mat2[T] {
	ot := o.Transpose()
	return Mat2[T]{
		{m[0].Dot(ot[0]), m[0].Dot(ot[1])},
		{m[1].Dot(ot[0]), m[1].Dot(ot[1])},
	}
}

// DotVec returns m·v.
func (m Mat2[T]) DotVec(v vector.Vec2[T]) vector.Vec2[T] {
	return vector.Vec2[T]{m[0].Dot(v), m[1].Dot(v)}
}

// Det returns ad − bc.
func (m Mat2[T]) Det() T {
	return m[0].Cross(m[1])
}

// Inv returns m⁻¹ = [[d, −b], [−c, a]] / det, unchecked.
func (m Mat2[T]) Inv() Mat2[T] {
	return m.invWithDet(m.Det())
}

func (m Mat2[T]) invWithDet(det T) Mat2[T] {
	return Mat2[T]{
		{m[1][1], -m[0][1]},
		{-m[1][0], m[0][0]},
	}.DivScalar(det)
}

// TryInv returns m⁻¹, or ErrSingular when |det| <= eps.
func (m Mat2[T]) TryInv(eps float64) (Mat2[T], error) {
	return tryInv(m.Det(), eps, m.invWithDet)
}

func (m Mat2[T]) AbsDiffEq(o Mat2[T], eps T) bool {
	return m[0].AbsDiffEq(o[0], eps) && m[1].AbsDiffEq(o[1], eps)
}
