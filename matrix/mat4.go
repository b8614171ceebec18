// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/internal/array"
	"github.com/katalvlaran/vecmat/vector"
)

// Mat4 is a 4×4 matrix of four row vectors, typically a homogeneous
// transform acting on Vec4 points (w = 1) and directions (w = 0).
type Mat4[T vector.Scalar] [4]vector.Vec4[T]

// FromRows4 builds a Mat4 from its rows.
func FromRows4[T vector.Scalar](r0, r1, r2, r3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

// FromCols4 builds a Mat4 from its columns.
func FromCols4[T vector.Scalar](c0, c1, c2, c3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{c0, c1, c2, c3}.Transpose()
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T vector.Scalar]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Diag4 returns the diagonal matrix with d on its main diagonal.
func Diag4[T vector.Scalar](d vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{{d[0], 0, 0, 0}, {0, d[1], 0, 0}, {0, 0, d[2], 0}, {0, 0, 0, d[3]}}
}

// Identity returns the multiplicative identity; the receiver is ignored.
func (Mat4[T]) Identity() Mat4[T] { return Identity4[T]() }

func (m Mat4[T]) At(i, j int) T            { return m[i][j] }
func (m Mat4[T]) Row(i int) vector.Vec4[T] { return m[i] }

func (m Mat4[T]) Col(j int) vector.Vec4[T] {
	return vector.Vec4[T]{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// Upper3 returns the upper-left 3×3 block (the linear part of an affine
// homogeneous transform).
func (m Mat4[T]) Upper3() Mat3[T] {
	return Mat3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

func (m Mat4[T]) Map(f func(T) T) Mat4[T] {
	return Mat4[T]{m[0].Map(f), m[1].Map(f), m[2].Map(f), m[3].Map(f)}
}

func (m Mat4[T]) Zip(o Mat4[T], f func(a, b T) T) Mat4[T] {
	return Mat4[T]{m[0].Zip(o[0], f), m[1].Zip(o[1], f), m[2].Zip(o[2], f), m[3].Zip(o[3], f)}
}

func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}

// Mul is the element-wise product; see Dot for the matrix product.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2]), m[3].Mul(o[3])}
}

func (m Mat4[T]) Div(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2]), m[3].Div(o[3])}
}

func (m Mat4[T]) Scale(a T) Mat4[T] {
	return Mat4[T]{m[0].Scale(a), m[1].Scale(a), m[2].Scale(a), m[3].Scale(a)}
}

func (m Mat4[T]) DivScalar(a T) Mat4[T] {
	return Mat4[T]{m[0].DivScalar(a), m[1].DivScalar(a), m[2].DivScalar(a), m[3].DivScalar(a)}
}

func (m Mat4[T]) Neg() Mat4[T] {
	return Mat4[T]{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()}
}

func (m Mat4[T]) Sum() T {
	rows := [4]T{m[0].Sum(), m[1].Sum(), m[2].Sum(), m[3].Sum()}
	return array.Sum(rows[:])
}

func (m Mat4[T]) Max() T {
	rows := [4]T{m[0].Max(), m[1].Max(), m[2].Max(), m[3].Max()}
	return array.Max(rows[:])
}

func (m Mat4[T]) Min() T {
	rows := [4]T{m[0].Min(), m[1].Min(), m[2].Min(), m[3].Min()}
	return array.Min(rows[:])
}

func (m Mat4[T]) NormL1() T {
	rows := [4]T{m[0].NormL1(), m[1].NormL1(), m[2].NormL1(), m[3].NormL1()}
	return array.Sum(rows[:])
}

func (m Mat4[T]) NormL2Sqr() T {
	rows := [4]T{m[0].NormL2Sqr(), m[1].NormL2Sqr(), m[2].NormL2Sqr(), m[3].NormL2Sqr()}
	return array.Sum(rows[:])
}

// NormL2 returns the Frobenius norm.
func (m Mat4[T]) NormL2() T { return sqrt(m.NormL2Sqr()) }

func (m Mat4[T]) NormLInf() T {
	rows := [4]T{m[0].NormLInf(), m[1].NormLInf(), m[2].NormLInf(), m[3].NormLInf()}
	return array.Max(rows[:])
}

func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Col(0), m.Col(1), m.Col(2), m.Col(3)}
}

// Dot returns the matrix product m·o.
func (m Mat4[T]) Dot(o Mat4[T]) Mat4[T] {
	ot := o.Transpose()
	var out Mat4[T]
	for i := range out {
		for j := range out[i] {
			out[i][j] = m[i].Dot(ot[j])
		}
	}

	return out
}

// DotVec returns m·v.
func (m Mat4[T]) DotVec(v vector.Vec4[T]) vector.Vec4[T] {
	return vector.Vec4[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// minors4 holds the twelve 2×2 determinants used by Det and Inv:
// b[0..5] are built from rows 0 and 1, b[6..11] from rows 2 and 3.
type minors4[T vector.Scalar] [12]T

func (m Mat4[T]) minors() minors4[T] {
	a0, a1, a2, a3 := m[0], m[1], m[2], m[3]

	return minors4[T]{
		a0[0]*a1[1] - a0[1]*a1[0],
		a0[0]*a1[2] - a0[2]*a1[0],
		a0[0]*a1[3] - a0[3]*a1[0],
		a0[1]*a1[2] - a0[2]*a1[1],
		a0[1]*a1[3] - a0[3]*a1[1],
		a0[2]*a1[3] - a0[3]*a1[2],
		a2[0]*a3[1] - a2[1]*a3[0],
		a2[0]*a3[2] - a2[2]*a3[0],
		a2[0]*a3[3] - a2[3]*a3[0],
		a2[1]*a3[2] - a2[2]*a3[1],
		a2[1]*a3[3] - a2[3]*a3[1],
		a2[2]*a3[3] - a2[3]*a3[2],
	}
}

func (b minors4[T]) det() T {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Det returns the determinant via the Laplace expansion over rows (0,1)
// and (2,3).
func (m Mat4[T]) Det() T {
	return m.minors().det()
}

// Inv returns m⁻¹ without checking for singularity.
func (m Mat4[T]) Inv() Mat4[T] {
	b := m.minors()
	return m.invWith(b, b.det())
}

func (m Mat4[T]) invWith(b minors4[T], det T) Mat4[T] {
	a0, a1, a2, a3 := m[0], m[1], m[2], m[3]
	adj := Mat4[T]{
		{
			a1[1]*b[11] - a1[2]*b[10] + a1[3]*b[9],
			a0[2]*b[10] - a0[1]*b[11] - a0[3]*b[9],
			a3[1]*b[5] - a3[2]*b[4] + a3[3]*b[3],
			a2[2]*b[4] - a2[1]*b[5] - a2[3]*b[3],
		},
		{
			a1[2]*b[8] - a1[0]*b[11] - a1[3]*b[7],
			a0[0]*b[11] - a0[2]*b[8] + a0[3]*b[7],
			a3[2]*b[2] - a3[0]*b[5] - a3[3]*b[1],
			a2[0]*b[5] - a2[2]*b[2] + a2[3]*b[1],
		},
		{
			a1[0]*b[10] - a1[1]*b[8] + a1[3]*b[6],
			a0[1]*b[8] - a0[0]*b[10] - a0[3]*b[6],
			a3[0]*b[4] - a3[1]*b[2] + a3[3]*b[0],
			a2[1]*b[2] - a2[0]*b[4] - a2[3]*b[0],
		},
		{
			a1[1]*b[7] - a1[0]*b[9] - a1[2]*b[6],
			a0[0]*b[9] - a0[1]*b[7] + a0[2]*b[6],
			a3[1]*b[1] - a3[0]*b[3] - a3[2]*b[0],
			a2[0]*b[3] - a2[1]*b[1] + a2[2]*b[0],
		},
	}

	return adj.DivScalar(det)
}

// TryInv returns m⁻¹, or ErrSingular when |det| <= eps.
func (m Mat4[T]) TryInv(eps float64) (Mat4[T], error) {
	b := m.minors()
	return tryInv(b.det(), eps, func(det T) Mat4[T] { return m.invWith(b, det) })
}

func (m Mat4[T]) IsZero() bool { return m == Mat4[T]{} }

func (m Mat4[T]) AbsDiffEq(o Mat4[T], eps T) bool {
	for i := range m {
		if !m[i].AbsDiffEq(o[i], eps) {
			return false
		}
	}

	return true
}
