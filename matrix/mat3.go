// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/internal/array"
	"github.com/katalvlaran/vecmat/vector"
)

// Mat3 is a 3×3 matrix of three row vectors.
type Mat3[T vector.Scalar] [3]vector.Vec3[T]

// FromRows3 builds a Mat3 from its rows.
func FromRows3[T vector.Scalar](r0, r1, r2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

// FromCols3 builds a Mat3 from its columns.
func FromCols3[T vector.Scalar](c0, c1, c2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}.Transpose()
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T vector.Scalar]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag3 returns the diagonal matrix with d on its main diagonal.
func Diag3[T vector.Scalar](d vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{{d[0], 0, 0}, {0, d[1], 0}, {0, 0, d[2]}}
}

// Identity returns the multiplicative identity. The receiver is ignored; the
// method exists so generic code can reach the identity through a zero value.
func (Mat3[T]) Identity() Mat3[T] { return Identity3[T]() }

// At returns the entry in row i, column j. Indices outside 0..2 panic.
func (m Mat3[T]) At(i, j int) T { return m[i][j] }

// Row returns row i.
func (m Mat3[T]) Row(i int) vector.Vec3[T] { return m[i] }

// Col returns column j.
func (m Mat3[T]) Col(j int) vector.Vec3[T] {
	return vector.Vec3[T]{m[0][j], m[1][j], m[2][j]}
}

// Map applies f to every entry.
func (m Mat3[T]) Map(f func(T) T) Mat3[T] {
	return Mat3[T]{m[0].Map(f), m[1].Map(f), m[2].Map(f)}
}

// Zip combines m and o entry by entry.
func (m Mat3[T]) Zip(o Mat3[T], f func(a, b T) T) Mat3[T] {
	return Mat3[T]{m[0].Zip(o[0], f), m[1].Zip(o[1], f), m[2].Zip(o[2], f)}
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])}
}

// Mul returns the element-wise (Hadamard) product. For the matrix product use Dot.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2])}
}

// Div returns the element-wise quotient.
func (m Mat3[T]) Div(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2])}
}

// Scale returns m·a.
func (m Mat3[T]) Scale(a T) Mat3[T] {
	return Mat3[T]{m[0].Scale(a), m[1].Scale(a), m[2].Scale(a)}
}

// DivScalar returns m/a.
func (m Mat3[T]) DivScalar(a T) Mat3[T] {
	return Mat3[T]{m[0].DivScalar(a), m[1].DivScalar(a), m[2].DivScalar(a)}
}

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] {
	return Mat3[T]{m[0].Neg(), m[1].Neg(), m[2].Neg()}
}

// Sum returns the sum of all entries.
func (m Mat3[T]) Sum() T {
	rows := [3]T{m[0].Sum(), m[1].Sum(), m[2].Sum()}
	return array.Sum(rows[:])
}

// Max returns the largest entry.
func (m Mat3[T]) Max() T {
	rows := [3]T{m[0].Max(), m[1].Max(), m[2].Max()}
	return array.Max(rows[:])
}

// Min returns the smallest entry.
func (m Mat3[T]) Min() T {
	rows := [3]T{m[0].Min(), m[1].Min(), m[2].Min()}
	return array.Min(rows[:])
}

// NormL1 returns the sum of absolute entries (entry-wise L1, not the
// induced operator norm).
func (m Mat3[T]) NormL1() T {
	rows := [3]T{m[0].NormL1(), m[1].NormL1(), m[2].NormL1()}
	return array.Sum(rows[:])
}

// NormL2Sqr returns the squared Frobenius norm.
func (m Mat3[T]) NormL2Sqr() T {
	rows := [3]T{m[0].NormL2Sqr(), m[1].NormL2Sqr(), m[2].NormL2Sqr()}
	return array.Sum(rows[:])
}

// NormL2 returns the Frobenius norm.
func (m Mat3[T]) NormL2() T {
	return sqrt(m.NormL2Sqr())
}

// NormLInf returns the largest absolute entry.
func (m Mat3[T]) NormLInf() T {
	rows := [3]T{m[0].NormLInf(), m[1].NormLInf(), m[2].NormLInf()}
	return array.Max(rows[:])
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m.Col(0), m.Col(1), m.Col(2)}
}

// Dot returns the matrix product m·o.
func (m Mat3[T]) Dot(o Mat3[T]) Mat3[T] {
	ot := o.Transpose()
	var out Mat3[T]
	for i := range out {
		out[i] = vector.Vec3[T]{m[i].Dot(ot[0]), m[i].Dot(ot[1]), m[i].Dot(ot[2])}
	}

	return out
}

// DotVec returns the matrix-vector product m·v.
func (m Mat3[T]) DotVec(v vector.Vec3[T]) vector.Vec3[T] {
	return vector.Vec3[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Det returns the determinant, the scalar triple product r0·(r1×r2).
func (m Mat3[T]) Det() T {
	return m[0].Dot(m[1].Cross(m[2]))
}

// Inv returns m⁻¹ without checking for singularity.
//
// Implementation:
//   - The columns of the adjugate are r1×r2, r2×r0 and r0×r1, since
//     rᵢ·(rⱼ×rₖ) is det for the cyclic triple and 0 otherwise.
//   - Divide by det = r0·(r1×r2).
func (m Mat3[T]) Inv() Mat3[T] {
	return m.invWithDet(m.Det())
}

func (m Mat3[T]) invWithDet(det T) Mat3[T] {
	adjT := Mat3[T]{
		m[1].Cross(m[2]),
		m[2].Cross(m[0]),
		m[0].Cross(m[1]),
	}

	return adjT.Transpose().DivScalar(det)
}

// TryInv returns m⁻¹, or ErrSingular when |det| <= eps.
func (m Mat3[T]) TryInv(eps float64) (Mat3[T], error) {
	return tryInv(m.Det(), eps, m.invWithDet)
}

// IsZero reports whether every entry is zero.
func (m Mat3[T]) IsZero() bool { return m == Mat3[T]{} }

// AbsDiffEq reports whether every entry of m is within eps of o.
func (m Mat3[T]) AbsDiffEq(o Mat3[T], eps T) bool {
	return m[0].AbsDiffEq(o[0], eps) && m[1].AbsDiffEq(o[1], eps) && m[2].AbsDiffEq(o[2], eps)
}
