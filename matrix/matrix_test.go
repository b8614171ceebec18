package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func TestIdentity_ZeroValueMethod(t *testing.T) {
	require.Equal(t, matrix.Identity2[int](), matrix.Mat2[int]{}.Identity())
	require.Equal(t, matrix.Identity3[float32](), matrix.Mat3[float32]{}.Identity())
	require.Equal(t, matrix.Diag4(vector.New4(1.0, 1, 1, 1)), matrix.Mat4[float64]{}.Identity())
}

func TestRowsColsAt(t *testing.T) {
	m := matrix.FromRows3(vector.New3(1, 2, 3), vector.New3(4, 5, 6), vector.New3(7, 8, 9))
	require.Equal(t, 6, m.At(1, 2))
	require.Equal(t, vector.New3(4, 5, 6), m.Row(1))
	require.Equal(t, vector.New3(3, 6, 9), m.Col(2))
	require.Equal(t, m, matrix.FromCols3(m.Col(0), m.Col(1), m.Col(2)))
	require.Panics(t, func() { _ = m.At(3, 0) })
}

func TestTranspose(t *testing.T) {
	m := matrix.FromRows2(vector.New2(1, 2), vector.New2(3, 4))
	require.Equal(t, matrix.FromRows2(vector.New2(1, 3), vector.New2(2, 4)), m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestElementwise(t *testing.T) {
	a := matrix.FromRows2(vector.New2(1, -2), vector.New2(3, 4))
	b := matrix.FromRows2(vector.New2(2, 2), vector.New2(-1, 2))

	require.Equal(t, matrix.FromRows2(vector.New2(3, 0), vector.New2(2, 6)), a.Add(b))
	require.Equal(t, matrix.FromRows2(vector.New2(-1, -4), vector.New2(4, 2)), a.Sub(b))
	require.Equal(t, matrix.FromRows2(vector.New2(2, -4), vector.New2(-3, 8)), a.Mul(b))
	require.Equal(t, matrix.FromRows2(vector.New2(0, -1), vector.New2(-3, 2)), a.Div(b))
	require.Equal(t, matrix.FromRows2(vector.New2(3, -6), vector.New2(9, 12)), a.Scale(3))
	require.Equal(t, a.Neg(), a.Map(func(x int) int { return -x }))
	require.Equal(t, a.Add(b), a.Zip(b, func(x, y int) int { return x + y }))
	require.True(t, a.Sub(a).IsZero())
}

func TestReductions(t *testing.T) {
	m := matrix.FromRows3(vector.New3(1.0, -7, 2), vector.New3(0.0, 3, -1), vector.New3(4.0, 0, 2))
	require.Equal(t, 4.0, m.Sum())
	require.Equal(t, 4.0, m.Max())
	require.Equal(t, -7.0, m.Min())
	require.Equal(t, 20.0, m.NormL1())
	require.Equal(t, 84.0, m.NormL2Sqr())
	require.InDelta(t, 9.16515139, m.NormL2(), 1e-8)
	require.Equal(t, 7.0, m.NormLInf())
}

func TestDotVec_ConsistentWithTranspose(t *testing.T) {
	rng := newRand(0xA1)
	for range sampleAttempts {
		m := randMat3(rng)
		v := randVec3(rng)
		// (mᵀ·v)[j] == Σ_i m[i][j]·v[i]
		mt := m.Transpose().DotVec(v)
		for j := 0; j < 3; j++ {
			want := m[0][j]*v[0] + m[1][j]*v[1] + m[2][j]*v[2]
			assert.InDelta(t, want, mt[j], 1e-12)
		}
	}
}

func TestDot_Associativity(t *testing.T) {
	rng := newRand(0xA2)
	for range sampleAttempts {
		a, b := randMat4(rng), randMat4(rng)
		v := randVec4(rng)
		require.True(t, a.Dot(b).DotVec(v).AbsDiffEq(a.DotVec(b.DotVec(v)), 1e-12))
		require.True(t, a.Dot(b).Transpose().AbsDiffEq(b.Transpose().Dot(a.Transpose()), 1e-12))
	}
}

func TestDot_Identity(t *testing.T) {
	m := matrix.FromRows2(vector.New2(5, 6), vector.New2(7, 8))
	require.Equal(t, m, m.Dot(matrix.Identity2[int]()))
	require.Equal(t, m, matrix.Identity2[int]().Dot(m))
	// [[5,6],[7,8]]·[[1,2],[3,4]] = [[23,34],[31,46]]
	n := matrix.FromRows2(vector.New2(1, 2), vector.New2(3, 4))
	require.Equal(t, matrix.FromRows2(vector.New2(23, 34), vector.New2(31, 46)), m.Dot(n))
}

func TestUpper3(t *testing.T) {
	m := matrix.Identity4[int]()
	m[0][3] = 9
	require.Equal(t, matrix.Identity3[int](), m.Upper3())
}
