package interop_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/vecmat/interop"
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/transform"
	"github.com/katalvlaran/vecmat/vector"
)

func TestVectors(t *testing.T) {
	require.Equal(t, f64.Vec2{1, -2}, interop.Vec2(vector.New2(1, -2)))
	require.Equal(t, f64.Vec3{1, -2, 0.5}, interop.Vec3(vector.New3(1.0, -2.0, 0.5)))
	require.Equal(t, f64.Vec4{1, 2, 3, 4}, interop.Vec4(vector.New4[float32](1, 2, 3, 4)))

	require.Equal(t, vector.New2(1, -2), interop.FromVec2[int](f64.Vec2{1, -2}))
	require.Equal(t, vector.New3[int32](1, 2, -3), interop.FromVec3[int32](f64.Vec3{1.9, 2, -3.9}))
	require.Equal(t, vector.New4(0.5, 1.5, 2.5, 1), interop.FromVec4[float64](f64.Vec4{0.5, 1.5, 2.5, 1}))
}

func TestMatricesAreRowMajor(t *testing.T) {
	m3 := matrix.FromRows3(
		vector.New3(1, 2, 3),
		vector.New3(4, 5, 6),
		vector.New3(7, 8, 9),
	)
	a3 := interop.Mat3(m3)
	require.Equal(t, f64.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, a3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, float64(m3.At(r, c)), a3[3*r+c])
		}
	}
	require.Equal(t, m3, interop.FromMat3[int](a3))

	m4 := matrix.Identity4[float64]().Add(matrix.FromRows4(
		vector.New4(0.0, 1, 0, 0),
		vector.New4(0.0, 0, 0, 0),
		vector.New4(0.0, 0, 0, 0),
		vector.New4(0.0, 0, 2, 0),
	))
	a4 := interop.Mat4(m4)
	require.Equal(t, 1.0, a4[1])
	require.Equal(t, 2.0, a4[4*3+2])
	require.Equal(t, m4, interop.FromMat4[float64](a4))
}

func TestAff3(t *testing.T) {
	l := transform.NewLinear2(matrix.FromRows2(vector.New2(1, 2), vector.New2(3, 4)))
	s := transform.NewShift2(vector.New2(5, 6))

	a := interop.Aff3(s, l)
	require.Equal(t, f64.Aff3{1, 2, 5, 3, 4, 6}, a)

	s2, l2 := interop.FromAff3[int](a)
	require.Equal(t, s, s2)
	require.Equal(t, l, l2)
}

func TestAff4(t *testing.T) {
	l := transform.NewLinear3(matrix.FromRows3(
		vector.New3(1.0, 2, 3),
		vector.New3(4.0, 5, 6),
		vector.New3(7.0, 8, 9),
	))
	s := transform.NewShift3(vector.New3(-1.0, -2, -3))

	a := interop.Aff4(s, l)
	require.Equal(t, f64.Aff4{1, 2, 3, -1, 4, 5, 6, -2, 7, 8, 9, -3}, a)

	s2, l2 := interop.FromAff4[float64](a)
	require.Equal(t, s, s2)
	require.Equal(t, l, l2)
}

// A "shift, then linear" pipeline is reordered into the canonical
// "linear, then shift" pair before it is stored as an affine matrix.
func TestReorderThenStore(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	normal3 := func() vector.Vec3[float64] {
		return vector.New3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
	}

	for range 256 {
		l := transform.NewLinear3(matrix.FromRows3(normal3(), normal3(), normal3()))
		s := transform.NewShift3(normal3())
		x := normal3()

		s2, l2 := transform.ReorderLinear(l, s)
		stored := interop.Aff4(s2, l2)

		// Evaluate the stored matrix directly: rows of [L | t] against (x, 1).
		var got vector.Vec3[float64]
		for r := range got {
			got[r] = stored[4*r]*x[0] + stored[4*r+1]*x[1] + stored[4*r+2]*x[2] + stored[4*r+3]
		}
		assert.True(t, got.AbsDiffEq(l.Apply(s.Apply(x)), 1e-12))

		hs, hl := interop.FromAff4[float64](stored)
		assert.True(t, hs.Apply(hl.Apply(x)).AbsDiffEq(got, 1e-12))
	}
}

func TestHomogeneous(t *testing.T) {
	l := transform.NewLinear3(matrix.Diag3(vector.New3(2, 3, 4)))
	s := transform.NewShift3(vector.New3(1, 1, 1))
	h := interop.Homogeneous(s, l)

	require.Equal(t, vector.New4(3, 4, 5, 1), h.Apply(vector.New4(1, 1, 1, 1)))
	require.Equal(t, vector.New4(2, 3, 4, 0), h.Apply(vector.New4(1, 1, 1, 0)))
	require.Equal(t, l.Matrix(), h.Matrix().Upper3())

	// Chaining homogeneous maps composes the affine pairs.
	hh := h.Chain(h)
	p := vector.New3(1, -1, 2)
	want := s.Apply(l.Apply(s.Apply(l.Apply(p))))
	require.Equal(t, vector.New4(want[0], want[1], want[2], 1), hh.Apply(vector.New4(p[0], p[1], p[2], 1)))
}
