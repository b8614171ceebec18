package hypercomplex_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/hypercomplex"
	"github.com/katalvlaran/vecmat/transform"
	"github.com/katalvlaran/vecmat/vector"
)

func TestFormat_Quaternion(t *testing.T) {
	q := hypercomplex.NewQuaternion(1, -2, 3, -4)
	require.Equal(t, "Quaternion(1, -2, 3, -4)", fmt.Sprintf("%v", q))
	require.Equal(t, "Quaternion(1, -2, 3, -4)", fmt.Sprintf("%s", q))
	require.Equal(t, "Quaternion(1, -2, 3, -4)", fmt.Sprintf("%#v", q))
	require.Equal(t, "Quaternion(1, -2, 3, -4)", q.String())

	qf := hypercomplex.NewQuaternion(0.5, -2.0, 3.25, 0.0)
	require.Equal(t, "Quaternion(0.5, -2, 3.25, 0)", qf.String())
}

func TestFormat_Complex(t *testing.T) {
	require.Equal(t, "Complex(3, -7)", hypercomplex.NewComplex(3, -7).String())
	require.Equal(t, "Complex(1.5, -0.25)", fmt.Sprint(hypercomplex.NewComplex(1.5, -0.25)))
	require.Equal(t, "Complex(1, 2)", fmt.Sprintf("%#v", hypercomplex.NewComplex[int8](1, 2)))
}

func TestComplex_Arithmetic(t *testing.T) {
	a := hypercomplex.NewComplex(1, 2)
	b := hypercomplex.NewComplex(3, -1)

	require.Equal(t, hypercomplex.NewComplex(4, 1), a.Add(b))
	require.Equal(t, hypercomplex.NewComplex(-2, 3), a.Sub(b))
	require.Equal(t, hypercomplex.NewComplex(5, 5), a.Mul(b))
	require.Equal(t, hypercomplex.NewComplex(1, -2), a.Conj())
	require.Equal(t, hypercomplex.NewComplex(-1, -2), a.Neg())
	require.Equal(t, hypercomplex.NewComplex(2, 4), a.Scale(2))
	require.Equal(t, 5, a.NormSqr())
	require.Equal(t, hypercomplex.NewComplex(a.NormSqr(), 0), a.Mul(a.Conj()))

	i := hypercomplex.NewComplex(0, 1)
	require.Equal(t, hypercomplex.NewComplex(-1, 0), i.Mul(i))

	require.Equal(t, vector.New2(1, 2), a.Vec())
	require.Equal(t, a, hypercomplex.ComplexFromVec(a.Vec()))
}

func TestQuaternion_HamiltonUnits(t *testing.T) {
	one := hypercomplex.NewQuaternion(1, 0, 0, 0)
	i := hypercomplex.NewQuaternion(0, 1, 0, 0)
	j := hypercomplex.NewQuaternion(0, 0, 1, 0)
	k := hypercomplex.NewQuaternion(0, 0, 0, 1)
	minusOne := one.Neg()

	require.Equal(t, minusOne, i.Mul(i))
	require.Equal(t, minusOne, j.Mul(j))
	require.Equal(t, minusOne, k.Mul(k))
	require.Equal(t, minusOne, i.Mul(j).Mul(k))

	require.Equal(t, k, i.Mul(j))
	require.Equal(t, i, j.Mul(k))
	require.Equal(t, j, k.Mul(i))
	require.Equal(t, k.Neg(), j.Mul(i))

	q := hypercomplex.NewQuaternion(1, -2, 3, -4)
	require.Equal(t, q, one.Mul(q))
	require.Equal(t, q, q.Mul(one))
}

func TestQuaternion_Arithmetic(t *testing.T) {
	q := hypercomplex.NewQuaternion(1, -2, 3, -4)
	p := hypercomplex.NewQuaternion(2, 0, -1, 5)

	require.Equal(t, hypercomplex.NewQuaternion(3, -2, 2, 1), q.Add(p))
	require.Equal(t, hypercomplex.NewQuaternion(-1, -2, 4, -9), q.Sub(p))
	require.Equal(t, hypercomplex.NewQuaternion(1, 2, -3, 4), q.Conj())
	require.Equal(t, hypercomplex.NewQuaternion(3, -6, 9, -12), q.Scale(3))
	require.Equal(t, 30, q.NormSqr())
	require.Equal(t, hypercomplex.NewQuaternion(30, 0, 0, 0), q.Mul(q.Conj()))

	// |q·p|² == |q|²·|p|² and (q·p)* == p*·q*.
	require.Equal(t, q.NormSqr()*p.NormSqr(), q.Mul(p).NormSqr())
	require.Equal(t, p.Conj().Mul(q.Conj()), q.Mul(p).Conj())

	require.Equal(t, 1, q.Real())
	require.Equal(t, vector.New3(-2, 3, -4), q.Imag())
	require.Equal(t, vector.New4(1, -2, 3, -4), q.Vec())
	require.Equal(t, q, hypercomplex.QuaternionFromParts(q.Real(), q.Imag()))
}

func TestQuaternion_AxisAngle(t *testing.T) {
	q := hypercomplex.AxisAngle(vector.New3(0.0, 0.0, 1.0), math.Pi/2)
	require.InDelta(t, 1.0, q.NormSqr(), 1e-15)

	got := q.Rotate(vector.New3(1.0, 0.0, 0.0))
	require.True(t, got.AbsDiffEq(vector.New3(0.0, 1.0, 0.0), 1e-15), "got %v", got)
}

func TestQuaternion_Mat3MatchesRotate(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 256 {
		axis := vector.New3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		q := hypercomplex.AxisAngle(axis, rng.Float64()*2*math.Pi)
		v := vector.New3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())

		rot := transform.NewLinear3(q.Mat3())
		assert.True(t, rot.Apply(v).AbsDiffEq(q.Rotate(v), 1e-12))
		assert.InDelta(t, v.NormL2(), rot.Apply(v).NormL2(), 1e-12)
		assert.True(t, rot.Apply(axis).AbsDiffEq(axis, 1e-12))

		// The conjugate undoes the rotation.
		assert.True(t, rot.Inv().AbsDiffEq(transform.NewLinear3(q.Conj().Mat3()), 1e-12))
	}
}
