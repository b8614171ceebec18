// SPDX-License-Identifier: MIT
// Package transform_test contains test helpers: deterministic samplers for
// points, general and invertible matrices, and unit directions.

package transform_test

import (
	"math/rand/v2"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/transform"
	"github.com/katalvlaran/vecmat/vector"
)

const sampleAttempts = 256

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, ^seed))
}

func normalVec3(rng *rand.Rand) vector.Vec3[float64] {
	return vector.New3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
}

func normalVec2(rng *rand.Rand) vector.Vec2[float64] {
	return vector.New2(rng.NormFloat64(), rng.NormFloat64())
}

func normalMat3(rng *rand.Rand) matrix.Mat3[float64] {
	return matrix.FromRows3(normalVec3(rng), normalVec3(rng), normalVec3(rng))
}

// invertibleMat3 shifts a normal sample by a multiple of the identity, which
// keeps it far from singular.
func invertibleMat3(rng *rand.Rand) matrix.Mat3[float64] {
	return normalMat3(rng).Add(matrix.Identity3[float64]().Scale(5))
}

// unitVec3 samples a direction uniformly on the sphere.
func unitVec3(rng *rand.Rand) vector.Vec3[float64] {
	for {
		v := normalVec3(rng)
		if v.NormL2() > 1e-3 {
			return v.Normalize()
		}
	}
}

func normalShift3(rng *rand.Rand) transform.Shift3[float64] {
	return transform.NewShift3(normalVec3(rng))
}

func normalLinear3(rng *rand.Rand) transform.Linear3[float64] {
	return transform.NewLinear3(normalMat3(rng))
}

func invertibleLinear3(rng *rand.Rand) transform.Linear3[float64] {
	return transform.NewLinear3(invertibleMat3(rng))
}
