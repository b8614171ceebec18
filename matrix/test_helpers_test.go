// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Deterministic random fixtures (seeded PCG) for property tests.
//   • Keep all data finite and well-conditioned so tolerances stay tight.

package matrix_test

import (
	"math/rand/v2"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// sampleAttempts is the number of random draws per property test.
const sampleAttempts = 256

// newRand returns a deterministic generator for the given seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

func randVec3(rng *rand.Rand) vector.Vec3[float64] {
	return vector.New3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
}

func randVec4(rng *rand.Rand) vector.Vec4[float64] {
	return vector.New4(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
}

func randMat3(rng *rand.Rand) matrix.Mat3[float64] {
	return matrix.Mat3[float64]{randVec3(rng), randVec3(rng), randVec3(rng)}
}

func randMat4(rng *rand.Rand) matrix.Mat4[float64] {
	return matrix.Mat4[float64]{randVec4(rng), randVec4(rng), randVec4(rng), randVec4(rng)}
}

// invertible3 returns a random matrix made diagonally dominant, hence
// invertible with a small condition number.
func invertible3(rng *rand.Rand) matrix.Mat3[float64] {
	return randMat3(rng).Add(matrix.Identity3[float64]().Scale(6))
}

func invertible4(rng *rand.Rand) matrix.Mat4[float64] {
	return randMat4(rng).Add(matrix.Identity4[float64]().Scale(8))
}
