// SPDX-License-Identifier: MIT
// Package matrix: shared helpers for the sized matrix types.
//
// Purpose:
//   - Operation tags and error wrapping for checked kernels.
//   - Singularity predicate shared by Mat2/Mat3/Mat4.TryInv.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/vector"
)

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isSingular reports whether det should be treated as zero under eps.
// A non-finite determinant (overflowed or already poisoned input) counts as
// singular: dividing by it cannot produce a meaningful inverse.
func isSingular[T vector.Scalar](det T, eps float64) bool {
	d := float64(det)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return true
	}

	return math.Abs(d) <= eps
}

// sqrt takes the square root in float64 and converts back to T.
func sqrt[T vector.Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}

// tryInv is the common body of the sized TryInv methods.
func tryInv[M any, T vector.Scalar](det T, eps float64, inv func(det T) M) (M, error) {
	if isSingular(det, eps) {
		var zero M
		return zero, matrixErrorf(opInverse, ErrSingular)
	}

	return inv(det), nil
}
