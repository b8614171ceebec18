// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// Scalar is the element constraint for vectors and matrices.
// Negation is required (inverse shifts), so unsigned integers are excluded.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Float restricts a Scalar to floating-point types, for operations that are
// only meaningful with real division and square roots (orthonormal bases).
type Float interface {
	constraints.Float
}
