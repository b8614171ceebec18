// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Checked operations return these sentinels (wrapped with an operation tag)
// and tests match them via errors.Is. Unchecked arithmetic never returns
// errors; see the package documentation for its behavior on bad input.

package matrix

import "errors"

var (
	// ErrSingular is returned by TryInv when |det| is within the tolerance of
	// zero, or the determinant is not finite.
	ErrSingular = errors.New("matrix: singular matrix")
)
