// SPDX-License-Identifier: MIT
// Package transform: sentinel errors and wrapping.
// Checked (Try*) operations return these sentinels, or matrix.ErrSingular,
// wrapped with an operation tag; match them with errors.Is.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateBasis is returned by TryLookAt when dir is (nearly)
	// parallel to up, or either is zero, so no orthonormal basis exists.
	ErrDegenerateBasis = errors.New("transform: degenerate basis")
)

// Operation tags for error wrapping and log records.
const (
	opInverse         = "Inverse"
	opNormalTransform = "NormalTransform"
	opReorderShift    = "ReorderShift"
	opLookAt          = "LookAt"
)

// transformErrorf wraps a non-nil err with an operation tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
