// SPDX-License-Identifier: MIT

package hypercomplex

import (
	"fmt"
	"strings"
)

const (
	_fmtOpen  = "("
	_fmtSep   = ", "
	_fmtClose = ")"
)

// writeTuple renders name(p0, p1, ...) with each part formatted by verb.
func writeTuple[T any](name, verb string, parts ...T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(_fmtOpen)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf(verb, p))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// String renders c as Complex(re, im); used by %v and %s.
func (c Complex[T]) String() string {
	return writeTuple("Complex", "%v", c.Re, c.Im)
}

// GoString renders c for %#v, with components in their Go syntax.
func (c Complex[T]) GoString() string {
	return writeTuple("Complex", "%#v", c.Re, c.Im)
}

// String renders q as Quaternion(w, x, y, z); used by %v and %s.
func (q Quaternion[T]) String() string {
	return writeTuple("Quaternion", "%v", q.W, q.X, q.Y, q.Z)
}

// GoString renders q for %#v, with components in their Go syntax.
func (q Quaternion[T]) GoString() string {
	return writeTuple("Quaternion", "%#v", q.W, q.X, q.Y, q.Z)
}
