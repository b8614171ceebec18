// SPDX-License-Identifier: MIT

package array

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint accepted by the kernels: any signed
// integer or floating-point type.
type Number interface {
	constraints.Signed | constraints.Float
}

// panicEmptyFold is raised when a reduction is asked to fold zero elements.
// Public vector and matrix types have at least two elements, so reaching it
// means a programmer error inside this module.
const panicEmptyFold = "array: FoldFirst on empty slice"

// panicLengthMismatch is raised when two slices of different length are zipped.
const panicLengthMismatch = "array: length mismatch"

// Map writes f(src[i]) into dst[i]. dst and src must have the same length.
func Map[T any](dst, src []T, f func(T) T) {
	if len(dst) != len(src) {
		panic(panicLengthMismatch)
	}
	for i, v := range src {
		dst[i] = f(v)
	}
}

// Zip writes f(a[i], b[i]) into dst[i]. All three slices must share a length.
func Zip[T any](dst, a, b []T, f func(x, y T) T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(panicLengthMismatch)
	}
	for i := range a {
		dst[i] = f(a[i], b[i])
	}
}

// FoldFirst reduces xs left to right, seeding the accumulator with xs[0]:
//
//	f(f(f(xs[0], xs[1]), xs[2]), ...)
//
// It panics on an empty slice; there is no neutral element to return.
func FoldFirst[T any](xs []T, f func(acc, x T) T) T {
	if len(xs) == 0 {
		panic(panicEmptyFold)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = f(acc, x)
	}

	return acc
}

// Sum returns xs[0] + xs[1] + ... .
func Sum[T Number](xs []T) T {
	return FoldFirst(xs, func(acc, x T) T { return acc + x })
}

// Max returns the largest element. On ties the earliest one wins.
func Max[T Number](xs []T) T {
	return FoldFirst(xs, func(acc, x T) T {
		if acc < x {
			return x
		}
		return acc
	})
}

// Min returns the smallest element. On ties the earliest one wins.
func Min[T Number](xs []T) T {
	return FoldFirst(xs, func(acc, x T) T {
		if acc < x {
			return acc
		}
		return x
	})
}

// Abs returns |x|. For the most negative integer it overflows like the
// language does.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Dot returns Σ a[i]·b[i].
func Dot[T Number](a, b []T) T {
	if len(a) != len(b) {
		panic(panicLengthMismatch)
	}
	if len(a) == 0 {
		panic(panicEmptyFold)
	}
	acc := a[0] * b[0]
	for i := 1; i < len(a); i++ {
		acc += a[i] * b[i]
	}

	return acc
}

// NormL1 returns Σ |x|.
func NormL1[T Number](xs []T) T {
	if len(xs) == 0 {
		panic(panicEmptyFold)
	}
	var acc T
	for _, x := range xs {
		acc += Abs(x)
	}

	return acc
}

// NormL2Sqr returns Σ x².
func NormL2Sqr[T Number](xs []T) T {
	return Dot(xs, xs)
}

// NormL2 returns the Euclidean norm. The square root is taken in float64 and
// converted back to T, so integer element types get a truncated result.
func NormL2[T Number](xs []T) T {
	return T(math.Sqrt(float64(NormL2Sqr(xs))))
}

// NormLInf returns max |x|.
func NormLInf[T Number](xs []T) T {
	if len(xs) == 0 {
		panic(panicEmptyFold)
	}
	var acc T
	for _, x := range xs {
		if a := Abs(x); acc < a {
			acc = a
		}
	}

	return acc
}

// AbsDiffEq reports whether |a[i] - b[i]| <= eps for every i.
func AbsDiffEq[T Number](a, b []T, eps T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}
