// SPDX-License-Identifier: MIT

package hypercomplex

import "github.com/katalvlaran/vecmat/vector"

// Complex is re + im·i.
type Complex[T vector.Scalar] struct {
	Re, Im T
}

// NewComplex builds re + im·i.
func NewComplex[T vector.Scalar](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// ComplexFromVec reads (re, im) from v.
func ComplexFromVec[T vector.Scalar](v vector.Vec2[T]) Complex[T] {
	return Complex[T]{Re: v[0], Im: v[1]}
}

// Vec returns (re, im).
func (c Complex[T]) Vec() vector.Vec2[T] { return vector.New2(c.Re, c.Im) }

func (c Complex[T]) Add(o Complex[T]) Complex[T] { return Complex[T]{c.Re + o.Re, c.Im + o.Im} }
func (c Complex[T]) Sub(o Complex[T]) Complex[T] { return Complex[T]{c.Re - o.Re, c.Im - o.Im} }
func (c Complex[T]) Neg() Complex[T]             { return Complex[T]{-c.Re, -c.Im} }
func (c Complex[T]) Scale(a T) Complex[T]        { return Complex[T]{c.Re * a, c.Im * a} }

// Mul returns the complex product c·o.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return Complex[T]{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Conj returns re − im·i.
func (c Complex[T]) Conj() Complex[T] { return Complex[T]{c.Re, -c.Im} }

// NormSqr returns re² + im², exact for integer scalars.
func (c Complex[T]) NormSqr() T { return c.Re*c.Re + c.Im*c.Im }
