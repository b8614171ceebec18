// Package array holds the generic slice kernels behind the fixed-size vector
// and matrix types.
//
// Vectors and matrices are Go arrays; their methods slice a local copy and
// hand it to these kernels so every element-wise loop and reduction lives in
// exactly one place. Kernels never retain their arguments, which keeps the
// backing arrays on the caller's stack.
package array
