// Package matrix provides fixed-size square matrices over a generic scalar.
//
// What & Why:
//
//	Mat2, Mat3 and Mat4 are arrays of row vectors ([N]vector.VecN[T]), stored
//	row-major: m[i] is row i and m[i][j] the entry in row i, column j. They are
//	values: copied on assignment and compared with ==.
//
// Conventions:
//
//	DotVec computes the column-vector product m·v, so out[i] = m[i]·v.
//	Transpose swaps m[i][j] and m[j][i]. Dot is the ordinary matrix product,
//	(a.Dot(b)).DotVec(v) == a.DotVec(b.DotVec(v)).
//
// Inversion:
//
//	Inv uses the closed-form adjugate divided by the determinant and performs
//	no singularity check: a singular float matrix yields ±Inf/NaN entries, a
//	singular integer matrix panics with a division by zero. TryInv checks
//	|det| against a tolerance first and returns ErrSingular instead.
//
// Complexity:
//
//	Element-wise operations and reductions are O(N²); Dot is O(N³); Inv and
//	Det are closed-form. No heap allocation.
package matrix
