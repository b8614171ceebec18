// SPDX-License-Identifier: MIT

// Package hypercomplex provides small complex and quaternion value types
// over the scalars of package vector.
//
// Both types are plain comparable structs, passed and returned by value:
//
//	q := hypercomplex.NewQuaternion(1, -2, 3, -4)
//	fmt.Println(q)            // Quaternion(1, -2, 3, -4)
//	fmt.Printf("%#v\n", q)    // Quaternion(1, -2, 3, -4)
//
// Quaternion products follow Hamilton's convention (i·j = k). For unit
// quaternions, Rotate and Mat3 give the rotation they represent, which can be
// wrapped with transform.NewLinear3.
package hypercomplex
