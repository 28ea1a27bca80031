package types

import "github.com/go-gl/mathgl/mgl64"

// Matrix3 is an orthonormal 3x3 rotation matrix, used by Transform.
//
// Matrix3 is an alias for mgl64.Mat3.
type Matrix3 = mgl64.Mat3

// IdentityMatrix3 returns the 3x3 identity rotation.
func IdentityMatrix3() Matrix3 {
	return mgl64.Ident3()
}
