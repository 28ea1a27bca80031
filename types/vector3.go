package types

import "github.com/go-gl/mathgl/mgl64"

// Vector3 is a position or direction in 3-space, expressed in some frame
// (mesh-local or world; callers track which).
//
// Vector3 is an alias for mgl64.Vec3 so arithmetic (Add, Sub, Mul, Dot,
// Cross, Normalize, Len) is available directly on values of this type.
type Vector3 = mgl64.Vec3

// NewVector3 builds a vector from its three components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}
