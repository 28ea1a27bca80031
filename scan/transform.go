// Package scan provides the rigid local-to-world coordinate frame and the
// per-scan collection of level-of-detail meshes that the zipper operates on.
package scan

import "github.com/briskmesh/zipper/types"

// Transform is the rigid frame relating a scan's local (mesh-relative)
// coordinates to world coordinates: world = Rotation*local + Translation.
//
// Rotation must be orthonormal; normal vectors transform by rotation only.
type Transform struct {
	Rotation    types.Matrix3
	Translation types.Vector3
}

// IdentityTransform returns the transform that maps local space onto world
// space unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: types.IdentityMatrix3()}
}

// LocalToWorldPoint maps a point from the scan's local frame to world space.
func (t Transform) LocalToWorldPoint(p types.Vector3) types.Vector3 {
	return t.Rotation.Mul3x1(p).Add(t.Translation)
}

// WorldToLocalPoint maps a point from world space to the scan's local frame.
func (t Transform) WorldToLocalPoint(p types.Vector3) types.Vector3 {
	return t.Rotation.Transpose().Mul3x1(p.Sub(t.Translation))
}

// LocalToWorldNormal maps a direction (surface normal) from local to world
// space. Only the rotation applies; translation does not affect directions.
func (t Transform) LocalToWorldNormal(n types.Vector3) types.Vector3 {
	return t.Rotation.Mul3x1(n)
}

// WorldToLocalNormal maps a direction (surface normal) from world to local
// space.
func (t Transform) WorldToLocalNormal(n types.Vector3) types.Vector3 {
	return t.Rotation.Transpose().Mul3x1(n)
}
