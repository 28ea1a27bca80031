package types

// AABB2 is an axis-aligned bounding box in the 2D parametric plane (see
// Point). It is the in-plane counterpart of AABB, returned by
// algorithm/geometry's BBox for a loop of points in a clipped triangle's
// local basis rather than in 3D mesh space.
type AABB2 struct {
	Min Point
	Max Point
}
