package types

import "math"

// AABB represents an axis-aligned bounding box in 3D space.
//
// The bounds are inclusive on all sides. An AABB is valid when
// Min.X() <= Max.X(), Min.Y() <= Max.Y() and Min.Z() <= Max.Z(). Empty
// or inverted AABBs should be handled explicitly by the caller; use
// EmptyAABB and Extend to build one up from points.
//
// Example:
//
//	box := types.AABB{
//	    Min: types.NewVector3(0, 0, 0),
//	    Max: types.NewVector3(10, 10, 10),
//	}
type AABB struct {
	Min Vector3 // Minimum corner, inclusive
	Max Vector3 // Maximum corner, inclusive
}

// EmptyAABB returns an inverted box suitable as the seed for repeated Extend calls.
func EmptyAABB() AABB {
	return AABB{
		Min: NewVector3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewVector3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Extend returns a box grown to include p.
func (b AABB) Extend(p Vector3) AABB {
	return AABB{
		Min: NewVector3(math.Min(b.Min.X(), p.X()), math.Min(b.Min.Y(), p.Y()), math.Min(b.Min.Z(), p.Z())),
		Max: NewVector3(math.Max(b.Max.X(), p.X()), math.Max(b.Max.Y(), p.Y()), math.Max(b.Max.Z(), p.Z())),
	}
}

// Grow returns a box expanded by margin on every side.
func (b AABB) Grow(margin float64) AABB {
	d := NewVector3(margin, margin, margin)
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Overlaps reports whether b and o share any point, treating both as
// closed (inclusive) boxes.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X() <= o.Max.X() && o.Min.X() <= b.Max.X() &&
		b.Min.Y() <= o.Max.Y() && o.Min.Y() <= b.Max.Y() &&
		b.Min.Z() <= o.Max.Z() && o.Min.Z() <= b.Max.Z()
}
