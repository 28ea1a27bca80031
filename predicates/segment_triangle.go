package predicates

import "github.com/briskmesh/zipper/types"

// Side classifies a segment-triangle hit by the direction the segment
// crosses the triangle's supporting plane, relative to the triangle's
// outward normal.
type Side int

const (
	// Entering means the segment crosses from the outward side to the
	// inward side (the dot product of the segment direction with the
	// triangle's normal is negative).
	Entering Side = iota
	// Exiting means the segment crosses from the inward side to the
	// outward side.
	Exiting
)

func (s Side) String() string {
	if s == Exiting {
		return "exiting"
	}
	return "entering"
}

// SegmentTriangleHit is the result of SegmentTriangleIntersect.
type SegmentTriangleHit struct {
	Hit  bool
	Pos  types.Vector3
	S    float64
	Side Side
}

// SegmentTriangleIntersect tests whether segment (p1,p2) crosses the
// supporting plane of triangle (a,b,c) strictly within the triangle's
// interior.
//
// eps is a tolerance tied to the mesh resolution: both the plane
// crossing and the barycentric coordinates must clear it strictly, so
// grazing intersections on an edge or vertex of the triangle are
// rejected rather than reported as a hit.
func SegmentTriangleIntersect(p1, p2, a, b, c types.Vector3, eps float64) SegmentTriangleHit {
	e0 := b.Sub(a)
	e1 := c.Sub(a)
	normal := e0.Cross(e1)
	nLen := normal.Len()
	if nLen <= eps {
		return SegmentTriangleHit{}
	}

	d0 := normal.Dot(p1.Sub(a))
	d1 := normal.Dot(p2.Sub(a))

	planeEps := eps * nLen
	if d0 > -planeEps && d0 < planeEps {
		return SegmentTriangleHit{}
	}
	if d1 > -planeEps && d1 < planeEps {
		return SegmentTriangleHit{}
	}
	if (d0 > 0) == (d1 > 0) {
		return SegmentTriangleHit{}
	}

	s := d0 / (d0 - d1)
	pos := p1.Add(p2.Sub(p1).Mul(s))

	e2 := pos.Sub(a)
	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom <= eps {
		return SegmentTriangleHit{}
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	if u <= eps || v <= eps || w <= eps {
		return SegmentTriangleHit{}
	}

	side := Entering
	if p2.Sub(p1).Dot(normal) > 0 {
		side = Exiting
	}

	return SegmentTriangleHit{
		Hit:  true,
		Pos:  pos,
		S:    s,
		Side: side,
	}
}
