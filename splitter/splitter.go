// Package splitter triangulates the planar polygon left behind when a
// triangle is clipped against another mesh's intersection curve.
//
// A Splitter is a fresh, value-type object per clipped triangle: it
// does not retain state across calls the way a package-global
// triangulator would, since each clip operates on its own small,
// independent polygon in a different local basis.
package splitter

import (
	"fmt"

	"github.com/briskmesh/zipper/algorithm/polygon"
	"github.com/briskmesh/zipper/algorithm/pslg"
	"github.com/briskmesh/zipper/types"
)

// Triangle is a triple of indices into the polygon slice passed to Build.
type Triangle [3]int

// Splitter triangulates one simple polygon, given in its plane's 2D
// parametric coordinates, via greedy ear selection.
type Splitter struct {
	points []types.Point
	eps    float64
}

// New creates a splitter over a polygon boundary in cyclic order.
// points is not retained after Build returns.
func New(points []types.Point, eps float64) Splitter {
	return Splitter{points: points, eps: eps}
}

// Build triangulates the polygon, returning triangles as index triples
// into the original points slice in input order.
//
// Boundary points within eps of each other are merged before
// triangulation via pslg.EpsilonMerge: a cut that lands almost exactly
// on an original corner (or on another cut, per the scenario in
// spec.md 8.6 where two edges of the same piercing triangle hit the
// same pierced triangle) would otherwise hand the ear test a
// near-zero-length edge. Triangle indices are reported against the
// original, pre-merge points so callers don't need to track the
// remap.
//
// It reports an error if the polygon self-intersects or collapses to
// fewer than three distinct vertices after merging; per spec.md 4.5
// the caller must leave the source triangle unclipped in that case
// rather than retry.
func (s Splitter) Build() ([]Triangle, error) {
	if len(s.points) < 3 {
		return nil, fmt.Errorf("splitter: polygon has %d vertices, need at least 3", len(s.points))
	}

	merged, remap := pslg.EpsilonMerge(s.points, types.NewEpsilon(s.eps, 0))
	if len(merged) < 3 {
		return nil, fmt.Errorf("splitter: polygon collapsed to %d vertex(es) within epsilon, need at least 3", len(merged))
	}
	origOf := firstOriginalIndex(remap, len(merged))

	s.points = merged
	if err := pslg.LoopSelfIntersections(s.points); err != nil {
		return nil, fmt.Errorf("splitter: %w", err)
	}

	ccw := polygon.IsCCW(s.points)

	indices := make([]int, len(s.points))
	for i := range indices {
		indices[i] = i
	}

	var tris []Triangle
	for len(indices) > 3 {
		ear, ok := s.findEar(indices, ccw)
		if !ok {
			return nil, fmt.Errorf("splitter: no valid ear found, polygon may be degenerate")
		}
		n := len(indices)
		prev := indices[(ear-1+n)%n]
		cur := indices[ear]
		next := indices[(ear+1)%n]
		tris = append(tris, Triangle{origOf[prev], origOf[cur], origOf[next]})
		indices = append(indices[:ear], indices[ear+1:]...)
	}
	tris = append(tris, Triangle{origOf[indices[0]], origOf[indices[1]], origOf[indices[2]]})

	return tris, nil
}

// firstOriginalIndex inverts an EpsilonMerge remap (original index ->
// merged index) into merged index -> the first original index that
// mapped to it.
func firstOriginalIndex(remap []int, mergedLen int) []int {
	origOf := make([]int, mergedLen)
	seen := make([]bool, mergedLen)
	for i, j := range remap {
		if !seen[j] {
			origOf[j] = i
			seen[j] = true
		}
	}
	return origOf
}

// findEar returns the index (into indices) of the first valid ear tip:
// a convex vertex whose triangle with its neighbors contains no other
// polygon vertex.
func (s Splitter) findEar(indices []int, ccw bool) (int, bool) {
	n := len(indices)
	for i := 0; i < n; i++ {
		prev := s.points[indices[(i-1+n)%n]]
		cur := s.points[indices[i]]
		next := s.points[indices[(i+1)%n]]

		area := polygon.SignedArea([]types.Point{prev, cur, next})
		isConvex := (area > s.eps) == ccw
		if !isConvex {
			continue
		}

		clipped := false
		for j := 0; j < n; j++ {
			if j == (i-1+n)%n || j == i || j == (i+1)%n {
				continue
			}
			if polygon.PointInPolygon(s.points[indices[j]], []types.Point{prev, cur, next}) != polygon.Outside {
				clipped = true
				break
			}
		}
		if !clipped {
			return i, true
		}
	}
	return 0, false
}
