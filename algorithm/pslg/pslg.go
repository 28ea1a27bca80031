// Package pslg provides the epsilon-merge and self-intersection checks
// the splitter runs over one pierced-triangle polygon boundary before
// triangulating it.
//
// The teacher's pslg package also validated a full planar straight-line
// graph of an outer perimeter plus holes (ValidateLoops, LoopsIntersect)
// for its constrained-Delaunay builder. A clipped polygon here is
// always a single hole-free loop (spec.md 4.5 assembles it from one
// triangle's corners, cuts, and one interior chain), so that
// multi-loop validation has no caller in this module and is not
// carried over; see DESIGN.md.
package pslg

import (
	"fmt"
	"math"

	"github.com/briskmesh/zipper/algorithm/robust"
	"github.com/briskmesh/zipper/types"
)

// EpsilonMerge collapses points that are within the supplied tolerance.
//
// It returns the deduplicated slice of points and a remap (old index -> new index).
func EpsilonMerge(points []types.Point, eps types.Epsilon) ([]types.Point, []int) {
	if len(points) == 0 {
		return nil, nil
	}

	merged := make([]types.Point, 0, len(points))
	remap := make([]int, len(points))

	for i, p := range points {
		found := false
		for idx, q := range merged {
			tol := eps.TolForCoords(p.X, p.Y, q.X, q.Y)
			if distance(p, q) <= tol {
				remap[i] = idx
				found = true
				break
			}
		}
		if !found {
			remap[i] = len(merged)
			merged = append(merged, p)
		}
	}

	return merged, remap
}

// LoopSelfIntersections checks whether the loop has self-intersections.
func LoopSelfIntersections(loop []types.Point) error {
	n := len(loop)
	if n < 3 {
		return fmt.Errorf("loop must contain at least 3 points")
	}

	for i := 0; i < n; i++ {
		a1 := loop[i]
		a2 := loop[(i+1)%n]

		for j := i + 1; j < n; j++ {
			if j == i {
				continue
			}
			// Skip adjacent edges (sharing a vertex).
			if (j == (i+1)%n) || ((j+1)%n == i) {
				continue
			}

			b1 := loop[j]
			b2 := loop[(j+1)%n]
			ok, _, _ := robust.SegmentIntersect(a1, a2, b1, b2)
			if ok {
				return fmt.Errorf("loop self-intersects between edges (%d-%d) and (%d-%d)", i, (i+1)%n, j, (j+1)%n)
			}
		}
	}

	return nil
}

func distance(a, b types.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
