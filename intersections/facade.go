// Package intersections is the public entry point for zippering two
// scans together: a cheap broad-phase bounds check, then the two-pass
// record/finish pipeline that records cuts and retriangulates pierced
// triangles.
package intersections

import (
	"github.com/briskmesh/zipper/scan"
	"github.com/briskmesh/zipper/types"
	"github.com/briskmesh/zipper/zipper"
)

// Config controls the zippering pass. See zipper.Config for field docs.
type Config = zipper.Config

// DefaultConfig returns the recommended configuration for a level of
// detail.
func DefaultConfig(level types.Level) Config {
	return zipper.DefaultConfig(level)
}

// MayIntersect is a broad-phase test: it reports whether the two
// scans' world-space bounding boxes come within margin of each other.
// A false result proves the scans cannot intersect; a true result is
// not a guarantee, only a reason to run the full pass.
func MayIntersect(sc1, sc2 *scan.Scan, margin float64) bool {
	m1 := sc1.Mesh()
	m2 := sc2.Mesh()
	if m1 == nil || m2 == nil {
		return false
	}
	box1 := worldBounds(sc1, m1.Bounds()).Grow(margin)
	box2 := worldBounds(sc2, m2.Bounds())
	return box1.Overlaps(box2)
}

func worldBounds(sc *scan.Scan, local types.AABB) types.AABB {
	corners := [8]types.Vector3{
		types.NewVector3(local.Min.X(), local.Min.Y(), local.Min.Z()),
		types.NewVector3(local.Max.X(), local.Min.Y(), local.Min.Z()),
		types.NewVector3(local.Min.X(), local.Max.Y(), local.Min.Z()),
		types.NewVector3(local.Max.X(), local.Max.Y(), local.Min.Z()),
		types.NewVector3(local.Min.X(), local.Min.Y(), local.Max.Z()),
		types.NewVector3(local.Max.X(), local.Min.Y(), local.Max.Z()),
		types.NewVector3(local.Min.X(), local.Max.Y(), local.Max.Z()),
		types.NewVector3(local.Max.X(), local.Max.Y(), local.Max.Z()),
	}

	world := types.EmptyAABB()
	for _, c := range corners {
		world = world.Extend(sc.Transform.LocalToWorldPoint(c))
	}
	return world
}

// IntersectMeshes records every crossing between sc1's and sc2's active
// meshes, in both directions, without yet committing any change to
// either mesh. Callers typically gate this behind MayIntersect.
func IntersectMeshes(sc1, sc2 *scan.Scan, cfg Config) (*zipper.CutArena, error) {
	return zipper.IntersectMeshes(sc1, sc2, cfg)
}

// FinishIntersectMeshes allocates the new vertices and retriangulates
// every pierced triangle recorded in arena.
func FinishIntersectMeshes(sc1, sc2 *scan.Scan, arena *zipper.CutArena, cfg Config) error {
	return zipper.FinishIntersectMeshes(sc1, sc2, arena, cfg)
}

// Reset clears any scratch marking state a prior IntersectMeshes call
// left on sc without a matching FinishIntersectMeshes, so the pair can
// be re-marked (e.g. after sc was merged with a third scan).
func Reset(sc *scan.Scan) {
	zipper.Reset(sc)
}

// Zip is the common-case convenience wrapper: skip disjoint scans via
// MayIntersect, otherwise run the full record-then-finish pipeline.
func Zip(sc1, sc2 *scan.Scan, cfg Config) (*zipper.CutArena, error) {
	if !MayIntersect(sc1, sc2, cfg.EdgeLengthMax()) {
		return zipper.NewCutArena(), nil
	}
	arena, err := IntersectMeshes(sc1, sc2, cfg)
	if err != nil {
		return nil, err
	}
	if err := FinishIntersectMeshes(sc1, sc2, arena, cfg); err != nil {
		return nil, err
	}
	return arena, nil
}
