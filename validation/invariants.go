// Package validation checks the bookkeeping invariants the zipper
// pipeline is expected to uphold, so tests can assert them directly
// against a mesh or cut arena rather than re-deriving them ad hoc.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/types"
)

var (
	// ErrUnpairedCut indicates a pierced triangle whose inward and
	// outward cut counts differ.
	ErrUnpairedCut = errors.New("validation: unpaired inward/outward cuts")
	// ErrCutPositionDrift indicates a cut's recorded position does not
	// match its own interpolation formula.
	ErrCutPositionDrift = errors.New("validation: cut position does not match its interpolation")
	// ErrStaleScratchFlag indicates a transient marker flag survived a
	// finished pass.
	ErrStaleScratchFlag = errors.New("validation: stale scratch flag after finish")
)

// Cut is the minimal view of a zipper.Cut this package needs, kept
// narrow so validation does not import the zipper package back.
type Cut struct {
	V1, V2  types.VertexID
	S       float64
	Pos     types.Vector3
	Mesh    *mesh.Mesh
	Inward  bool
}

// CheckCutPosition verifies P2: a cut's stored position must equal the
// linear interpolation of its two endpoints at parameter s, within a
// handful of ulps of the floating point computation.
func CheckCutPosition(c Cut) error {
	want := c.Mesh.VertexPos(c.V1).Mul(1 - c.S).Add(c.Mesh.VertexPos(c.V2).Mul(c.S))
	if !vectorsWithinULPs(c.Pos, want, 4) {
		return fmt.Errorf("%w: got %v, want %v", ErrCutPositionDrift, c.Pos, want)
	}
	return nil
}

func vectorsWithinULPs(a, b types.Vector3, n int) bool {
	return withinULPs(a.X(), b.X(), n) && withinULPs(a.Y(), b.Y(), n) && withinULPs(a.Z(), b.Z(), n)
}

func withinULPs(a, b float64, n int) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	ulp := math.Nextafter(scale, math.Inf(1)) - scale
	if ulp == 0 {
		return diff == 0
	}
	return diff <= float64(n)*ulp
}

// CheckPiercedTrianglePairing verifies P3: the supplied cuts of one
// pierced triangle contain as many inward as outward cuts (the pairing
// the clipper itself requires to locate a unique entry and exit). The
// counts are taken over the whole slice, not per edge slot.
func CheckPiercedTrianglePairing(cuts []Cut) error {
	var inward, outward int
	for _, c := range cuts {
		if c.Inward {
			inward++
		} else {
			outward++
		}
	}
	if inward != outward {
		return fmt.Errorf("%w: %d inward, %d outward", ErrUnpairedCut, inward, outward)
	}
	return nil
}

// CheckNoStaleScratch verifies P5: after FinishIntersectMeshes, no
// surviving triangle still carries Clip/Pierce/Pierced/Visited state.
func CheckNoStaleScratch(m *mesh.Mesh) error {
	for i := 0; i < m.NumTriangles(); i++ {
		id := types.TriangleID(i)
		if m.IsTriangleDeleted(id) {
			continue
		}
		tri := m.Triangle(id)
		if tri.Clip != nil || tri.Pierce != nil || tri.Pierced || tri.Visited {
			return fmt.Errorf("%w: triangle %d", ErrStaleScratchFlag, i)
		}
	}
	return nil
}

// CheckClipEdgeSharesCutIdentity verifies P4: the same undirected edge
// on two neighboring triangles must reference cuts by the same CutID
// values, not merely equal-valued copies, since a ClipEdge's Cuts
// slice holds IDs into a shared CutArena rather than duplicated data.
func CheckClipEdgeSharesCutIdentity(m *mesh.Mesh, a, b types.TriangleID, edge types.Edge) error {
	triA := m.Triangle(a)
	triB := m.Triangle(b)
	if triA.Clip == nil || triB.Clip == nil {
		return nil
	}

	idxA := clipEdgeIndexFor(triA, edge)
	idxB := clipEdgeIndexFor(triB, edge)
	if idxA < 0 || idxB < 0 {
		return nil
	}

	cutsA := triA.Clip[idxA].Cuts
	cutsB := triB.Clip[idxB].Cuts
	if len(cutsA) != len(cutsB) {
		return fmt.Errorf("validation: edge %v has %d cuts on triangle %d but %d on triangle %d",
			edge, len(cutsA), a, len(cutsB), b)
	}
	seen := make(map[types.CutID]bool, len(cutsA))
	for _, id := range cutsA {
		seen[id] = true
	}
	for _, id := range cutsB {
		if !seen[id] {
			return fmt.Errorf("validation: edge %v cut %d on triangle %d is not the same CutID on triangle %d",
				edge, id, b, a)
		}
	}
	return nil
}

func clipEdgeIndexFor(tri *mesh.Triangle, edge types.Edge) int {
	for i, e := range tri.V.Edges() {
		if e == edge {
			return i
		}
	}
	return -1
}
