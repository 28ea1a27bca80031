// Package zipper implements the mesh-mesh intersection recorder and
// polygon clipper: the core that stitches two overlapping triangle
// meshes along their intersection curve.
package zipper

import (
	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/predicates"
	"github.com/briskmesh/zipper/types"
)

// Cut records one crossing of a directed edge (v1->v2) of a piercing
// triangle against the interior of a pierced triangle in the other
// mesh.
//
// A Cut is created once per crossing and referenced by CutID from
// every ClipEdge of every triangle sharing the piercing edge and from
// the pierced triangle's PierceInfo (see mesh.ClipEdge, mesh.PierceInfo).
type Cut struct {
	// V1, V2 are the piercing edge's endpoints, in the piercing mesh's
	// vertex space, walked in the direction recorded by the recorder.
	V1, V2 types.VertexID

	// S is the parameter along (V1,V2) at which it crosses the pierced
	// triangle's plane.
	S float64

	// Pos is the crossing point, in the piercing mesh's local frame:
	// (1-S)*pos(V1) + S*pos(V2).
	Pos types.Vector3

	// PiercedTri is the pierced triangle, an index into PiercedMesh.
	PiercedTri types.TriangleID

	// Mesh is the piercing mesh (owns V1, V2, and NewVert).
	Mesh *mesh.Mesh

	// PiercedMesh is the mesh owning PiercedTri.
	PiercedMesh *mesh.Mesh

	// NewVert is the vertex allocated in the piercing mesh for this cut,
	// set once during Phase 1 of retriangulation; NilVertex until then.
	NewVert types.VertexID

	// Side classifies the crossing direction relative to the pierced
	// triangle's outward normal, walking V1->V2.
	Side predicates.Side

	// Dot is the signed alignment of the piercing and pierced triangles'
	// plane normals, used by the near-tangency filter.
	Dot float64
}

// Inward reports whether this cut enters the pierced triangle when its
// piercing edge is walked in the recorded V1->V2 direction. A ClipEdge
// viewed from a triangle that traverses the edge in the opposite cyclic
// direction must negate this.
func (c Cut) Inward() bool {
	return c.Side == predicates.Entering
}

// CutArena owns every Cut recorded while intersecting one pair of
// meshes. It is discarded once retriangulation finishes.
type CutArena struct {
	cuts []Cut
}

// NewCutArena creates an empty arena.
func NewCutArena() *CutArena {
	return &CutArena{}
}

// Add stores a new cut and returns its stable ID within the arena.
func (a *CutArena) Add(c Cut) types.CutID {
	id := types.CutID(len(a.cuts))
	a.cuts = append(a.cuts, c)
	return id
}

// Get returns a pointer to the cut with the given ID, so callers can
// mutate NewVert during retriangulation.
func (a *CutArena) Get(id types.CutID) *Cut {
	return &a.cuts[id]
}

// Len returns the number of cuts recorded so far.
func (a *CutArena) Len() int {
	return len(a.cuts)
}
