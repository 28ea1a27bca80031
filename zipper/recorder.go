package zipper

import (
	"math"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/predicates"
	"github.com/briskmesh/zipper/scan"
	"github.com/briskmesh/zipper/types"
)

// IntersectMeshes records every crossing between sc1's and sc2's
// active-level meshes into a fresh CutArena, in both directions: sc1's
// edges piercing sc2's triangles, and sc2's edges piercing sc1's.
//
// The returned arena must be passed to FinishIntersectMeshes, which
// allocates the cut vertices and retriangulates every affected
// triangle.
func IntersectMeshes(sc1, sc2 *scan.Scan, cfg Config) (*CutArena, error) {
	arena := NewCutArena()
	if err := recordDirection(arena, sc1, sc2, cfg); err != nil {
		return nil, err
	}
	if err := recordDirection(arena, sc2, sc1, cfg); err != nil {
		return nil, err
	}
	return arena, nil
}

// recordDirection implements the one-direction recorder algorithm:
// every triangle of scA that pierces a triangle of scB gets ClipEdges
// (shared with its edge-neighbors); every pierced triangle of scB gets
// a PierceInfo.
func recordDirection(arena *CutArena, scA, scB *scan.Scan, cfg Config) error {
	mA := scA.Mesh()
	mB := scB.Mesh()
	if mA == nil || mB == nil {
		return nil
	}

	radius := cfg.EdgeLengthMax()
	log := cfg.logger()

	near := make([]types.VertexID, 0, 64)
	visited := make([]types.TriangleID, 0, 16)

	for ai := 0; ai < mA.NumTriangles(); ai++ {
		triID := types.TriangleID(ai)
		if mA.IsTriangleDeleted(triID) {
			continue
		}
		triA := mA.Triangle(triID)
		corners := triA.V.Vertices()

		near = near[:0]
		for _, vid := range corners {
			worldPos := scA.Transform.LocalToWorldPoint(mA.VertexPos(vid))
			localInB := scB.Transform.WorldToLocalPoint(worldPos)
			near = mB.FindVerticesNear(localInB, radius, types.NilMesh, near)
		}
		mB.ClearIndexMarks()

		for ei := 0; ei < 3; ei++ {
			vi := corners[ei]
			vj := corners[(ei+1)%3]
			edge := types.NewEdge(vi, vj)

			neighbors := mA.EdgeNeighbors(edge)
			if edgeDone(mA, neighbors, edge) {
				continue
			}
			markEdgeDone(mA, neighbors, edge)

			worldVi := scA.Transform.LocalToWorldPoint(mA.VertexPos(vi))
			worldVj := scA.Transform.LocalToWorldPoint(mA.VertexPos(vj))
			localViB := scB.Transform.WorldToLocalPoint(worldVi)
			localVjB := scB.Transform.WorldToLocalPoint(worldVj)

			visited = visited[:0]
			for _, vid := range near {
				for _, tid := range mB.Vertex(vid).Triangles {
					if triangleSeen(visited, tid) {
						continue
					}
					visited = append(visited, tid)

					t2 := mB.Triangle(tid)
					a2, b2, c2 := mB.TriangleVertices(tid)

					hit := predicates.SegmentTriangleIntersect(localViB, localVjB, a2, b2, c2, mA.Epsilon())
					if !hit.Hit {
						continue
					}

					dot := triA.PlaneNormal.Dot(t2.PlaneNormal)
					if math.Abs(dot) > cfg.TangencyDotThreshold {
						continue
					}

					pos := mA.VertexPos(vi).Mul(1 - hit.S).Add(mA.VertexPos(vj).Mul(hit.S))
					cutID := arena.Add(Cut{
						V1:          vi,
						V2:          vj,
						S:           hit.S,
						Pos:         pos,
						PiercedTri:  tid,
						Mesh:        mA,
						PiercedMesh: mB,
						NewVert:     types.NilVertex,
						Side:        hit.Side,
						Dot:         dot,
					})

					recordCutOnEdge(mA, neighbors, edge, cutID)

					if t2.Pierce == nil {
						t2.Pierce = &mesh.PierceInfo{}
					}
					t2.Pierce.Cuts = append(t2.Pierce.Cuts, cutID)
					t2.Pierced = true
					triA.Pierced = true
				}
			}
		}
	}

	log.Debug("zipper: recorded direction", "triangles", mA.NumTriangles(), "cuts", arena.Len())
	return nil
}

// edgeDone reports whether edge has already been tested against the
// other mesh, from any of its 1-2 neighboring triangles.
func edgeDone(m *mesh.Mesh, neighbors []types.TriangleID, edge types.Edge) bool {
	for _, tid := range neighbors {
		tri := m.Triangle(tid)
		if tri.Clip == nil {
			continue
		}
		if idx := clipEdgeIndex(tri, edge); idx >= 0 && tri.Clip[idx].Done {
			return true
		}
	}
	return false
}

// markEdgeDone lazily creates ClipEdges on every neighboring triangle
// and marks edge done on each, per spec.md 4.4's shared-edge contract.
func markEdgeDone(m *mesh.Mesh, neighbors []types.TriangleID, edge types.Edge) {
	for _, tid := range neighbors {
		tri := m.Triangle(tid)
		if tri.Clip == nil {
			tri.Clip = newClipEdges(m, tid)
		}
		if idx := clipEdgeIndex(tri, edge); idx >= 0 {
			tri.Clip[idx].Done = true
		}
	}
}

// recordCutOnEdge appends cutID to the ClipEdge slot for edge on every
// neighboring triangle, so the cut is visible regardless of which
// triangle's cyclic order is consulted later.
func recordCutOnEdge(m *mesh.Mesh, neighbors []types.TriangleID, edge types.Edge, cutID types.CutID) {
	for _, tid := range neighbors {
		tri := m.Triangle(tid)
		if idx := clipEdgeIndex(tri, edge); idx >= 0 {
			tri.Clip[idx].Cuts = append(tri.Clip[idx].Cuts, cutID)
		}
	}
}

// newClipEdges builds the three-slot ClipEdges for a triangle, one per
// cyclic edge, pre-populated with endpoints and neighbor references.
func newClipEdges(m *mesh.Mesh, id types.TriangleID) *mesh.ClipEdges {
	tri := m.Triangle(id).V
	corners := tri.Vertices()
	var ce mesh.ClipEdges
	for i := 0; i < 3; i++ {
		v1 := corners[i]
		v2 := corners[(i+1)%3]
		edge := types.NewEdge(v1, v2)
		ce[i] = mesh.ClipEdge{
			V1:        v1,
			V2:        v2,
			Neighbors: neighborPair(m.EdgeNeighbors(edge)),
		}
	}
	return &ce
}

func neighborPair(neighbors []types.TriangleID) [2]types.TriangleID {
	pair := [2]types.TriangleID{types.NilTriangle, types.NilTriangle}
	for i, tid := range neighbors {
		if i >= 2 {
			break
		}
		pair[i] = tid
	}
	return pair
}

// clipEdgeIndex locates edge's slot within a triangle's ClipEdges,
// matching by canonical (undirected) edge identity. Returns -1 if Clip
// is nil or edge is not one of the triangle's three edges.
func clipEdgeIndex(tri *mesh.Triangle, edge types.Edge) int {
	if tri.Clip == nil {
		return -1
	}
	for i, e := range tri.V.Edges() {
		if e == edge {
			return i
		}
	}
	return -1
}

func triangleSeen(visited []types.TriangleID, id types.TriangleID) bool {
	for _, v := range visited {
		if v == id {
			return true
		}
	}
	return false
}
