package mesh

import (
	"github.com/briskmesh/zipper/spatial"
	"github.com/briskmesh/zipper/types"
)

// Vertex is a position and surface normal in a mesh's local frame.
type Vertex struct {
	Pos    types.Vector3
	Normal types.Vector3

	// Triangles lists the triangles incident to this vertex.
	Triangles []types.TriangleID

	// Origin identifies the mesh this vertex came from before any merge.
	Origin types.MeshID

	// OnEdge caches the result of VertexEdgeTest: whether this vertex is
	// incident to at least one boundary edge (an edge with only one
	// neighboring triangle). Stale until UpdateVertexEdgeFlag is called.
	OnEdge bool
}

// Triangle is three ordered vertex references defining a cyclic edge
// order: edge0=(V[0],V[1]), edge1=(V[1],V[2]), edge2=(V[2],V[0]).
type Triangle struct {
	V types.Triangle

	// PlaneNormal and PlaneD define the triangle's support plane:
	// PlaneNormal . p == PlaneD for every point p on the plane.
	PlaneNormal types.Vector3
	PlaneD      float64

	// Visited is a transient per-pass marker flag. The recorder does not
	// set it (it deduplicates triangles reached through more than one
	// shared vertex with its own per-edge list); the zipper's scratch
	// teardown clears it.
	Visited bool

	// Pierced is set on both triangles of every recorded crossing: the
	// triangle whose interior was struck and the triangle whose edge
	// struck it.
	Pierced bool

	// Clip holds the per-edge cut bookkeeping, created lazily the first
	// time the recorder tests one of this triangle's edges against the
	// opposite mesh, whether or not that edge produces a cut.
	Clip *ClipEdges

	// Pierce holds the cuts that pass through this triangle's interior,
	// created lazily the first time this triangle is pierced from
	// outside.
	Pierce *PierceInfo

	// deleted marks a triangle ID as retired; its slot is not compacted.
	deleted bool
}

// ClipEdges is the per-triangle-edge bookkeeping of Cuts, one ClipEdge
// per edge in the triangle's cyclic order.
type ClipEdges [3]ClipEdge

// ClipEdge records the Cuts found along one triangle edge. Every
// triangle bordering the undirected edge has its own ClipEdge, and the
// recorder appends the same CutIDs to each of them.
type ClipEdge struct {
	V1, V2 types.VertexID

	// Neighbors holds up to two triangles sharing this edge (NilTriangle
	// for a boundary edge with no second neighbor).
	Neighbors [2]types.TriangleID

	// Cuts lists the CutIDs recorded along this edge, unsorted until the
	// clipper sorts them by their cut's s parameter.
	Cuts []types.CutID

	// Done is set once this undirected edge has been tested against the
	// opposite mesh, so edge-sharing neighbors do not test it again.
	Done bool
}

// PierceInfo is the list of Cuts that pass through a triangle's
// interior, plus clipping-output scratch state.
type PierceInfo struct {
	Cuts []types.CutID

	// OutputPolygon is the ordered list of vertices that will replace
	// this triangle once the clipper commits.
	OutputPolygon []types.VertexID
}

// Mesh owns a mutable set of vertices and triangles, referenced by
// stable indices, along with a spatial index over its vertices.
//
// A Mesh never holds back-references into another mesh's tables;
// cross-mesh bookkeeping (Cut.Tri) instead lives in the zipper
// package's CutArena, scoped to one mesh pair.
type Mesh struct {
	vertices  []Vertex
	triangles []Triangle

	cfg   config
	index spatial.Index

	// edgeOwner maps an undirected edge to the triangles currently
	// incident to it (at most two for a manifold mesh).
	edgeOwner map[types.Edge][]types.TriangleID

	origin types.MeshID
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumTriangles returns the number of triangle slots in the mesh,
// including deleted slots (see IsTriangleDeleted).
func (m *Mesh) NumTriangles() int {
	return len(m.triangles)
}

// Origin returns the mesh's own origin tag, stamped onto every vertex
// it creates.
func (m *Mesh) Origin() types.MeshID {
	return m.origin
}

// Epsilon returns the configured geometric tolerance.
func (m *Mesh) Epsilon() float64 {
	return m.cfg.epsilon
}

// Level returns the mesh's level of detail.
func (m *Mesh) Level() types.Level {
	return m.cfg.level
}

// IsValidVertexID reports whether id references an existing vertex.
func (m *Mesh) IsValidVertexID(id types.VertexID) bool {
	return id.IsValid() && int(id) < len(m.vertices)
}

// IsValidTriangleID reports whether id references an existing,
// non-deleted triangle.
func (m *Mesh) IsValidTriangleID(id types.TriangleID) bool {
	return id.IsValid() && int(id) < len(m.triangles) && !m.triangles[id].deleted
}

// IsTriangleDeleted reports whether the triangle slot has been retired.
func (m *Mesh) IsTriangleDeleted(id types.TriangleID) bool {
	if !id.IsValid() || int(id) >= len(m.triangles) {
		return true
	}
	return m.triangles[id].deleted
}

// Vertex returns a copy of the vertex record for id.
func (m *Mesh) Vertex(id types.VertexID) Vertex {
	return m.vertices[id]
}

// VertexPos returns the local-frame position of a vertex.
func (m *Mesh) VertexPos(id types.VertexID) types.Vector3 {
	return m.vertices[id].Pos
}

// SetVertexNormal overwrites a vertex's stored normal.
func (m *Mesh) SetVertexNormal(id types.VertexID, n types.Vector3) {
	m.vertices[id].Normal = n
}

// Triangle returns a pointer to the triangle record for id, so callers
// (the zipper package) can attach/inspect Clip and Pierce state.
//
// The pointer is valid until the next AddTriangle call, which may grow
// the backing slice.
func (m *Mesh) Triangle(id types.TriangleID) *Triangle {
	return &m.triangles[id]
}

// TriangleVertices returns the three vertex positions of a triangle.
func (m *Mesh) TriangleVertices(id types.TriangleID) (types.Vector3, types.Vector3, types.Vector3) {
	t := m.triangles[id].V
	return m.vertices[t.V1()].Pos, m.vertices[t.V2()].Pos, m.vertices[t.V3()].Pos
}

// EdgeNeighbors returns the (up to two) triangles incident to an
// undirected edge.
func (m *Mesh) EdgeNeighbors(e types.Edge) []types.TriangleID {
	return m.edgeOwner[e]
}

// Index exposes the mesh's spatial index for direct queries (e.g. the
// recorder's per-corner proximity search).
func (m *Mesh) Index() spatial.Index {
	return m.index
}

// Bounds returns the local-frame axis-aligned bounding box of every
// live vertex. It returns EmptyAABB() (an inverted box with infinite
// corners) for a mesh with no vertices.
func (m *Mesh) Bounds() types.AABB {
	box := types.EmptyAABB()
	for _, v := range m.vertices {
		box = box.Extend(v.Pos)
	}
	return box
}
