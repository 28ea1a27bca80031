package mesh

import "github.com/briskmesh/zipper/types"

// AddVertex creates a new vertex at the given local-frame position and
// inserts it into the mesh's spatial hash. This corresponds to the
// collaborator-facing make_vertex + add_to_hash pair: unlike the 2D
// teacher mesh this replaced, there is no merge-on-insert here — the
// zipper's new-vertex phase (see package zipper) always wants a fresh
// vertex at the cut's computed position.
func (m *Mesh) AddVertex(pos types.Vector3) types.VertexID {
	id := types.VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{
		Pos:    pos,
		Origin: m.origin,
	})
	m.index.AddVertex(id, pos)

	if m.cfg.debugAddVertex != nil {
		m.cfg.debugAddVertex(id, pos)
	}
	return id
}

// FindVerticesNear appends vertex IDs within radius of p (in this
// mesh's local frame) to near and returns the grown slice.
//
// Vertices whose Origin equals rejectOrigin are skipped (pass
// types.NilMesh to accept every origin), as are vertices with no
// incident triangles. The caller must call ClearIndexMarks before the
// next query against this mesh.
func (m *Mesh) FindVerticesNear(p types.Vector3, radius float64, rejectOrigin types.MeshID, near []types.VertexID) []types.VertexID {
	start := len(near)
	near = m.index.FindVerticesNear(p, radius, near)

	if rejectOrigin == types.NilMesh {
		return m.dropDeadVertices(near, start)
	}

	kept := near[:start]
	for _, id := range near[start:] {
		v := m.vertices[id]
		if v.Origin == rejectOrigin {
			continue
		}
		if len(v.Triangles) == 0 {
			continue
		}
		kept = append(kept, id)
	}
	return kept
}

func (m *Mesh) dropDeadVertices(near []types.VertexID, start int) []types.VertexID {
	kept := near[:start]
	for _, id := range near[start:] {
		if len(m.vertices[id].Triangles) == 0 {
			continue
		}
		kept = append(kept, id)
	}
	return kept
}

// ClearIndexMarks resets the spatial index's transient dedup marks.
func (m *Mesh) ClearIndexMarks() {
	m.index.ClearMarks()
}

// FindVertexNormal recomputes a vertex's normal as the normalized sum
// of its live incident triangles' unit plane normals (each triangle
// counts equally, whatever its area), and stores it.
func (m *Mesh) FindVertexNormal(id types.VertexID) types.Vector3 {
	v := &m.vertices[id]
	if len(v.Triangles) == 0 {
		return v.Normal
	}

	sum := types.Vector3{}
	for _, tid := range v.Triangles {
		if m.IsTriangleDeleted(tid) {
			continue
		}
		sum = sum.Add(m.triangles[tid].PlaneNormal)
	}
	if sum.Len() == 0 {
		return v.Normal
	}
	v.Normal = sum.Normalize()
	return v.Normal
}

// VertexEdgeTest reports whether v lies on the mesh's boundary: it is
// incident to at least one edge with only a single neighboring
// triangle.
func (m *Mesh) VertexEdgeTest(id types.VertexID) bool {
	v := m.vertices[id]
	for _, tid := range v.Triangles {
		if m.IsTriangleDeleted(tid) {
			continue
		}
		tri := m.triangles[tid].V
		for _, e := range tri.Edges() {
			if e.V1() != id && e.V2() != id {
				continue
			}
			if len(m.edgeOwner[e]) < 2 {
				return true
			}
		}
	}
	return false
}

// UpdateVertexEdgeFlag recomputes id's on-edge status via
// VertexEdgeTest and persists it to Vertex.OnEdge, returning the new
// value. Per spec.md 4.5 step 7, the clipper calls this for every
// retained polygon vertex after retriangulating a pierced triangle,
// since clipping can both create new boundary vertices (along a mesh's
// outer rim) and turn a formerly-boundary vertex interior.
func (m *Mesh) UpdateVertexEdgeFlag(id types.VertexID) bool {
	onEdge := m.VertexEdgeTest(id)
	m.vertices[id].OnEdge = onEdge
	return onEdge
}
