package mesh

import "github.com/briskmesh/zipper/types"

// AddTriangle creates a triangle from three existing vertices.
//
// maxEdge overrides the mesh's configured max edge length for this
// call (see config.EdgeLengthMax); pass 0 to use the mesh's default
// from WithMaxEdgeLength, or a negative value to skip the check
// entirely for this triangle.
func (m *Mesh) AddTriangle(v1, v2, v3 types.VertexID, maxEdge float64) (types.TriangleID, error) {
	if !m.IsValidVertexID(v1) || !m.IsValidVertexID(v2) || !m.IsValidVertexID(v3) {
		return types.NilTriangle, ErrInvalidVertexID
	}

	a := m.vertices[v1].Pos
	b := m.vertices[v2].Pos
	c := m.vertices[v3].Pos

	normal := b.Sub(a).Cross(c.Sub(a))
	length := normal.Len()
	if length <= m.cfg.epsilon {
		return types.NilTriangle, ErrDegenerateTriangle
	}
	normal = normal.Mul(1 / length)

	limit := maxEdge
	if limit == 0 {
		limit = m.cfg.maxEdgeLen
	}
	if limit > 0 {
		if a.Sub(b).Len() > limit || b.Sub(c).Len() > limit || c.Sub(a).Len() > limit {
			return types.NilTriangle, ErrEdgeTooLong
		}
	}

	tri := types.NewTriangle(v1, v2, v3)
	id := types.TriangleID(len(m.triangles))
	m.triangles = append(m.triangles, Triangle{
		V:           tri,
		PlaneNormal: normal,
		PlaneD:      normal.Dot(a),
	})

	for _, e := range tri.Edges() {
		neighbors := m.edgeOwner[e]
		if len(neighbors) >= 2 {
			return types.NilTriangle, ErrNonManifoldEdge
		}
		m.edgeOwner[e] = append(neighbors, id)
	}

	m.vertices[v1].Triangles = append(m.vertices[v1].Triangles, id)
	m.vertices[v2].Triangles = append(m.vertices[v2].Triangles, id)
	m.vertices[v3].Triangles = append(m.vertices[v3].Triangles, id)

	if m.cfg.debugAddTriangle != nil {
		m.cfg.debugAddTriangle(id, tri)
	}

	return id, nil
}

// DeleteTriangle retires a triangle: it is removed from its vertices'
// back-pointers and from edge adjacency, but its slot is not compacted
// so existing TriangleIDs elsewhere in the mesh remain valid.
func (m *Mesh) DeleteTriangle(id types.TriangleID) error {
	if !m.IsValidTriangleID(id) {
		return ErrInvalidTriangleIndex
	}

	tri := m.triangles[id].V
	m.triangles[id].deleted = true
	m.triangles[id].Clip = nil
	m.triangles[id].Pierce = nil

	for _, e := range tri.Edges() {
		m.edgeOwner[e] = removeTriangleID(m.edgeOwner[e], id)
		if len(m.edgeOwner[e]) == 0 {
			delete(m.edgeOwner, e)
		}
	}

	for _, vid := range [3]types.VertexID{tri.V1(), tri.V2(), tri.V3()} {
		m.vertices[vid].Triangles = removeTriangleID(m.vertices[vid].Triangles, id)
	}

	return nil
}

func removeTriangleID(ids []types.TriangleID, target types.TriangleID) []types.TriangleID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
