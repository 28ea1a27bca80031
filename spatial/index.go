package spatial

import "github.com/briskmesh/zipper/types"

// Index provides spatial proximity queries over a mesh's vertices.
//
// Index is deliberately unaware of vertex origin tags or triangle
// incidence; mesh.Mesh layers that filtering (reject_origin, skip
// vertices with no incident triangles) on top of the raw query result.
type Index interface {
	// AddVertex inserts a vertex at the given local-frame position.
	AddVertex(id types.VertexID, p types.Vector3)

	// FindVerticesNear appends vertex IDs within radius of p to near and
	// returns the grown slice. A vertex appears at most once per call;
	// repeated calls reuse the same transient dedup marks, so the caller
	// must call ClearMarks between queries.
	FindVerticesNear(p types.Vector3, radius float64, near []types.VertexID) []types.VertexID

	// ClearMarks resets the dedup marks set by the most recent query.
	ClearMarks()

	// Build finalizes the index after all vertices have been added.
	Build()
}
