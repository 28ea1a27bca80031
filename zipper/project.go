package zipper

import (
	"math"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/types"
)

// projectPolygon expresses each vertex's 3D position in a 2D
// orthonormal basis of the triangle's supporting plane, so the result
// can be handed to the planar splitter.
func projectPolygon(m *mesh.Mesh, normal types.Vector3, verts types.PolygonLoop) []types.Point {
	u, v := planeBasis(normal)
	origin := m.VertexPos(verts[0])

	pts := make([]types.Point, len(verts))
	for i, vid := range verts {
		d := m.VertexPos(vid).Sub(origin)
		pts[i] = types.Point{X: d.Dot(u), Y: d.Dot(v)}
	}
	return pts
}

// planeBasis builds an orthonormal (u, v) tangent basis for a plane
// with the given unit normal.
func planeBasis(normal types.Vector3) (u, v types.Vector3) {
	n := normal.Normalize()
	ref := types.NewVector3(1, 0, 0)
	if math.Abs(n.X()) > 0.9 {
		ref = types.NewVector3(0, 1, 0)
	}
	u = n.Cross(ref).Normalize()
	v = n.Cross(u)
	return u, v
}
