package validation

import (
	"errors"
	"fmt"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/types"
)

// ErrDuplicateTriangle indicates two live triangles in a mesh reference
// the same three vertices.
var ErrDuplicateTriangle = errors.New("validation: duplicate triangle")

// CheckNoDuplicateTriangles performs an O(n^2) all-pairs scan of m's
// live triangles looking for two that share the same vertex set
// regardless of winding.
//
// This is the retriangulation-side counterpart of CheckNoStaleScratch:
// commitRetriangulation deletes a pierced triangle and replaces it with
// the splitter's output, so a clip bug that deletes the wrong triangle
// or emits an overlapping fan leaves two live triangles covering the
// same patch of surface. It is O(n^2) and meant for tests and debug
// builds, not the hot clipping path.
func CheckNoDuplicateTriangles(m *mesh.Mesh) error {
	n := m.NumTriangles()
	live := make([]types.TriangleID, 0, n)
	for i := 0; i < n; i++ {
		id := types.TriangleID(i)
		if !m.IsTriangleDeleted(id) {
			live = append(live, id)
		}
	}

	for i := 0; i < len(live); i++ {
		a := vertexSet(m.Triangle(live[i]).V)
		for j := i + 1; j < len(live); j++ {
			b := vertexSet(m.Triangle(live[j]).V)
			if a == b {
				return fmt.Errorf("%w: triangles %d and %d both reference vertices %v",
					ErrDuplicateTriangle, live[i], live[j], a)
			}
		}
	}
	return nil
}

// vertexSet returns t's three vertices sorted ascending, so two
// triangles naming the same vertices compare equal regardless of
// winding or starting corner.
func vertexSet(t types.Triangle) [3]types.VertexID {
	s := [3]types.VertexID{t.V1(), t.V2(), t.V3()}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	return s
}
