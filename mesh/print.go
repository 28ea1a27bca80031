package mesh

import (
	"fmt"
	"io"

	"github.com/briskmesh/zipper/formatting"
)

// Print writes a summary of the mesh's vertices and triangles to w.
func (m *Mesh) Print(w io.Writer) error {
	fmt.Fprintf(w, "Mesh Summary:\n")
	fmt.Fprintf(w, "  Origin:     %d\n", m.origin)
	fmt.Fprintf(w, "  Vertices:   %d\n", m.NumVertices())
	fmt.Fprintf(w, "  Triangles:  %d\n", m.NumTriangles())
	fmt.Fprintf(w, "\n")

	if m.NumVertices() > 0 {
		fmt.Fprintf(w, "Vertices:\n")
		for i, v := range m.vertices {
			fmt.Fprintf(w, "  [%d] %s\n", i, formatting.Vector3String(v.Pos))
		}
		fmt.Fprintf(w, "\n")
	}

	if m.NumTriangles() > 0 {
		fmt.Fprintf(w, "Triangles:\n")
		for i, t := range m.triangles {
			if t.deleted {
				continue
			}
			fmt.Fprintf(w, "  [%d] %s\n", i, formatting.TriangleString(t.V))
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}
