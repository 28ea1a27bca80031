package formatting

import (
	"fmt"
	"io"

	"github.com/briskmesh/zipper/types"
)

// Vector3String returns a concise string representation of a vector.
func Vector3String(v types.Vector3) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X(), v.Y(), v.Z())
}

// WriteVector3 writes a verbose representation of a vector to a writer.
func WriteVector3(w io.Writer, v types.Vector3) error {
	_, err := fmt.Fprintf(w, "Vector3{X: %v, Y: %v, Z: %v}", v.X(), v.Y(), v.Z())
	return err
}
