package formatting

import (
	"bytes"
	"testing"

	"github.com/briskmesh/zipper/types"
)

func TestFormattingHelpers(t *testing.T) {
	v := types.NewVector3(1.2345, -9.876, 0.5)
	if s := Vector3String(v); s == "" {
		t.Fatalf("vector string should not be empty")
	}

	box := types.AABB{Min: types.NewVector3(0, 0, 0), Max: types.NewVector3(1, 1, 1)}
	if s := AABBString(box); s == "" {
		t.Fatalf("aabb string should not be empty")
	}

	if VertexIDString(3) == "" {
		t.Fatalf("vertex id string should not be empty")
	}

	if EdgeString(types.NewEdge(2, 1)) != "Edge{1, 2}" {
		t.Fatalf("unexpected edge string")
	}

	if TriangleString(types.Triangle{1, 2, 3}) == "" {
		t.Fatalf("triangle string should not be empty")
	}

	buf := &bytes.Buffer{}
	if err := WriteVector3(buf, v); err != nil {
		t.Fatalf("write vector failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for WriteVector3")
	}
}
