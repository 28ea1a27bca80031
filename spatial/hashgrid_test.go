package spatial

import (
	"testing"

	"github.com/briskmesh/zipper/types"
)

func TestHashGridAddAndQuery(t *testing.T) {
	grid := NewHashGrid(1, types.LevelFinest)
	grid.AddVertex(0, types.NewVector3(0, 0, 0))
	grid.AddVertex(1, types.NewVector3(1.9, 0, 0))

	result := grid.FindVerticesNear(types.NewVector3(0.1, 0.2, 0), 0.5, nil)
	if len(result) != 1 || result[0] != 0 {
		t.Fatalf("expected to find vertex 0, got %v", result)
	}
	grid.ClearMarks()

	result = grid.FindVerticesNear(types.NewVector3(1.9, 0, 0), 0.2, nil)
	if len(result) == 0 {
		t.Fatalf("expected non-empty result")
	}
}

func TestHashGridZeroRadius(t *testing.T) {
	grid := NewHashGrid(1, types.LevelFinest)
	grid.AddVertex(0, types.NewVector3(0.1, 0.2, 0))
	result := grid.FindVerticesNear(types.NewVector3(0.1, 0.2, 0), 0, nil)
	if len(result) != 1 || result[0] != 0 {
		t.Fatalf("expected match at same cell")
	}
}

func TestHashGridDedupWithinQuery(t *testing.T) {
	grid := NewHashGrid(1, types.LevelFinest)
	grid.AddVertex(5, types.NewVector3(0, 0, 0))

	var near []types.VertexID
	near = grid.FindVerticesNear(types.NewVector3(0, 0, 0), 2, near)
	near = grid.FindVerticesNear(types.NewVector3(0.5, 0, 0), 2, near)
	if len(near) != 1 {
		t.Fatalf("expected vertex to be deduped across overlapping cell scans within one query, got %v", near)
	}
}

func TestHashGridClearMarksAllowsRequery(t *testing.T) {
	grid := NewHashGrid(1, types.LevelFinest)
	grid.AddVertex(0, types.NewVector3(0, 0, 0))

	first := grid.FindVerticesNear(types.NewVector3(0, 0, 0), 1, nil)
	grid.ClearMarks()
	second := grid.FindVerticesNear(types.NewVector3(0, 0, 0), 1, nil)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected vertex to be found again after ClearMarks, got %v then %v", first, second)
	}
}

func TestHashGridRejectsFarVertex(t *testing.T) {
	grid := NewHashGrid(1, types.LevelFinest)
	grid.AddVertex(0, types.NewVector3(10, 10, 10))

	result := grid.FindVerticesNear(types.NewVector3(0, 0, 0), 1, nil)
	if len(result) != 0 {
		t.Fatalf("expected far vertex to be excluded, got %v", result)
	}
}
