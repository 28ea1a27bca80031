package splitter

import (
	"testing"

	"github.com/briskmesh/zipper/types"
)

func TestBuildTriangle(t *testing.T) {
	pts := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tris, err := New(pts, 1e-9).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tris))
	}
}

func TestBuildSquare(t *testing.T) {
	pts := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tris, err := New(pts, 1e-9).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
}

func TestBuildConcavePolygon(t *testing.T) {
	// An "L" shape: 6 vertices, one reflex corner.
	pts := []types.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
	tris, err := New(pts, 1e-9).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tris) != len(pts)-2 {
		t.Fatalf("expected %d triangles, got %d", len(pts)-2, len(tris))
	}
}

func TestBuildRejectsTooFewPoints(t *testing.T) {
	pts := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if _, err := New(pts, 1e-9).Build(); err == nil {
		t.Fatalf("expected error for degenerate polygon")
	}
}

func TestBuildRejectsSelfIntersecting(t *testing.T) {
	// A bowtie.
	pts := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if _, err := New(pts, 1e-9).Build(); err == nil {
		t.Fatalf("expected error for self-intersecting polygon")
	}
}
