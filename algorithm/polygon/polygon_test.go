package polygon

import (
	"testing"

	"github.com/briskmesh/zipper/types"
)

func TestSignedAreaAndOrientation(t *testing.T) {
	ccwSquare := []types.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}

	if area := SignedArea(ccwSquare); area <= 0 {
		t.Fatalf("expected positive area, got %f", area)
	}
	if !IsCCW(ccwSquare) {
		t.Fatalf("expected polygon to be CCW")
	}

	cwSquare := []types.Point{ccwSquare[0], ccwSquare[3], ccwSquare[2], ccwSquare[1]}
	if IsCCW(cwSquare) {
		t.Fatalf("expected reversed vertex order to read as CW")
	}
}

func TestPointInPolygon(t *testing.T) {
	poly := []types.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
	}

	result := PointInPolygon(types.Point{X: 2, Y: 2}, poly)
	if result != Inside {
		t.Fatalf("expected inside, got %v", result)
	}

	result = PointInPolygon(types.Point{X: -1, Y: 2}, poly)
	if result != Outside {
		t.Fatalf("expected outside, got %v", result)
	}

	result = PointInPolygon(types.Point{X: 4, Y: 2}, poly)
	if result != OnEdge {
		t.Fatalf("expected on-edge, got %v", result)
	}

	result = PointInPolygon(types.Point{X: 4, Y: 4}, poly)
	if result != OnEdge {
		t.Fatalf("expected vertex to count as on-edge, got %v", result)
	}
}
