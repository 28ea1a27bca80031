package types

import "testing"

func TestAABBZeroValue(t *testing.T) {
	var box AABB
	if box.Min != (Vector3{}) || box.Max != (Vector3{}) {
		t.Fatalf("zero value AABB should have zero corners, got %+v", box)
	}
}

func TestAABBConstruction(t *testing.T) {
	min := NewVector3(-1, -2, -3)
	max := NewVector3(3, 4, 5)
	box := AABB{Min: min, Max: max}
	if box.Min != min || box.Max != max {
		t.Fatalf("unexpected AABB: %+v", box)
	}
}

func TestAABBExtend(t *testing.T) {
	box := EmptyAABB()
	box = box.Extend(NewVector3(1, -2, 3))
	box = box.Extend(NewVector3(-4, 5, 0))

	want := AABB{Min: NewVector3(-4, -2, 0), Max: NewVector3(1, 5, 3)}
	if box != want {
		t.Fatalf("unexpected extended box: %+v, want %+v", box, want)
	}
}
