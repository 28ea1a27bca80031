package types

import "testing"

func TestEpsilonNormalization(t *testing.T) {
	e := NewEpsilon(-1e-6, -1e-3)
	if e.Abs < 0 || e.Rel < 0 {
		t.Fatalf("expected non-negative tolerances, got %+v", e)
	}
}

func TestEpsilonTolForPoints(t *testing.T) {
	e := NewEpsilon(1e-3, 1e-2)
	points := []Vector3{
		NewVector3(10, -5, 1),
		NewVector3(-20, 3, 2),
	}

	got := e.TolForPoints(points...)
	want := e.Abs + e.Rel*20
	if got != want {
		t.Fatalf("expected tolerance %.6f, got %.6f", want, got)
	}
}

func TestEpsilonMergeDistance(t *testing.T) {
	e := DefaultEpsilon().WithAbs(1e-4).WithRel(1e-3)
	a := NewVector3(100, 1, 0)
	b := NewVector3(101, 2, 0)

	got := e.MergeDistance(a, b)
	want := e.Abs + e.Rel*101
	if got != want {
		t.Fatalf("expected merge distance %.6f, got %.6f", want, got)
	}
}
