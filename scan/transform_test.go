package scan

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/briskmesh/zipper/types"
)

func vecClose(t *testing.T, got, want types.Vector3, tol float64) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIdentityTransformRoundTrips(t *testing.T) {
	tr := IdentityTransform()
	p := types.NewVector3(1, 2, 3)

	vecClose(t, tr.LocalToWorldPoint(p), p, 1e-12)
	vecClose(t, tr.WorldToLocalPoint(p), p, 1e-12)
}

func TestTransformTranslationOnly(t *testing.T) {
	tr := Transform{
		Rotation:    types.IdentityMatrix3(),
		Translation: types.NewVector3(10, 0, 0),
	}
	p := types.NewVector3(1, 1, 1)

	world := tr.LocalToWorldPoint(p)
	vecClose(t, world, types.NewVector3(11, 1, 1), 1e-12)

	local := tr.WorldToLocalPoint(world)
	vecClose(t, local, p, 1e-12)
}

func TestTransformNormalIgnoresTranslation(t *testing.T) {
	rot := mgl64.Rotate3DZ(math.Pi / 2)
	tr := Transform{
		Rotation:    rot,
		Translation: types.NewVector3(5, 5, 5),
	}
	n := types.NewVector3(1, 0, 0)

	worldN := tr.LocalToWorldNormal(n)
	vecClose(t, worldN, types.NewVector3(0, 1, 0), 1e-9)

	localN := tr.WorldToLocalNormal(worldN)
	vecClose(t, localN, n, 1e-9)
}

func TestTransformPointRoundTripThroughRotation(t *testing.T) {
	rot := mgl64.Rotate3DY(math.Pi / 3)
	tr := Transform{
		Rotation:    rot,
		Translation: types.NewVector3(-2, 4, 1),
	}
	p := types.NewVector3(3, -1, 2)

	world := tr.LocalToWorldPoint(p)
	local := tr.WorldToLocalPoint(world)
	vecClose(t, local, p, 1e-9)
}
