package zipper

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/scan"
	"github.com/briskmesh/zipper/types"
)

// buildCrossingScans constructs two single-triangle scans, in identity
// world frames, whose triangles cross: a flat triangle in the z=0
// plane and a "tent" triangle standing in the y=0 plane through it.
// Two of the tent's edges pierce the flat triangle's interior (at
// x=+-0.9); the flat triangle's edges cross y=0 at x=+-1, outside the
// tent, so they pierce nothing.
func buildCrossingScans(t *testing.T) (*scan.Scan, *scan.Scan, Config) {
	t.Helper()

	mA := mesh.NewMesh(types.MeshID(1), mesh.WithCellSize(5))
	a0 := mA.AddVertex(types.NewVector3(-2, -2, 0))
	a1 := mA.AddVertex(types.NewVector3(2, -2, 0))
	a2 := mA.AddVertex(types.NewVector3(0, 2, 0))
	_, err := mA.AddTriangle(a0, a1, a2, -1)
	require.NoError(t, err, "AddTriangle(A)")

	mB := mesh.NewMesh(types.MeshID(2), mesh.WithCellSize(5))
	b0 := mB.AddVertex(types.NewVector3(-1.5, 0, -1))
	b1 := mB.AddVertex(types.NewVector3(1.5, 0, -1))
	b2 := mB.AddVertex(types.NewVector3(0, 0, 1.5))
	_, err = mB.AddTriangle(b0, b1, b2, -1)
	require.NoError(t, err, "AddTriangle(B)")

	scA := scan.New(scan.IdentityTransform())
	require.NoError(t, scA.SetLevel(types.LevelFinest, mA))
	scB := scan.New(scan.IdentityTransform())
	require.NoError(t, scB.SetLevel(types.LevelFinest, mB))

	cfg := Config{
		Resolution:           1.0,
		MaxEdgeLengthFactor:  4.0,
		TangencyDotThreshold: DefaultTangencyDotThreshold,
		Level:                types.LevelFinest,
	}
	return scA, scB, cfg
}

// cutSummary is a reduced, order-independent view of a Cut used only to
// make the cmp.Diff assertion below readable.
type cutSummary struct {
	PiercedMeshOrigin types.MeshID
	Inward            bool
}

func TestIntersectMeshesRecordsBothDirections(t *testing.T) {
	scA, scB, cfg := buildCrossingScans(t)

	arena, err := IntersectMeshes(scA, scB, cfg)
	require.NoError(t, err)
	require.Equal(t, 4, arena.Len(), "expected 4 cuts (2 per direction)")

	var got []cutSummary
	for i := 0; i < arena.Len(); i++ {
		c := arena.Get(types.CutID(i))
		require.Contains(t, []types.MeshID{1, 2}, c.PiercedMesh.Origin(),
			"cut pierces an unexpected mesh origin %v", c.PiercedMesh.Origin())
		got = append(got, cutSummary{PiercedMeshOrigin: c.PiercedMesh.Origin(), Inward: c.Inward()})
	}
	sort.Slice(got, func(i, j int) bool {
		if got[i].PiercedMeshOrigin != got[j].PiercedMeshOrigin {
			return got[i].PiercedMeshOrigin < got[j].PiercedMeshOrigin
		}
		return !got[i].Inward && got[j].Inward
	})

	want := []cutSummary{
		{PiercedMeshOrigin: 1, Inward: false},
		{PiercedMeshOrigin: 1, Inward: true},
		{PiercedMeshOrigin: 2, Inward: false},
		{PiercedMeshOrigin: 2, Inward: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected cut distribution across meshes (-want +got):\n%s", diff)
	}
}

func TestResetClearsScratchWithoutFinishing(t *testing.T) {
	scA, scB, cfg := buildCrossingScans(t)

	_, err := IntersectMeshes(scA, scB, cfg)
	require.NoError(t, err)

	tri := scA.Mesh().Triangle(types.TriangleID(0))
	require.True(t, tri.Pierced, "triangle should be marked pierced before Reset")

	Reset(scA)
	Reset(scB)

	tri = scA.Mesh().Triangle(types.TriangleID(0))
	require.False(t, tri.Pierced, "Reset should clear the Pierced flag")
	require.Nil(t, tri.Clip, "Reset should clear ClipEdges")
	require.Nil(t, tri.Pierce, "Reset should clear PierceInfo")
}

func TestIntersectMeshesSkipsNonIntersectingScans(t *testing.T) {
	scA, _, cfg := buildCrossingScans(t)

	far := mesh.NewMesh(types.MeshID(3), mesh.WithCellSize(5))
	f0 := far.AddVertex(types.NewVector3(1000, 1000, 1000))
	f1 := far.AddVertex(types.NewVector3(1001, 1000, 1000))
	f2 := far.AddVertex(types.NewVector3(1000, 1001, 1000))
	_, err := far.AddTriangle(f0, f1, f2, -1)
	require.NoError(t, err, "AddTriangle(far)")

	scFar := scan.New(scan.IdentityTransform())
	require.NoError(t, scFar.SetLevel(types.LevelFinest, far))

	arena, err := IntersectMeshes(scA, scFar, cfg)
	require.NoError(t, err)
	require.Equal(t, 0, arena.Len(), "expected no cuts for disjoint scans")
}
