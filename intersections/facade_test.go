package intersections

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/scan"
	"github.com/briskmesh/zipper/types"
)

func buildTriScan(t *testing.T, id types.MeshID, tr scan.Transform, verts [3]types.Vector3) *scan.Scan {
	t.Helper()
	m := mesh.NewMesh(id, mesh.WithCellSize(5))
	a := m.AddVertex(verts[0])
	b := m.AddVertex(verts[1])
	c := m.AddVertex(verts[2])
	_, err := m.AddTriangle(a, b, c, -1)
	require.NoError(t, err)
	sc := scan.New(tr)
	require.NoError(t, sc.SetLevel(types.LevelFinest, m))
	return sc
}

func TestMayIntersectRejectsFarApartScans(t *testing.T) {
	near := [3]types.Vector3{types.NewVector3(0, 0, 0), types.NewVector3(1, 0, 0), types.NewVector3(0, 1, 0)}
	far := [3]types.Vector3{types.NewVector3(1000, 1000, 1000), types.NewVector3(1001, 1000, 1000), types.NewVector3(1000, 1001, 1000)}

	sc1 := buildTriScan(t, 1, scan.IdentityTransform(), near)
	sc2 := buildTriScan(t, 2, scan.IdentityTransform(), far)

	require.False(t, MayIntersect(sc1, sc2, 1.0), "expected far-apart scans to be rejected by the broad-phase bounds check")
}

func TestMayIntersectAcceptsOverlappingScans(t *testing.T) {
	a := [3]types.Vector3{types.NewVector3(-2, -2, 0), types.NewVector3(2, -2, 0), types.NewVector3(0, 2, 0)}
	b := [3]types.Vector3{types.NewVector3(-1.5, 0, -1), types.NewVector3(1.5, 0, -1), types.NewVector3(0, 0, 1.5)}

	sc1 := buildTriScan(t, 1, scan.IdentityTransform(), a)
	sc2 := buildTriScan(t, 2, scan.IdentityTransform(), b)

	require.True(t, MayIntersect(sc1, sc2, 1.0), "expected overlapping scans to pass the broad-phase bounds check")
}

func TestZipRecordsAndCommitsCrossingScans(t *testing.T) {
	a := [3]types.Vector3{types.NewVector3(-2, -2, 0), types.NewVector3(2, -2, 0), types.NewVector3(0, 2, 0)}
	b := [3]types.Vector3{types.NewVector3(-1.5, 0, -1), types.NewVector3(1.5, 0, -1), types.NewVector3(0, 0, 1.5)}

	sc1 := buildTriScan(t, 1, scan.IdentityTransform(), a)
	sc2 := buildTriScan(t, 2, scan.IdentityTransform(), b)

	cfg := Config{
		Resolution:           1.0,
		MaxEdgeLengthFactor:  4.0,
		TangencyDotThreshold: 0.8,
		Level:                types.LevelFinest,
	}

	arena, err := Zip(sc1, sc2, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, arena.Len(), "expected 2 recorded cuts (two of b's edges pierce a; none of a's edges pierce b)")

	require.Equal(t, 3, sc1.Mesh().NumVertices(), "expected mesh 1, which is only pierced, to gain no vertices")
	require.Greater(t, sc2.Mesh().NumVertices(), 3, "expected mesh 2 to gain new vertices from the clip")
}

func TestZipSkipsDisjointScansWithoutRecording(t *testing.T) {
	near := [3]types.Vector3{types.NewVector3(0, 0, 0), types.NewVector3(1, 0, 0), types.NewVector3(0, 1, 0)}
	far := [3]types.Vector3{types.NewVector3(1000, 1000, 1000), types.NewVector3(1001, 1000, 1000), types.NewVector3(1000, 1001, 1000)}

	sc1 := buildTriScan(t, 1, scan.IdentityTransform(), near)
	sc2 := buildTriScan(t, 2, scan.IdentityTransform(), far)

	cfg := Config{Resolution: 1.0, MaxEdgeLengthFactor: 4.0, TangencyDotThreshold: 0.8, Level: types.LevelFinest}

	arena, err := Zip(sc1, sc2, cfg)
	require.NoError(t, err)
	require.Equal(t, 0, arena.Len(), "expected no recorded cuts for disjoint scans")
}
