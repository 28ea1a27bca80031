package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/types"
)

func newTestMesh(t *testing.T) (*mesh.Mesh, types.VertexID, types.VertexID) {
	t.Helper()
	m := mesh.NewMesh(types.MeshID(1), mesh.WithCellSize(5))
	v1 := m.AddVertex(types.NewVector3(0, 0, 0))
	v2 := m.AddVertex(types.NewVector3(2, 0, 0))
	return m, v1, v2
}

func TestCheckCutPositionAcceptsExactInterpolation(t *testing.T) {
	m, v1, v2 := newTestMesh(t)
	c := Cut{V1: v1, V2: v2, S: 0.25, Mesh: m, Pos: types.NewVector3(0.5, 0, 0)}
	require.NoError(t, CheckCutPosition(c))
}

func TestCheckCutPositionRejectsDrift(t *testing.T) {
	m, v1, v2 := newTestMesh(t)
	c := Cut{V1: v1, V2: v2, S: 0.25, Mesh: m, Pos: types.NewVector3(0.9, 0, 0)}
	require.ErrorIs(t, CheckCutPosition(c), ErrCutPositionDrift)
}

func TestCheckPiercedTrianglePairingAcceptsEqualCounts(t *testing.T) {
	cuts := []Cut{{Inward: true}, {Inward: false}}
	require.NoError(t, CheckPiercedTrianglePairing(cuts))
}

func TestCheckPiercedTrianglePairingRejectsUnpaired(t *testing.T) {
	cuts := []Cut{{Inward: true}, {Inward: true}}
	require.ErrorIs(t, CheckPiercedTrianglePairing(cuts), ErrUnpairedCut)
}

func TestCheckNoStaleScratchRejectsLeftoverClip(t *testing.T) {
	m := mesh.NewMesh(types.MeshID(1), mesh.WithCellSize(5))
	a := m.AddVertex(types.NewVector3(0, 0, 0))
	b := m.AddVertex(types.NewVector3(1, 0, 0))
	c := m.AddVertex(types.NewVector3(0, 1, 0))
	id, err := m.AddTriangle(a, b, c, -1)
	require.NoError(t, err)

	require.NoError(t, CheckNoStaleScratch(m), "expected clean mesh to pass")

	m.Triangle(id).Visited = true
	require.ErrorIs(t, CheckNoStaleScratch(m), ErrStaleScratchFlag)
}

func TestCheckClipEdgeSharesCutIdentityDetectsMismatch(t *testing.T) {
	m := mesh.NewMesh(types.MeshID(1), mesh.WithCellSize(5))
	a := m.AddVertex(types.NewVector3(0, 0, 0))
	b := m.AddVertex(types.NewVector3(1, 0, 0))
	c := m.AddVertex(types.NewVector3(0, 1, 0))
	d := m.AddVertex(types.NewVector3(1, 1, 0))
	t1, err := m.AddTriangle(a, b, c, -1)
	require.NoError(t, err)
	t2, err := m.AddTriangle(b, d, c, -1)
	require.NoError(t, err)

	edge := types.NewEdge(b, c)
	ce1 := mesh.ClipEdge{V1: b, V2: c, Cuts: []types.CutID{0, 1}}
	ce2 := mesh.ClipEdge{V1: b, V2: c, Cuts: []types.CutID{0}}
	m.Triangle(t1).Clip = clipEdgesAt(m.Triangle(t1), edge, ce1)
	m.Triangle(t2).Clip = clipEdgesAt(m.Triangle(t2), edge, ce2)

	require.Error(t, CheckClipEdgeSharesCutIdentity(m, t1, t2, edge), "expected a mismatch error for differing cut lists")

	m.Triangle(t2).Clip[clipEdgeIndexFor(m.Triangle(t2), edge)].Cuts = []types.CutID{0, 1}
	require.NoError(t, CheckClipEdgeSharesCutIdentity(m, t1, t2, edge), "expected matching cut lists to pass")
}

// clipEdgesAt builds a *ClipEdges for tri with ce installed at the slot
// matching edge, leaving the other two slots zero-valued.
func clipEdgesAt(tri *mesh.Triangle, edge types.Edge, ce mesh.ClipEdge) *mesh.ClipEdges {
	var edges mesh.ClipEdges
	for i, e := range tri.V.Edges() {
		if e == edge {
			edges[i] = ce
		}
	}
	return &edges
}
