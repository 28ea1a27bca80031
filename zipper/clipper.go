package zipper

import (
	"fmt"
	"sort"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/scan"
	"github.com/briskmesh/zipper/splitter"
	"github.com/briskmesh/zipper/types"
)

const maxInteriorChainHops = 64

// FinishIntersectMeshes allocates the vertex for every recorded cut and
// retriangulates every pierced triangle of both scans, per spec.md 4.5.
// The arena must come from a prior IntersectMeshes(sc1, sc2, cfg) call.
func FinishIntersectMeshes(sc1, sc2 *scan.Scan, arena *CutArena, cfg Config) error {
	log := cfg.logger()

	for i := 0; i < arena.Len(); i++ {
		cut := arena.Get(types.CutID(i))
		if cut.NewVert == types.NilVertex {
			cut.NewVert = cut.Mesh.AddVertex(cut.Pos)
		}
	}

	for _, m := range []*mesh.Mesh{sc1.Mesh(), sc2.Mesh()} {
		if m != nil {
			retriangulateMesh(arena, m, cfg)
		}
	}
	for _, m := range []*mesh.Mesh{sc1.Mesh(), sc2.Mesh()} {
		if m != nil {
			clearScratch(m)
		}
	}

	log.Debug("zipper: finished intersection", "cuts", arena.Len())
	return nil
}

func retriangulateMesh(arena *CutArena, m *mesh.Mesh, cfg Config) {
	log := cfg.logger()

	n := m.NumTriangles()
	for i := 0; i < n; i++ {
		id := types.TriangleID(i)
		if m.IsTriangleDeleted(id) {
			continue
		}
		tri := m.Triangle(id)
		if tri.Clip == nil {
			continue
		}
		total := 0
		for _, ce := range tri.Clip {
			total += len(ce.Cuts)
		}
		if total == 0 {
			continue
		}

		if err := retriangulateTriangle(arena, m, id, cfg); err != nil {
			log.Warn("zipper: leaving triangle unclipped", "triangle", int(id), "error", err)
		}
	}
}

// candidateEntry is one vertex of the candidate polygon boundary
// assembled while walking a pierced triangle's three edges.
type candidateEntry struct {
	isCorner bool
	corner   types.VertexID
	cutID    types.CutID
	inward   bool
}

// retriangulateTriangle implements spec.md 4.5 phase 2 for one pierced
// triangle: assemble the candidate boundary, locate the unique
// entry/exit cuts, walk the interior chain between them, triangulate
// the retained polygon, and commit the result.
func retriangulateTriangle(arena *CutArena, m *mesh.Mesh, id types.TriangleID, cfg Config) error {
	tri := m.Triangle(id)
	corners := tri.V.Vertices()

	candidate := assembleCandidateBoundary(arena, tri, corners)

	inIdx, outIdx, err := locateEntryExit(candidate)
	if err != nil {
		return err
	}

	chain, err := interiorChain(arena, candidate[inIdx].cutID, candidate[outIdx].cutID)
	if err != nil {
		return err
	}

	polyVerts := assemblePolygon(arena, candidate, inIdx, outIdx, chain)
	if len(polyVerts) < 3 {
		return fmt.Errorf("zipper: retained polygon has only %d vertices", len(polyVerts))
	}

	return commitRetriangulation(m, id, tri, polyVerts)
}

func assembleCandidateBoundary(arena *CutArena, tri *mesh.Triangle, corners []types.VertexID) []candidateEntry {
	type sortedCut struct {
		cutID  types.CutID
		s      float64
		inward bool
	}

	var candidate []candidateEntry
	for ei := 0; ei < 3; ei++ {
		candidate = append(candidate, candidateEntry{isCorner: true, corner: corners[ei]})

		ce := tri.Clip[ei]
		entries := make([]sortedCut, 0, len(ce.Cuts))
		for _, cid := range ce.Cuts {
			s, inward := localCutView(ce, arena.Get(cid))
			entries = append(entries, sortedCut{cutID: cid, s: s, inward: inward})
		}
		sort.Slice(entries, func(a, b int) bool { return entries[a].s < entries[b].s })
		for _, e := range entries {
			candidate = append(candidate, candidateEntry{cutID: e.cutID, inward: e.inward})
		}
	}
	return candidate
}

func locateEntryExit(candidate []candidateEntry) (inIdx, outIdx int, err error) {
	inIdx, outIdx = -1, -1
	for i, e := range candidate {
		if e.isCorner {
			continue
		}
		if e.inward {
			if inIdx >= 0 {
				return 0, 0, ErrUnpairedCut
			}
			inIdx = i
		} else {
			if outIdx >= 0 {
				return 0, 0, ErrUnpairedCut
			}
			outIdx = i
		}
	}
	if inIdx < 0 || outIdx < 0 {
		return 0, 0, ErrUnpairedCut
	}
	return inIdx, outIdx, nil
}

// assemblePolygon walks forward in cyclic order from out (inclusive)
// through in (inclusive), then appends the interior chain, per
// spec.md 4.5 step 5.
func assemblePolygon(arena *CutArena, candidate []candidateEntry, inIdx, outIdx int, chain []types.VertexID) types.PolygonLoop {
	n := len(candidate)
	var polyVerts types.PolygonLoop
	for i := outIdx; ; i = (i + 1) % n {
		e := candidate[i]
		if e.isCorner {
			polyVerts = append(polyVerts, e.corner)
		} else {
			polyVerts = append(polyVerts, arena.Get(e.cutID).NewVert)
		}
		if i == inIdx {
			break
		}
	}
	return append(polyVerts, chain...)
}

func commitRetriangulation(m *mesh.Mesh, id types.TriangleID, tri *mesh.Triangle, polyVerts types.PolygonLoop) error {
	pts2D := projectPolygon(m, tri.PlaneNormal, polyVerts)
	tris, err := splitter.New(pts2D, m.Epsilon()).Build()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfIntersectingPolygon, err)
	}

	for _, t := range tris {
		a := polyVerts[t[0]]
		b := polyVerts[t[1]]
		c := polyVerts[t[2]]
		// A degenerate sub-triangle from a near-collinear polygon chain
		// is silently dropped rather than treated as fatal.
		m.AddTriangle(a, b, c, -1) //nolint:errcheck
	}

	if err := m.DeleteTriangle(id); err != nil {
		return err
	}

	for _, vid := range polyVerts {
		m.FindVertexNormal(vid)
		m.UpdateVertexEdgeFlag(vid)
	}
	return nil
}

// localCutView reinterprets a cut's parameter and direction relative to
// a specific ClipEdge's own endpoint ordering.
func localCutView(ce mesh.ClipEdge, cut *Cut) (s float64, inward bool) {
	if cut.V1 == ce.V1 && cut.V2 == ce.V2 {
		return cut.S, cut.Inward()
	}
	return 1 - cut.S, !cut.Inward()
}

// interiorChain walks the pierced mesh's triangle adjacency from the
// entry cut's pierced triangle to the exit cut's pierced triangle,
// collecting the new vertex of every other interior cut recorded
// against a triangle visited along the way.
//
// The common case (a single pierced triangle) needs no hop at all: the
// entry and exit cuts share the same PiercedTri, and the chain is just
// that triangle's remaining PierceInfo cuts. When the curve spans
// several triangles of the pierced mesh, the walk follows shared-edge
// neighbors from the pierced mesh's edge adjacency (EdgeNeighbors),
// bounded by maxInteriorChainHops as an anomaly backstop (see
// ErrInteriorChainBroken).
func interiorChain(arena *CutArena, inID, outID types.CutID) ([]types.VertexID, error) {
	in := arena.Get(inID)
	out := arena.Get(outID)
	pierced := in.PiercedMesh

	used := map[types.CutID]bool{inID: true, outID: true}
	var chain []types.VertexID

	current := in.PiercedTri
	for hop := 0; hop < maxInteriorChainHops; hop++ {
		t := pierced.Triangle(current)
		if t.Pierce != nil {
			cuts := append([]types.CutID(nil), t.Pierce.Cuts...)
			sort.Slice(cuts, func(a, b int) bool {
				return arena.Get(cuts[a]).S < arena.Get(cuts[b]).S
			})
			for _, cid := range cuts {
				if used[cid] {
					continue
				}
				used[cid] = true
				chain = append(chain, arena.Get(cid).NewVert)
			}
		}

		if current == out.PiercedTri {
			return chain, nil
		}

		next, ok := nextChainTriangle(pierced, current, used, arena)
		if !ok {
			return nil, ErrInteriorChainBroken
		}
		current = next
	}
	return nil, ErrInteriorChainBroken
}

// nextChainTriangle picks the edge-sharing neighbor of current that
// itself carries an unused interior cut, continuing the curve.
func nextChainTriangle(m *mesh.Mesh, current types.TriangleID, used map[types.CutID]bool, arena *CutArena) (types.TriangleID, bool) {
	tri := m.Triangle(current)
	for _, e := range tri.V.Edges() {
		for _, nbr := range m.EdgeNeighbors(e) {
			if nbr == current || !nbr.IsValid() {
				continue
			}
			nt := m.Triangle(nbr)
			if nt.Pierce == nil {
				continue
			}
			for _, cid := range nt.Pierce.Cuts {
				if !used[cid] {
					return nbr, true
				}
			}
		}
	}
	return types.NilTriangle, false
}

// Reset clears any scratch ClipEdges/PierceInfo left on sc's active
// mesh by a prior IntersectMeshes call that was never finished.
//
// FinishIntersectMeshes already tears this state down on success, so
// Reset is only needed when a caller wants to re-run the marking phase
// without committing a clip -- e.g. re-zippering a pair after merging
// one of the two scans with a third, per SPEC_FULL.md's supplemented
// "intersect_meshes clears prior state before re-marking" behavior.
func Reset(sc *scan.Scan) {
	if m := sc.Mesh(); m != nil {
		clearScratch(m)
	}
}

// clearScratch clears the transient per-pass bookkeeping from every
// surviving triangle of m, per spec.md 4.6's teardown contract.
func clearScratch(m *mesh.Mesh) {
	m.ClearIndexMarks()
	n := m.NumTriangles()
	for i := 0; i < n; i++ {
		id := types.TriangleID(i)
		if m.IsTriangleDeleted(id) {
			continue
		}
		tri := m.Triangle(id)
		tri.Clip = nil
		tri.Pierce = nil
		tri.Pierced = false
		tri.Visited = false
	}
}
