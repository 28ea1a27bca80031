package spatial

import (
	"math"

	"github.com/briskmesh/zipper/types"
)

// Primes used to scramble the 3D cell coordinate into a table index.
const (
	primeA = 17
	primeB = 101
)

// Table sizes by level of detail: LevelFinest and LevelFine use
// tableSizeLevel0, LevelCoarse uses tableSizeLevel1 and LevelCoarsest
// uses tableSizeLevel2. NewHashGrid picks the size for the level it is
// given.
const (
	tableSizeLevel0 = 53003
	tableSizeLevel1 = 17003
	tableSizeLevel2 = 5003
)

type cell struct {
	x, y, z int
}

// HashGrid is a fixed-size, open (chained) 3D uniform spatial hash
// mapping a cell coordinate to its bucket of vertices.
//
// Cell size should be chosen as the largest admissible triangle edge
// length at the mesh's active level of detail (see
// zipper.Config.EdgeLengthMax).
type HashGrid struct {
	cellSize  float64
	tableSize int
	buckets   [][]entry
	marked    map[types.VertexID]bool
}

type entry struct {
	id  types.VertexID
	pos types.Vector3
}

// NewHashGrid creates a hash grid index with the given cell size.
//
// level selects the table size: LevelFinest and LevelFine use the
// largest table (tableSizeLevel0), LevelCoarse and LevelCoarsest use
// progressively smaller tables since coarser meshes hold fewer vertices.
func NewHashGrid(cellSize float64, level types.Level) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	size := tableSizeLevel0
	switch level {
	case types.LevelFine:
		size = tableSizeLevel0
	case types.LevelCoarse:
		size = tableSizeLevel1
	case types.LevelCoarsest:
		size = tableSizeLevel2
	}
	return &HashGrid{
		cellSize:  cellSize,
		tableSize: size,
		buckets:   make([][]entry, size),
		marked:    make(map[types.VertexID]bool),
	}
}

// AddVertex inserts a vertex at the given local-frame position.
func (h *HashGrid) AddVertex(id types.VertexID, p types.Vector3) {
	c := h.pointToCell(p)
	idx := h.cellHash(c)
	h.buckets[idx] = append(h.buckets[idx], entry{id: id, pos: p})
}

// Build is a no-op: the hash grid is already queryable after AddVertex calls.
func (h *HashGrid) Build() {}

// FindVerticesNear appends vertex IDs within radius of p to near.
//
// It scans the 27 cells around the query point's cell, so the caller
// must size the grid's cellSize so the query radius fits within one
// cell's worth of slack (cellSize >= radius) for the 27-cell window to
// be exact.
func (h *HashGrid) FindVerticesNear(p types.Vector3, radius float64, near []types.VertexID) []types.VertexID {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius

	center := h.pointToCell(p)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c := cell{center.x + dx, center.y + dy, center.z + dz}
				idx := h.cellHash(c)
				for _, e := range h.buckets[idx] {
					if h.marked[e.id] {
						continue
					}
					d := e.pos.Sub(p)
					if d.Dot(d) > r2 {
						continue
					}
					h.marked[e.id] = true
					near = append(near, e.id)
				}
			}
		}
	}
	return near
}

// ClearMarks resets the dedup marks set by the most recent query.
func (h *HashGrid) ClearMarks() {
	for id := range h.marked {
		delete(h.marked, id)
	}
}

func (h *HashGrid) pointToCell(p types.Vector3) cell {
	return cell{
		x: int(math.Floor(p.X() / h.cellSize)),
		y: int(math.Floor(p.Y() / h.cellSize)),
		z: int(math.Floor(p.Z() / h.cellSize)),
	}
}

// cellHash maps a 3D cell coordinate to a table bucket index, via
// (a*P1 + b*P2 + c) mod N with negative results normalized non-negative.
func (h *HashGrid) cellHash(c cell) int {
	v := c.x*primeA + c.y*primeB + c.z
	m := v % h.tableSize
	if m < 0 {
		m += h.tableSize
	}
	return m
}
