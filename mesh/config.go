package mesh

import "github.com/briskmesh/zipper/types"

type config struct {
	epsilon      float64
	maxEdgeLen   float64
	level        types.Level
	cellSize     float64

	debugAddVertex   func(types.VertexID, types.Vector3)
	debugAddTriangle func(types.TriangleID, types.Triangle)
}

// DefaultEpsilon is the default tolerance for geometric operations.
const DefaultEpsilon = 1e-9

func newDefaultConfig() config {
	return config{
		epsilon:    DefaultEpsilon,
		maxEdgeLen: 0, // 0 disables the edge-length rejection check
		level:      types.LevelFinest,
		cellSize:   1,
	}
}
