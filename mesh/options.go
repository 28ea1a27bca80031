package mesh

import "github.com/briskmesh/zipper/types"

// Option configures a Mesh during construction.
type Option func(*config)

// WithEpsilon sets the geometric tolerance for the mesh.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		if epsilon < 0 {
			epsilon = DefaultEpsilon
		}
		c.epsilon = epsilon
	}
}

// WithMaxEdgeLength sets the maximum admissible triangle edge length.
// AddTriangle rejects any triangle with a longer edge. Zero (the
// default) disables the check; see config.EdgeLengthMax for the
// formula that derives this from ZIPPER_RESOLUTION and the active level.
func WithMaxEdgeLength(length float64) Option {
	return func(c *config) {
		if length >= 0 {
			c.maxEdgeLen = length
		}
	}
}

// WithLevel sets the mesh's level of detail, which selects the spatial
// hash's table size (see spatial.NewHashGrid).
func WithLevel(level types.Level) Option {
	return func(c *config) {
		if level.IsValid() {
			c.level = level
		}
	}
}

// WithCellSize sets the spatial hash's cell size. It should match the
// mesh's max edge length at its active level of detail.
func WithCellSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.cellSize = size
		}
	}
}

// WithDebugAddVertex installs a hook called after vertex insertion.
func WithDebugAddVertex(hook func(types.VertexID, types.Vector3)) Option {
	return func(c *config) {
		c.debugAddVertex = hook
	}
}

// WithDebugAddTriangle installs a hook called after triangle insertion.
func WithDebugAddTriangle(hook func(types.TriangleID, types.Triangle)) Option {
	return func(c *config) {
		c.debugAddTriangle = hook
	}
}
