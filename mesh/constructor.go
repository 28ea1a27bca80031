package mesh

import (
	"github.com/briskmesh/zipper/spatial"
	"github.com/briskmesh/zipper/types"
)

// NewMesh creates an empty mesh tagged with the given origin, applying
// any supplied options.
func NewMesh(origin types.MeshID, opts ...Option) *Mesh {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Mesh{
		vertices:  make([]Vertex, 0, 64),
		triangles: make([]Triangle, 0, 64),
		cfg:       cfg,
		index:     spatial.NewHashGrid(cfg.cellSize, cfg.level),
		edgeOwner: make(map[types.Edge][]types.TriangleID),
		origin:    origin,
	}
}
