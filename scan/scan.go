package scan

import (
	"fmt"

	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/types"
)

// Scan is one depth-sensor acquisition: a rigid transform to world space
// plus up to types.MaxLevels precomputed meshes, one per level of detail.
type Scan struct {
	Transform Transform

	levels [types.MaxLevels]*mesh.Mesh
	active types.Level
}

// New builds a Scan around the given transform. Meshes are attached
// per-level with SetLevel.
func New(t Transform) *Scan {
	return &Scan{Transform: t}
}

// SetLevel attaches the mesh for the given level of detail.
func (s *Scan) SetLevel(level types.Level, m *mesh.Mesh) error {
	if !level.IsValid() {
		return fmt.Errorf("scan: invalid level %d", level)
	}
	s.levels[level] = m
	return nil
}

// SetActiveLevel selects which precomputed mesh subsequent operations use.
func (s *Scan) SetActiveLevel(level types.Level) error {
	if !level.IsValid() {
		return fmt.Errorf("scan: invalid level %d", level)
	}
	s.active = level
	return nil
}

// ActiveLevel reports the currently selected level of detail.
func (s *Scan) ActiveLevel() types.Level {
	return s.active
}

// Mesh returns the mesh at the scan's active level of detail, or nil if
// none was attached.
func (s *Scan) Mesh() *mesh.Mesh {
	return s.levels[s.active]
}

// MeshAt returns the mesh at a specific level of detail.
func (s *Scan) MeshAt(level types.Level) *mesh.Mesh {
	if !level.IsValid() {
		return nil
	}
	return s.levels[level]
}
