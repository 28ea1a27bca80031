package zipper

import (
	"log/slog"

	"github.com/briskmesh/zipper/types"
)

// Default resolution parameters, matching the reference zippering
// system's resolution table at the finest level of detail.
const (
	DefaultResolution           = 5e-4
	DefaultMaxEdgeLengthFactor  = 4.0
	DefaultTangencyDotThreshold = 0.8
)

// Config holds the resolution-dependent tolerances that scale the
// zipper's geometric tests to a scan pair's level of detail.
type Config struct {
	// Resolution is the finest level's characteristic sample spacing;
	// coarser levels scale it by their Level.Inc() stride.
	Resolution float64

	// MaxEdgeLengthFactor bounds the radius used for near-vertex
	// queries: EdgeLengthMax = Resolution * Inc(Level) * MaxEdgeLengthFactor.
	MaxEdgeLengthFactor float64

	// TangencyDotThreshold is the near-tangency rejection threshold: a
	// hit is discarded when the absolute dot product of the two
	// triangles' unit normals exceeds this value.
	TangencyDotThreshold float64

	// Level is the level of detail whose stride scales EdgeLengthMax. It
	// does not choose the meshes: the recorder and clipper use each
	// scan's active level (scan.Scan.Mesh).
	Level types.Level

	// Logger receives structured diagnostics; defaults to slog.Default
	// when nil.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the reference resolution
// parameters at the given level of detail.
func DefaultConfig(level types.Level) Config {
	return Config{
		Resolution:           DefaultResolution,
		MaxEdgeLengthFactor:  DefaultMaxEdgeLengthFactor,
		TangencyDotThreshold: DefaultTangencyDotThreshold,
		Level:                level,
	}
}

// EdgeLengthMax returns the spatial-query radius for this config's level.
func (c Config) EdgeLengthMax() float64 {
	inc, err := c.Level.Inc()
	if err != nil {
		inc = 1
	}
	return c.Resolution * float64(inc) * c.MaxEdgeLengthFactor
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
