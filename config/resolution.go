// Package config loads the persisted resolution-parameter table that
// ZIPPER_RESOLUTION and its sibling-subsystem factors are derived from.
// Everything the zippering core itself reads (edge_length_max) is a
// function of ZipperResolution and MaxEdgeLengthFactor alone; the rest
// of the table is carried here only because it shares a file format
// with the align/eat/clip/consensus collaborators that are out of
// scope for this package.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/briskmesh/zipper/types"
	"github.com/briskmesh/zipper/zipper"
)

// ResolutionParameters mirrors the table init_resolution_parameters
// populates: the scale of the system (ZipperResolution) and every
// per-subsystem factor derived from it.
type ResolutionParameters struct {
	ZipperResolution float64 `yaml:"zipper_resolution"`

	MaxEdgeLengthFactor float64 `yaml:"max_edge_length_factor"`
	FillEdgeLengthFactor float64 `yaml:"fill_edge_length_factor"`

	ConfEdgeCountFactor float64 `yaml:"conf_edge_count_factor"`
	ConfEdgeZero        float64 `yaml:"conf_edge_zero"`
	ConfAngle           float64 `yaml:"conf_angle"`
	ConfExponent        float64 `yaml:"conf_exponent"`

	AlignNearDistFactor float64 `yaml:"align_near_dist_factor"`
	AlignNearCos        float64 `yaml:"align_near_cos"`

	EatNearDistFactor float64 `yaml:"eat_near_dist_factor"`
	EatNearCos        float64 `yaml:"eat_near_cos"`
	EatStartIters     int     `yaml:"eat_start_iters"`
	EatStartFactor    float64 `yaml:"eat_start_factor"`

	ClipNearDistFactor     float64 `yaml:"clip_near_dist_factor"`
	ClipNearCos            float64 `yaml:"clip_near_cos"`
	ClipBoundaryDistFactor float64 `yaml:"clip_boundary_dist_factor"`
	ClipBoundaryCos        float64 `yaml:"clip_boundary_cos"`

	ConsensusPositionDistFactor float64 `yaml:"consensus_position_dist_factor"`
	ConsensusNormalDistFactor   float64 `yaml:"consensus_normal_dist_factor"`
	ConsensusJitterDistFactor   float64 `yaml:"consensus_jitter_dist_factor"`

	RangeDataSigmaFactor        float64 `yaml:"range_data_sigma_factor"`
	RangeDataMinIntensity       float64 `yaml:"range_data_min_intensity"`
	RangeDataHorizontalErode    int     `yaml:"range_data_horizontal_erode"`
}

// Default returns the table init_resolution_parameters builds.
func Default() ResolutionParameters {
	return ResolutionParameters{
		ZipperResolution: zipper.DefaultResolution,

		MaxEdgeLengthFactor:  zipper.DefaultMaxEdgeLengthFactor,
		FillEdgeLengthFactor: 2.0,

		ConfEdgeCountFactor: 1.0,
		ConfEdgeZero:        0,
		ConfAngle:           0,
		ConfExponent:        1.0,

		AlignNearDistFactor: 2.0,
		AlignNearCos:        0.3,

		EatNearDistFactor: 2.0,
		EatNearCos:        -0.5,
		EatStartIters:     2,
		EatStartFactor:    4.0,

		ClipNearDistFactor:     2.0,
		ClipNearCos:            0.3,
		ClipBoundaryDistFactor: 4.0,
		ClipBoundaryCos:        0.3,

		ConsensusPositionDistFactor: 1.0,
		ConsensusNormalDistFactor:   3.0,
		ConsensusJitterDistFactor:   0.01,

		RangeDataSigmaFactor:     4.0,
		RangeDataMinIntensity:    0.05,
		RangeDataHorizontalErode: 1,
	}
}

// Load reads a YAML resolution-parameter file. Any field absent from
// the file keeps its Default() value, so a config file only needs to
// override what it changes.
func Load(path string) (ResolutionParameters, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return p, nil
}

// Save writes p as YAML to path.
func Save(path string, p ResolutionParameters) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: encoding resolution parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// EdgeLengthMax is the only derived quantity the zippering core reads:
// MAX_EDGE_LENGTH_FACTOR * ZIPPER_RESOLUTION * level_to_inc(level).
func (p ResolutionParameters) EdgeLengthMax(level types.Level) float64 {
	inc, err := level.Inc()
	if err != nil {
		inc = 1
	}
	return p.MaxEdgeLengthFactor * p.ZipperResolution * float64(inc)
}

// ZipperConfig adapts p into the zipper package's own Config, so
// callers don't need to duplicate the edge-length-max formula.
func (p ResolutionParameters) ZipperConfig(level types.Level) zipper.Config {
	cfg := zipper.DefaultConfig(level)
	cfg.Resolution = p.ZipperResolution
	cfg.MaxEdgeLengthFactor = p.MaxEdgeLengthFactor
	return cfg
}
