package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briskmesh/zipper/types"
)

func TestDefaultMatchesReferenceTable(t *testing.T) {
	p := Default()
	require.Equal(t, 0.0005, p.ZipperResolution)
	require.Equal(t, 4.0, p.MaxEdgeLengthFactor)
	require.Equal(t, 2.0, p.FillEdgeLengthFactor)
	require.Equal(t, -0.5, p.EatNearCos)
	require.Equal(t, 2, p.EatStartIters)
}

func TestEdgeLengthMaxScalesWithLevel(t *testing.T) {
	p := Default()
	fine := p.EdgeLengthMax(types.LevelFinest)
	coarse := p.EdgeLengthMax(types.LevelCoarsest)
	require.Less(t, fine, coarse)
	require.Equal(t, p.MaxEdgeLengthFactor*p.ZipperResolution, fine)
}

func TestZipperConfigCarriesResolutionFields(t *testing.T) {
	p := Default()
	p.ZipperResolution = 0.01
	p.MaxEdgeLengthFactor = 8.0

	cfg := p.ZipperConfig(types.LevelFinest)
	require.Equal(t, 0.01, cfg.Resolution)
	require.Equal(t, 8.0, cfg.MaxEdgeLengthFactor)
	require.Equal(t, types.LevelFinest, cfg.Level)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := Default()
	p.ZipperResolution = 0.002
	p.ClipBoundaryCos = 0.42

	path := filepath.Join(t.TempDir(), "resolution.yaml")
	require.NoError(t, Save(path, p))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, p, loaded)
}

func TestLoadOverlaysOnlySpecifiedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zipper_resolution: 0.01\n"), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.01, loaded.ZipperResolution)
	require.Equal(t, Default().MaxEdgeLengthFactor, loaded.MaxEdgeLengthFactor,
		"fields absent from the file should keep their Default() value")
}
