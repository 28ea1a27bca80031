// Command zip-demo zippers two synthetic, crossing scans together and
// reports the cuts and retriangulation it produced.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/briskmesh/zipper/config"
	"github.com/briskmesh/zipper/intersections"
	"github.com/briskmesh/zipper/mesh"
	"github.com/briskmesh/zipper/scan"
	"github.com/briskmesh/zipper/types"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a resolution-parameter YAML file (optional)")
		verbose    = flag.Bool("verbose", false, "Log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	params := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading resolution parameters: %w", err)
		}
		params = loaded
	}

	cfg := params.ZipperConfig(types.LevelFinest)
	cfg.Logger = logger

	sc1 := buildFlatSquareScan()
	sc2 := buildTentScan()

	logger.Info("scans built",
		"mesh1_triangles", sc1.Mesh().NumTriangles(),
		"mesh2_triangles", sc2.Mesh().NumTriangles())

	if !intersections.MayIntersect(sc1, sc2, cfg.EdgeLengthMax()) {
		logger.Info("scans do not overlap, nothing to zipper")
		return nil
	}

	arena, err := intersections.IntersectMeshes(sc1, sc2, cfg)
	if err != nil {
		return fmt.Errorf("recording intersections: %w", err)
	}
	logger.Info("intersections recorded", "cuts", arena.Len())

	if err := intersections.FinishIntersectMeshes(sc1, sc2, arena, cfg); err != nil {
		return fmt.Errorf("finishing intersections: %w", err)
	}

	logger.Info("zippering complete",
		"mesh1_triangles", sc1.Mesh().NumTriangles(),
		"mesh1_vertices", sc1.Mesh().NumVertices(),
		"mesh2_triangles", sc2.Mesh().NumTriangles(),
		"mesh2_vertices", sc2.Mesh().NumVertices())
	return nil
}

// buildFlatSquareScan builds a two-triangle square lying in the z=0
// plane, centered on the origin.
func buildFlatSquareScan() *scan.Scan {
	m := mesh.NewMesh(types.MeshID(1), mesh.WithCellSize(5), mesh.WithLevel(types.LevelFinest))
	a := m.AddVertex(types.NewVector3(-2, -2, 0))
	b := m.AddVertex(types.NewVector3(2, -2, 0))
	c := m.AddVertex(types.NewVector3(2, 2, 0))
	d := m.AddVertex(types.NewVector3(-2, 2, 0))
	_, _ = m.AddTriangle(a, b, c, -1)
	_, _ = m.AddTriangle(a, c, d, -1)

	sc := scan.New(scan.IdentityTransform())
	_ = sc.SetLevel(types.LevelFinest, m)
	return sc
}

// buildTentScan builds a single triangle standing upright through the
// y=0 plane, piercing the flat square from buildFlatSquareScan.
func buildTentScan() *scan.Scan {
	m := mesh.NewMesh(types.MeshID(2), mesh.WithCellSize(5), mesh.WithLevel(types.LevelFinest))
	a := m.AddVertex(types.NewVector3(-1.5, 0, -1))
	b := m.AddVertex(types.NewVector3(1.5, 0, -1))
	c := m.AddVertex(types.NewVector3(0, 0, 1.5))
	_, _ = m.AddTriangle(a, b, c, -1)

	sc := scan.New(scan.IdentityTransform())
	_ = sc.SetLevel(types.LevelFinest, m)
	return sc
}
