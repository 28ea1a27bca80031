package types

// Point represents a position in a 2D parametric plane.
//
// The splitter and the algorithm/ packages work in the local 2D basis
// of a single clipped triangle's plane (built by the zipper package's
// projectPolygon), not in the 3D world/mesh-local space that Vector3
// addresses. Point is that 2D coordinate type.
//
// Example:
//
//	p := types.Point{X: 1.5, Y: 2.3}
//	q := types.Point{X: 0.0, Y: 0.0}
type Point struct {
	X float64 // First in-plane coordinate
	Y float64 // Second in-plane coordinate
}
