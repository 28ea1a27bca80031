package mesh

import "errors"

var (
	// ErrInvalidVertexID indicates a vertex ID is out of range or negative.
	ErrInvalidVertexID = errors.New("zipper: invalid vertex id")

	// ErrInvalidTriangleIndex indicates a triangle index is out of range.
	ErrInvalidTriangleIndex = errors.New("zipper: invalid triangle index")

	// ErrDegenerateTriangle indicates triangle vertices are collinear or
	// otherwise produce a zero-area support plane.
	ErrDegenerateTriangle = errors.New("zipper: degenerate triangle (zero area)")

	// ErrEdgeTooLong indicates a triangle edge exceeds the mesh's
	// configured maximum edge length for its level of detail.
	ErrEdgeTooLong = errors.New("zipper: triangle edge exceeds max edge length")

	// ErrNonManifoldEdge indicates a triangle edge is already shared by
	// two triangles; a third triangle cannot be attached to it.
	ErrNonManifoldEdge = errors.New("zipper: edge already shared by two triangles")
)
