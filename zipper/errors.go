package zipper

import "errors"

var (
	// ErrUnpairedCut means a pierced triangle's candidate boundary has
	// no unique inward/outward cut pair; the triangle is left unclipped.
	ErrUnpairedCut = errors.New("zipper: pierced triangle has no unique inward/outward cut pair")

	// ErrSelfIntersectingPolygon means the assembled clip polygon failed
	// the splitter's validation; the triangle is left unclipped.
	ErrSelfIntersectingPolygon = errors.New("zipper: retriangulation polygon self-intersects")

	// ErrInteriorChainBroken means the interior-chain hop could not
	// reach the exit cut's pierced triangle.
	ErrInteriorChainBroken = errors.New("zipper: interior chain did not reach the exit triangle")
)
