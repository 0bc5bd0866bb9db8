package chamfer

import "errors"

// Errors reported before any relaxation starts. A call either fails
// with one of these (possibly wrapped with detail) or runs both sweeps
// to completion; there are no partial-failure states.
var (
	// ErrInvalidMask reports a chamfer mask that failed construction
	// validation: a non-positive weight, a duplicate or zero offset, a
	// neighborhood that is not symmetric under negation, or a mask
	// without a unit axis-aligned offset to normalize against.
	ErrInvalidMask = errors.New("chamfer: invalid mask")

	// ErrEmptyGrid reports a nil or zero-sized input grid.
	ErrEmptyGrid = errors.New("chamfer: empty grid")

	// ErrShapeMismatch reports paired grids of differing extents, such
	// as a geodesic marker and mask.
	ErrShapeMismatch = errors.New("chamfer: grid shapes differ")

	// ErrNoSeeds reports a propagation with no seed cells: an
	// influence-zone tessellation of an unlabeled grid, or a geodesic
	// map whose marker does not intersect its mask.
	ErrNoSeeds = errors.New("chamfer: no seed cells")
)
