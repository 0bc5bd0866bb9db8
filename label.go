package chamfer

import "fmt"

// DilateLabels2D grows every labeled (nonzero) region of labels outward
// by up to radius cells, measured with mask m. Labeled cells seed the
// distance field at 0 with themselves as owner; unlabeled cells adopt
// the owner of whichever neighbor offers the smallest distance, and
// candidates at or beyond (radius+0.5)×normalization are rejected,
// leaving the cell background. Regions never merge across gaps wider
// than the radius, and a cell can only be claimed by its nearest label:
// relaxation keeps the global minimum distance regardless of which
// label offered it.
//
// Returns the grown owner-label grid and the distance field. Cells left
// unreached keep owner 0 and the distance sentinel. radius is in
// normalized units; a negative radius is a configuration error.
//
// Ownership ties are scan-order dependent: the last sweep direction to
// find a strictly smaller distance wins. The result is reproducible for
// identical input and mask, but the tie-break itself is arbitrary.
func DilateLabels2D[T Value, L Scalar](labels *Grid2D[L], m *Mask2D, radius float64, opts ...Option) (*Grid2D[L], *Grid2D[T], error) {
	if err := checkGrid2D(labels); err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if radius < 0 {
		return nil, nil, fmt.Errorf("chamfer: negative dilation radius %g", radius)
	}
	cfg := applyOptions(opts)

	maxRaw := (radius + 0.5) * float64(m.norm)
	owners, dist := propagateLabels2D[T](labels, m, cfg, func(cand T) bool {
		return float64(cand) < maxRaw
	})
	Logger().Debug("chamfer: label dilation",
		"width", labels.width, "height", labels.height, "radius", radius)
	return owners, dist, nil
}

// InfluenceZones2D assigns every cell of the grid to its nearest
// labeled region under mask m, producing a discrete Voronoi-like
// tessellation. Unbounded: after the call every cell carries a nonzero
// owner. A grid without a single labeled cell returns ErrNoSeeds.
//
// The tie-break for equidistant labels is the same scan-order-dependent
// rule as in DilateLabels2D.
func InfluenceZones2D[T Value, L Scalar](labels *Grid2D[L], m *Mask2D, opts ...Option) (*Grid2D[L], *Grid2D[T], error) {
	if err := checkGrid2D(labels); err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if !anyNonzero(labels.data) {
		return nil, nil, ErrNoSeeds
	}
	cfg := applyOptions(opts)

	owners, dist := propagateLabels2D[T](labels, m, cfg, nil)
	Logger().Debug("chamfer: influence zones",
		"width", labels.width, "height", labels.height)
	return owners, dist, nil
}

// propagateLabels2D is the shared label policy: seeds at labeled cells,
// owner adoption on every strict distance decrease, optional cutoff.
func propagateLabels2D[T Value, L Scalar](labels *Grid2D[L], m *Mask2D, cfg config, accept func(T) bool) (*Grid2D[L], *Grid2D[T]) {
	sent := Sentinel[T]()
	owners := labels.Clone()
	dist := NewGrid2D[T](labels.width, labels.height)
	for i, lab := range labels.data {
		if lab == 0 {
			dist.data[i] = sent
		}
	}
	s := &sweeper2D[T]{
		dist:     dist,
		mask:     m,
		sent:     sent,
		accept:   accept,
		adopted:  func(i, j int) { owners.data[i] = owners.data[j] },
		observer: cfg.observer,
	}
	s.run()
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	return owners, dist
}

// DilateLabels3D is the 3D analogue of DilateLabels2D.
func DilateLabels3D[T Value, L Scalar](labels *Grid3D[L], m *Mask3D, radius float64, opts ...Option) (*Grid3D[L], *Grid3D[T], error) {
	if err := checkGrid3D(labels); err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if radius < 0 {
		return nil, nil, fmt.Errorf("chamfer: negative dilation radius %g", radius)
	}
	cfg := applyOptions(opts)

	maxRaw := (radius + 0.5) * float64(m.norm)
	owners, dist := propagateLabels3D[T](labels, m, cfg, func(cand T) bool {
		return float64(cand) < maxRaw
	})
	Logger().Debug("chamfer: label dilation",
		"width", labels.width, "height", labels.height, "depth", labels.depth, "radius", radius)
	return owners, dist, nil
}

// InfluenceZones3D is the 3D analogue of InfluenceZones2D.
func InfluenceZones3D[T Value, L Scalar](labels *Grid3D[L], m *Mask3D, opts ...Option) (*Grid3D[L], *Grid3D[T], error) {
	if err := checkGrid3D(labels); err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if !anyNonzero(labels.data) {
		return nil, nil, ErrNoSeeds
	}
	cfg := applyOptions(opts)

	owners, dist := propagateLabels3D[T](labels, m, cfg, nil)
	Logger().Debug("chamfer: influence zones",
		"width", labels.width, "height", labels.height, "depth", labels.depth)
	return owners, dist, nil
}

func propagateLabels3D[T Value, L Scalar](labels *Grid3D[L], m *Mask3D, cfg config, accept func(T) bool) (*Grid3D[L], *Grid3D[T]) {
	sent := Sentinel[T]()
	owners := labels.Clone()
	dist := NewGrid3D[T](labels.width, labels.height, labels.depth)
	for i, lab := range labels.data {
		if lab == 0 {
			dist.data[i] = sent
		}
	}
	s := &sweeper3D[T]{
		dist:     dist,
		mask:     m,
		sent:     sent,
		accept:   accept,
		adopted:  func(i, j int) { owners.data[i] = owners.data[j] },
		observer: cfg.observer,
	}
	s.run()
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	return owners, dist
}

// anyNonzero reports whether the slice holds at least one nonzero
// value.
func anyNonzero[T Scalar](data []T) bool {
	for _, v := range data {
		if v != 0 {
			return true
		}
	}
	return false
}
