package chamfer

import "fmt"

// GeodesicDistance2D computes, for every cell of the binary mask grid,
// the shortest weighted path distance to a marker cell, with paths
// confined to the mask. Marker cells (nonzero, intersected with the
// mask) seed at 0. Cells outside the mask never participate: they are
// treated as out of bounds during relaxation and keep the sentinel,
// even when they sit geometrically closer to a marker than any
// geodesic path.
//
// marker and mask must have identical extents (ErrShapeMismatch).
// Markers outside the mask are ignored; if no marker cell lies inside
// the mask, GeodesicDistance2D returns ErrNoSeeds.
func GeodesicDistance2D[T Value, M Scalar, B Scalar](marker *Grid2D[M], mask *Grid2D[B], m *Mask2D, opts ...Option) (*Grid2D[T], error) {
	if err := checkGrid2D(marker); err != nil {
		return nil, err
	}
	if err := checkGrid2D(mask); err != nil {
		return nil, err
	}
	if marker.width != mask.width || marker.height != mask.height {
		return nil, fmt.Errorf("%w: marker %dx%d, mask %dx%d",
			ErrShapeMismatch, marker.width, marker.height, mask.width, mask.height)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	sent := Sentinel[T]()
	dist := NewGrid2D[T](mask.width, mask.height)
	dist.Fill(sent)
	seeds := 0
	for i := range dist.data {
		if marker.data[i] != 0 && mask.data[i] != 0 {
			dist.data[i] = 0
			seeds++
		}
	}
	if seeds == 0 {
		return nil, ErrNoSeeds
	}

	inMask := mask.data
	s := &sweeper2D[T]{
		dist:     dist,
		mask:     m,
		sent:     sent,
		domain:   func(i int) bool { return inMask[i] != 0 },
		observer: cfg.observer,
	}
	s.run()
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: geodesic distance",
		"width", mask.width, "height", mask.height, "seeds", seeds)
	return dist, nil
}

// GeodesicDistance3D is the 3D analogue of GeodesicDistance2D.
func GeodesicDistance3D[T Value, M Scalar, B Scalar](marker *Grid3D[M], mask *Grid3D[B], m *Mask3D, opts ...Option) (*Grid3D[T], error) {
	if err := checkGrid3D(marker); err != nil {
		return nil, err
	}
	if err := checkGrid3D(mask); err != nil {
		return nil, err
	}
	if marker.width != mask.width || marker.height != mask.height || marker.depth != mask.depth {
		return nil, fmt.Errorf("%w: marker %dx%dx%d, mask %dx%dx%d",
			ErrShapeMismatch, marker.width, marker.height, marker.depth,
			mask.width, mask.height, mask.depth)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	sent := Sentinel[T]()
	dist := NewGrid3D[T](mask.width, mask.height, mask.depth)
	dist.Fill(sent)
	seeds := 0
	for i := range dist.data {
		if marker.data[i] != 0 && mask.data[i] != 0 {
			dist.data[i] = 0
			seeds++
		}
	}
	if seeds == 0 {
		return nil, ErrNoSeeds
	}

	inMask := mask.data
	s := &sweeper3D[T]{
		dist:     dist,
		mask:     m,
		sent:     sent,
		domain:   func(i int) bool { return inMask[i] != 0 },
		observer: cfg.observer,
	}
	s.run()
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: geodesic distance",
		"width", mask.width, "height", mask.height, "depth", mask.depth, "seeds", seeds)
	return dist, nil
}

// RegionMax2D returns the maximum finite distance per nonzero label:
// the building block for geodesic-diameter estimation, where the caller
// supplies an extremal-point marker and reads back the largest geodesic
// distance inside each region. Labels whose every cell is unreached do
// not appear in the result.
//
// dist and labels must have identical extents.
func RegionMax2D[T Value, L Scalar](dist *Grid2D[T], labels *Grid2D[L]) (map[L]T, error) {
	if err := checkGrid2D(dist); err != nil {
		return nil, err
	}
	if err := checkGrid2D(labels); err != nil {
		return nil, err
	}
	if dist.width != labels.width || dist.height != labels.height {
		return nil, fmt.Errorf("%w: distance %dx%d, labels %dx%d",
			ErrShapeMismatch, dist.width, dist.height, labels.width, labels.height)
	}
	return regionMax(dist.data, labels.data), nil
}

// RegionMax3D is the 3D analogue of RegionMax2D.
func RegionMax3D[T Value, L Scalar](dist *Grid3D[T], labels *Grid3D[L]) (map[L]T, error) {
	if err := checkGrid3D(dist); err != nil {
		return nil, err
	}
	if err := checkGrid3D(labels); err != nil {
		return nil, err
	}
	if dist.width != labels.width || dist.height != labels.height || dist.depth != labels.depth {
		return nil, fmt.Errorf("%w: distance %dx%dx%d, labels %dx%dx%d",
			ErrShapeMismatch, dist.width, dist.height, dist.depth,
			labels.width, labels.height, labels.depth)
	}
	return regionMax(dist.data, labels.data), nil
}

func regionMax[T Value, L Scalar](dist []T, labels []L) map[L]T {
	sent := Sentinel[T]()
	out := make(map[L]T)
	for i, lab := range labels {
		if lab == 0 {
			continue
		}
		d := dist[i]
		if d == sent {
			continue
		}
		if cur, ok := out[lab]; !ok || d > cur {
			out[lab] = d
		}
	}
	return out
}
