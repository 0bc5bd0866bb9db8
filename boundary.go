package chamfer

import "fmt"

// BoundaryDistance2D computes, for every cell, the chamfer distance to
// the nearest cell carrying a different value. Background (zero) counts
// as a region of its own, so labeled cells measure their distance to
// the region border and background cells measure theirs to the nearest
// region. A neighbor across a label change contributes its offset
// weight alone, as if the border passed between the two cells.
//
// There are no seed cells: every cell starts at the sentinel and border
// cells acquire their offset weight during the first sweep. A grid with
// a single uniform value has no boundary and comes back all-sentinel.
func BoundaryDistance2D[T Value, L Scalar](labels *Grid2D[L], m *Mask2D, opts ...Option) (*Grid2D[T], error) {
	if err := checkGrid2D(labels); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	dist := boundaryDistance2DRaw[T](labels, m, cfg)
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: boundary distance",
		"width", labels.width, "height", labels.height)
	return dist, nil
}

// boundaryDistance2DRaw propagates in raw mask units; erosion
// thresholds against raw units before any normalization.
func boundaryDistance2DRaw[T Value, L Scalar](labels *Grid2D[L], m *Mask2D, cfg config) *Grid2D[T] {
	sent := Sentinel[T]()
	dist := NewGrid2D[T](labels.width, labels.height)
	dist.Fill(sent)
	lab := labels.data
	s := &sweeper2D[T]{
		dist: dist,
		mask: m,
		sent: sent,
		candidate: func(i, j int, w T) T {
			if lab[i] != lab[j] {
				return w
			}
			return satAdd(dist.data[j], w, sent)
		},
		observer: cfg.observer,
	}
	s.run()
	return dist
}

// ErodeLabels2D shrinks every labeled region by radius cells: labeled
// cells closer than (radius+0.5)×normalization to a differently-valued
// cell are cleared to background. The complement of DilateLabels2D;
// thin structures narrower than 2×radius vanish entirely.
//
// Returns the eroded owner-label grid and the boundary-distance field.
// radius is in normalized units; a negative radius is a configuration
// error.
func ErodeLabels2D[T Value, L Scalar](labels *Grid2D[L], m *Mask2D, radius float64, opts ...Option) (*Grid2D[L], *Grid2D[T], error) {
	if err := checkGrid2D(labels); err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if radius < 0 {
		return nil, nil, fmt.Errorf("chamfer: negative erosion radius %g", radius)
	}
	cfg := applyOptions(opts)

	dist := boundaryDistance2DRaw[T](labels, m, cfg)
	owners := labels.Clone()
	thr := (radius + 0.5) * float64(m.norm)
	for i, lab := range owners.data {
		if lab != 0 && float64(dist.data[i]) < thr {
			owners.data[i] = 0
		}
	}
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: label erosion",
		"width", labels.width, "height", labels.height, "radius", radius)
	return owners, dist, nil
}

// BoundaryDistance3D is the 3D analogue of BoundaryDistance2D.
func BoundaryDistance3D[T Value, L Scalar](labels *Grid3D[L], m *Mask3D, opts ...Option) (*Grid3D[T], error) {
	if err := checkGrid3D(labels); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	dist := boundaryDistance3DRaw[T](labels, m, cfg)
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: boundary distance",
		"width", labels.width, "height", labels.height, "depth", labels.depth)
	return dist, nil
}

func boundaryDistance3DRaw[T Value, L Scalar](labels *Grid3D[L], m *Mask3D, cfg config) *Grid3D[T] {
	sent := Sentinel[T]()
	dist := NewGrid3D[T](labels.width, labels.height, labels.depth)
	dist.Fill(sent)
	lab := labels.data
	s := &sweeper3D[T]{
		dist: dist,
		mask: m,
		sent: sent,
		candidate: func(i, j int, w T) T {
			if lab[i] != lab[j] {
				return w
			}
			return satAdd(dist.data[j], w, sent)
		},
		observer: cfg.observer,
	}
	s.run()
	return dist
}

// ErodeLabels3D is the 3D analogue of ErodeLabels2D.
func ErodeLabels3D[T Value, L Scalar](labels *Grid3D[L], m *Mask3D, radius float64, opts ...Option) (*Grid3D[L], *Grid3D[T], error) {
	if err := checkGrid3D(labels); err != nil {
		return nil, nil, err
	}
	if m == nil {
		return nil, nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	if radius < 0 {
		return nil, nil, fmt.Errorf("chamfer: negative erosion radius %g", radius)
	}
	cfg := applyOptions(opts)

	dist := boundaryDistance3DRaw[T](labels, m, cfg)
	owners := labels.Clone()
	thr := (radius + 0.5) * float64(m.norm)
	for i, lab := range owners.data {
		if lab != 0 && float64(dist.data[i]) < thr {
			owners.data[i] = 0
		}
	}
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: label erosion",
		"width", labels.width, "height", labels.height, "depth", labels.depth, "radius", radius)
	return owners, dist, nil
}
