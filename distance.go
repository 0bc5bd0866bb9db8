package chamfer

import (
	"fmt"

	"github.com/gogrid/chamfer/internal/parallel"
)

// DistanceTransform2D computes, for every foreground cell of bin
// (nonzero value), the chamfer distance to the nearest background cell.
// Background cells are seeded at 0; foreground cells start at the
// sentinel and are relaxed by two sweeps.
//
// An all-background input yields an all-zero field; an all-foreground
// input yields an all-sentinel field. Distances beyond the encoding's
// capacity clamp silently to the sentinel.
func DistanceTransform2D[T Value, B Scalar](bin *Grid2D[B], m *Mask2D, opts ...Option) (*Grid2D[T], error) {
	if err := checkGrid2D(bin); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	dist := NewGrid2D[T](bin.width, bin.height)
	distanceTransform2DInto(dist, bin, m, cfg)
	Logger().Debug("chamfer: distance transform",
		"dims", "2d", "width", bin.width, "height", bin.height,
		"offsets", len(m.forward)*2, "normalized", cfg.normalize)
	return dist, nil
}

// distanceTransform2DInto runs the transform into a pre-allocated
// field. Shared by DistanceTransform2D and per-slice dispatch.
func distanceTransform2DInto[T Value, B Scalar](dist *Grid2D[T], bin *Grid2D[B], m *Mask2D, cfg config) {
	sent := Sentinel[T]()
	src := bin.data
	for i := range dist.data {
		if src[i] != 0 {
			dist.data[i] = sent
		} else {
			dist.data[i] = 0
		}
	}
	s := &sweeper2D[T]{dist: dist, mask: m, sent: sent, observer: cfg.observer}
	s.run()
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
}

// DistanceTransform3D is the 3D analogue of DistanceTransform2D.
func DistanceTransform3D[T Value, B Scalar](bin *Grid3D[B], m *Mask3D, opts ...Option) (*Grid3D[T], error) {
	if err := checkGrid3D(bin); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	sent := Sentinel[T]()
	dist := NewGrid3D[T](bin.width, bin.height, bin.depth)
	src := bin.data
	for i := range dist.data {
		if src[i] != 0 {
			dist.data[i] = sent
		}
	}
	s := &sweeper3D[T]{dist: dist, mask: m, sent: sent, observer: cfg.observer}
	s.run()
	if cfg.normalize {
		normalizeSlice(dist.data, m.norm)
	}
	Logger().Debug("chamfer: distance transform",
		"dims", "3d", "width", bin.width, "height", bin.height, "depth", bin.depth,
		"offsets", len(m.forward)*2, "normalized", cfg.normalize)
	return dist, nil
}

// DistanceTransformSlices computes an independent 2D distance transform
// for every z-slice of a 3D stack, treating slices as unrelated images.
// Slices are dispatched over a worker pool (WithWorkers; default
// GOMAXPROCS). Each slice owns a disjoint region of the output, and
// within one slice the two sweeps stay sequential, so the result is
// bit-identical to transforming each slice alone.
func DistanceTransformSlices[T Value, B Scalar](stack *Grid3D[B], m *Mask2D, opts ...Option) (*Grid3D[T], error) {
	if err := checkGrid3D(stack); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidMask)
	}
	cfg := applyOptions(opts)

	out := NewGrid3D[T](stack.width, stack.height, stack.depth)
	jobs := make([]func(), stack.depth)
	for z := range jobs {
		src := stack.slice(z)
		dst := out.slice(z)
		jobs[z] = func() {
			distanceTransform2DInto(dst, src, m, cfg)
		}
	}

	pool := parallel.New(cfg.workers)
	defer pool.Close()
	pool.ExecuteAll(jobs)

	Logger().Debug("chamfer: per-slice distance transform",
		"width", stack.width, "height", stack.height, "slices", stack.depth,
		"workers", cfg.workers)
	return out, nil
}
