package chamfer

// sweeper3D is the 3D counterpart of sweeper2D: the same two-pass
// relaxation with z as the slowest raster axis. See sweeper2D for the
// hook contract and the two-pass approximation note.
type sweeper3D[T Value] struct {
	dist *Grid3D[T]
	mask *Mask3D
	sent T

	domain    func(i int) bool
	candidate func(i, j int, w T) T
	accept    func(cand T) bool
	adopted   func(i, j int)

	observer Observer
}

func (s *sweeper3D[T]) run() {
	s.forwardSweep()
	s.notify(SweepForward)
	s.backwardSweep()
	s.notify(SweepBackward)
}

func (s *sweeper3D[T]) notify(d SweepDirection) {
	if s.observer != nil {
		s.observer(d)
	}
}

func (s *sweeper3D[T]) forwardSweep() {
	w, h, dp := s.dist.width, s.dist.height, s.dist.depth
	offs := s.mask.forward
	for z := 0; z < dp; z++ {
		for y := 0; y < h; y++ {
			row := (z*h + y) * w
			for x := 0; x < w; x++ {
				s.relax(x, y, z, row+x, offs)
			}
		}
	}
}

func (s *sweeper3D[T]) backwardSweep() {
	w, h, dp := s.dist.width, s.dist.height, s.dist.depth
	offs := s.mask.backward
	for z := dp - 1; z >= 0; z-- {
		for y := h - 1; y >= 0; y-- {
			row := (z*h + y) * w
			for x := w - 1; x >= 0; x-- {
				s.relax(x, y, z, row+x, offs)
			}
		}
	}
}

func (s *sweeper3D[T]) relax(x, y, z, i int, offs []Offset3D) {
	if s.domain != nil && !s.domain(i) {
		return
	}
	d := s.dist.data
	cur := d[i]
	if cur == 0 {
		return
	}
	w, h, dp := s.dist.width, s.dist.height, s.dist.depth
	best := cur
	src := -1
	for _, o := range offs {
		nx, ny, nz := x+o.X, y+o.Y, z+o.Z
		if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= dp {
			continue
		}
		j := (nz*h+ny)*w + nx
		if s.domain != nil && !s.domain(j) {
			continue
		}
		var cand T
		if s.candidate != nil {
			cand = s.candidate(i, j, T(o.Weight))
		} else {
			cand = satAdd(d[j], T(o.Weight), s.sent)
		}
		if cand < best {
			best = cand
			src = j
		}
	}
	if src < 0 {
		return
	}
	if s.accept != nil && !s.accept(best) {
		return
	}
	d[i] = best
	if s.adopted != nil {
		s.adopted(i, src)
	}
}
