package chamfer

// sweeper2D is the two-pass chamfer relaxation engine for one 2D
// distance field. The field must arrive initialized: seed cells at 0,
// everything else at the sentinel. One forward raster sweep relaxes
// each cell against the mask's forward subset, one backward sweep
// against the point-reflected subset.
//
// Two passes suffice because chamfer masks decompose any shortest
// weighted path into segments monotone in one sweep direction. For
// disconnected or concave seed configurations where that decomposition
// fails, the engine accepts the two-pass approximation rather than
// iterating to a fixed point.
//
// Policies customize the sweep through optional hooks; a nil hook is
// skipped, keeping the plain distance transform on the fast path.
type sweeper2D[T Value] struct {
	dist *Grid2D[T]
	mask *Mask2D
	sent T

	// domain reports whether index i participates in relaxation at
	// all. Cells outside the domain are treated as out of bounds both
	// as relaxation targets and as neighbors. nil means the whole grid.
	domain func(i int) bool

	// candidate produces the relaxation value offered to cell i by
	// neighbor j across an offset of weight w. nil means saturating
	// dist[j] + w.
	candidate func(i, j int, w T) T

	// accept vetoes an improving candidate before it is stored
	// (bounded dilation cutoff). nil accepts everything.
	accept func(cand T) bool

	// adopted records that cell i took its new value from neighbor j.
	// Called only on strict decrease, after the store, so distance and
	// ownership always change together.
	adopted func(i, j int)

	observer Observer
}

// run executes the forward then the backward sweep, notifying the
// observer after each.
func (s *sweeper2D[T]) run() {
	s.forwardSweep()
	s.notify(SweepForward)
	s.backwardSweep()
	s.notify(SweepBackward)
}

func (s *sweeper2D[T]) notify(d SweepDirection) {
	if s.observer != nil {
		s.observer(d)
	}
}

func (s *sweeper2D[T]) forwardSweep() {
	w, h := s.dist.width, s.dist.height
	offs := s.mask.forward
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			s.relax(x, y, row+x, offs)
		}
	}
}

func (s *sweeper2D[T]) backwardSweep() {
	w, h := s.dist.width, s.dist.height
	offs := s.mask.backward
	for y := h - 1; y >= 0; y-- {
		row := y * w
		for x := w - 1; x >= 0; x-- {
			s.relax(x, y, row+x, offs)
		}
	}
}

// relax updates cell i = (x, y) to the minimum candidate offered by its
// sweep-side neighbors. Seed cells (value 0) are never relaxed;
// positive weights guarantee no cell can be driven to 0.
func (s *sweeper2D[T]) relax(x, y, i int, offs []Offset2D) {
	if s.domain != nil && !s.domain(i) {
		return
	}
	d := s.dist.data
	cur := d[i]
	if cur == 0 {
		return
	}
	w, h := s.dist.width, s.dist.height
	best := cur
	src := -1
	for _, o := range offs {
		nx, ny := x+o.X, y+o.Y
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		j := ny*w + nx
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
