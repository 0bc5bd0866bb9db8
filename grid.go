package chamfer

// Scalar is the set of element types a grid can hold: 8/16/32-bit
// integer labels and masks, or 32-bit float samples. The engine treats
// any nonzero value as "foreground"/"labeled" and zero as
// "background"/"unlabeled" unless a policy documents otherwise.
type Scalar interface {
	uint8 | uint16 | uint32 | float32
}

// Grid2D is a dense row-major 2D grid. The cell at (x, y) lives at
// index y*Width()+x; x varies fastest.
type Grid2D[T Scalar] struct {
	width  int
	height int
	data   []T
}

// NewGrid2D creates a zero-filled grid with the given dimensions.
func NewGrid2D[T Scalar](width, height int) *Grid2D[T] {
	return &Grid2D[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

// Width returns the grid extent along x.
func (g *Grid2D[T]) Width() int { return g.width }

// Height returns the grid extent along y.
func (g *Grid2D[T]) Height() int { return g.height }

// Data returns the raw backing slice in row-major order.
func (g *Grid2D[T]) Data() []T { return g.data }

// Index returns the backing-slice index of (x, y). No bounds check.
func (g *Grid2D[T]) Index(x, y int) int { return y*g.width + x }

// At returns the value at (x, y), or zero when out of bounds.
func (g *Grid2D[T]) At(x, y int) T {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		var zero T
		return zero
	}
	return g.data[y*g.width+x]
}

// Set stores v at (x, y). Out-of-bounds coordinates are ignored.
func (g *Grid2D[T]) Set(x, y int, v T) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.width+x] = v
}

// Fill sets every cell to v.
func (g *Grid2D[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid2D[T]) Clone() *Grid2D[T] {
	c := &Grid2D[T]{width: g.width, height: g.height, data: make([]T, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Grid3D is a dense 3D grid. The cell at (x, y, z) lives at index
// (z*Height()+y)*Width()+x; x varies fastest, z slowest.
type Grid3D[T Scalar] struct {
	width  int
	height int
	depth  int
	data   []T
}

// NewGrid3D creates a zero-filled grid with the given dimensions.
func NewGrid3D[T Scalar](width, height, depth int) *Grid3D[T] {
	return &Grid3D[T]{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]T, width*height*depth),
	}
}

// Width returns the grid extent along x.
func (g *Grid3D[T]) Width() int { return g.width }

// Height returns the grid extent along y.
func (g *Grid3D[T]) Height() int { return g.height }

// Depth returns the grid extent along z.
func (g *Grid3D[T]) Depth() int { return g.depth }

// Data returns the raw backing slice.
func (g *Grid3D[T]) Data() []T { return g.data }

// Index returns the backing-slice index of (x, y, z). No bounds check.
func (g *Grid3D[T]) Index(x, y, z int) int {
	return (z*g.height+y)*g.width + x
}

// At returns the value at (x, y, z), or zero when out of bounds.
func (g *Grid3D[T]) At(x, y, z int) T {
	if x < 0 || x >= g.width || y < 0 || y >= g.height || z < 0 || z >= g.depth {
		var zero T
		return zero
	}
	return g.data[(z*g.height+y)*g.width+x]
}

// Set stores v at (x, y, z). Out-of-bounds coordinates are ignored.
func (g *Grid3D[T]) Set(x, y, z int, v T) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height || z < 0 || z >= g.depth {
		return
	}
	g.data[(z*g.height+y)*g.width+x] = v
}

// Fill sets every cell to v.
func (g *Grid3D[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid3D[T]) Clone() *Grid3D[T] {
	c := &Grid3D[T]{width: g.width, height: g.height, depth: g.depth, data: make([]T, len(g.data))}
	copy(c.data, g.data)
	return c
}

// slice returns a Grid2D view of the z-th slice, sharing the backing
// array. Writes through the view mutate the stack.
func (g *Grid3D[T]) slice(z int) *Grid2D[T] {
	n := g.width * g.height
	return &Grid2D[T]{width: g.width, height: g.height, data: g.data[z*n : (z+1)*n]}
}

// checkGrid2D rejects nil or zero-sized grids before relaxation.
func checkGrid2D[T Scalar](g *Grid2D[T]) error {
	if g == nil || len(g.data) == 0 {
		return ErrEmptyGrid
	}
	return nil
}

// checkGrid3D rejects nil or zero-sized grids before relaxation.
func checkGrid3D[T Scalar](g *Grid3D[T]) error {
	if g == nil || len(g.data) == 0 {
		return ErrEmptyGrid
	}
	return nil
}
