package chamfer

import (
	"fmt"
	"slices"
)

// Offset2D is one weighted displacement of a 2D chamfer mask.
type Offset2D struct {
	X, Y   int
	Weight int
}

// Offset3D is one weighted displacement of a 3D chamfer mask.
type Offset3D struct {
	X, Y, Z int
	Weight  int
}

// Mask2D is an immutable catalogue of weighted offsets approximating
// Euclidean distance in 2D. The full neighborhood is symmetric under
// negation and partitioned into a forward subset (offsets earlier in
// raster order) and its point reflection, the backward subset.
//
// Masks are constructed once and shared read-only across any number of
// concurrent propagation calls.
type Mask2D struct {
	forward  []Offset2D
	backward []Offset2D
	norm     int
}

// NewMask2D builds a mask from the full symmetric offset set.
//
// Validation rejects: an empty set, the zero offset, duplicate offsets,
// non-positive weights, offsets whose negation is missing or carries a
// different weight, and sets without a unit axis-aligned offset (whose
// minimum weight becomes the normalization weight). All failures wrap
// [ErrInvalidMask].
func NewMask2D(offsets []Offset2D) (*Mask2D, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: no offsets", ErrInvalidMask)
	}
	seen := make(map[[2]int]int, len(offsets))
	for _, o := range offsets {
		if o.X == 0 && o.Y == 0 {
			return nil, fmt.Errorf("%w: zero offset", ErrInvalidMask)
		}
		if o.Weight <= 0 {
			return nil, fmt.Errorf("%w: weight %d at offset (%d,%d)", ErrInvalidMask, o.Weight, o.X, o.Y)
		}
		key := [2]int{o.X, o.Y}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate offset (%d,%d)", ErrInvalidMask, o.X, o.Y)
		}
		seen[key] = o.Weight
	}
	norm := 0
	for _, o := range offsets {
		w, ok := seen[[2]int{-o.X, -o.Y}]
		if !ok || w != o.Weight {
			return nil, fmt.Errorf("%w: offset (%d,%d) has no symmetric counterpart", ErrInvalidMask, o.X, o.Y)
		}
		if abs(o.X)+abs(o.Y) == 1 && (norm == 0 || o.Weight < norm) {
			norm = o.Weight
		}
	}
	if norm == 0 {
		return nil, fmt.Errorf("%w: no unit axis-aligned offset", ErrInvalidMask)
	}
	m := &Mask2D{norm: norm}
	for _, o := range offsets {
		if forwardOrder2D(o.X, o.Y) {
			m.forward = append(m.forward, o)
		} else {
			m.backward = append(m.backward, o)
		}
	}
	sortOffsets2D(m.forward)
	sortOffsets2D(m.backward)
	return m, nil
}

// ForwardOffsets returns the offsets visited before the current cell in
// ascending raster order. The slice is a copy.
func (m *Mask2D) ForwardOffsets() []Offset2D { return slices.Clone(m.forward) }

// BackwardOffsets returns the point reflection of the forward subset.
// The slice is a copy.
func (m *Mask2D) BackwardOffsets() []Offset2D { return slices.Clone(m.backward) }

// Offsets returns the full symmetric neighborhood. The slice is a copy.
func (m *Mask2D) Offsets() []Offset2D {
	all := make([]Offset2D, 0, len(m.forward)+len(m.backward))
	all = append(all, m.forward...)
	all = append(all, m.backward...)
	return all
}

// Normalization returns the weight of the shortest axis-aligned offset.
// Dividing raw accumulated weights by it yields calibrated distances.
func (m *Mask2D) Normalization() int { return m.norm }

// Mask3D is the 3D counterpart of Mask2D.
type Mask3D struct {
	forward  []Offset3D
	backward []Offset3D
	norm     int
}

// NewMask3D builds a 3D mask from the full symmetric offset set,
// applying the same validation as [NewMask2D].
func NewMask3D(offsets []Offset3D) (*Mask3D, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: no offsets", ErrInvalidMask)
	}
	seen := make(map[[3]int]int, len(offsets))
	for _, o := range offsets {
		if o.X == 0 && o.Y == 0 && o.Z == 0 {
			return nil, fmt.Errorf("%w: zero offset", ErrInvalidMask)
		}
		if o.Weight <= 0 {
			return nil, fmt.Errorf("%w: weight %d at offset (%d,%d,%d)", ErrInvalidMask, o.Weight, o.X, o.Y, o.Z)
		}
		key := [3]int{o.X, o.Y, o.Z}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate offset (%d,%d,%d)", ErrInvalidMask, o.X, o.Y, o.Z)
		}
		seen[key] = o.Weight
	}
	norm := 0
	for _, o := range offsets {
		w, ok := seen[[3]int{-o.X, -o.Y, -o.Z}]
		if !ok || w != o.Weight {
			return nil, fmt.Errorf("%w: offset (%d,%d,%d) has no symmetric counterpart", ErrInvalidMask, o.X, o.Y, o.Z)
		}
		if abs(o.X)+abs(o.Y)+abs(o.Z) == 1 && (norm == 0 || o.Weight < norm) {
			norm = o.Weight
		}
	}
	if norm == 0 {
		return nil, fmt.Errorf("%w: no unit axis-aligned offset", ErrInvalidMask)
	}
	m := &Mask3D{norm: norm}
	for _, o := range offsets {
		if forwardOrder3D(o.X, o.Y, o.Z) {
			m.forward = append(m.forward, o)
		} else {
			m.backward = append(m.backward, o)
		}
	}
	sortOffsets3D(m.forward)
	sortOffsets3D(m.backward)
	return m, nil
}

// ForwardOffsets returns the offsets visited before the current cell in
// ascending raster order. The slice is a copy.
func (m *Mask3D) ForwardOffsets() []Offset3D { return slices.Clone(m.forward) }

// BackwardOffsets returns the point reflection of the forward subset.
// The slice is a copy.
func (m *Mask3D) BackwardOffsets() []Offset3D { return slices.Clone(m.backward) }

// Offsets returns the full symmetric neighborhood. The slice is a copy.
func (m *Mask3D) Offsets() []Offset3D {
	all := make([]Offset3D, 0, len(m.forward)+len(m.backward))
	all = append(all, m.forward...)
	all = append(all, m.backward...)
	return all
}

// Normalization returns the weight of the shortest axis-aligned offset.
func (m *Mask3D) Normalization() int { return m.norm }

// forwardOrder2D reports whether (x, y) precedes the origin in raster
// order: earlier row, or same row and earlier column.
func forwardOrder2D(x, y int) bool {
	return y < 0 || (y == 0 && x < 0)
}

// forwardOrder3D reports whether (x, y, z) precedes the origin in
// raster order with z slowest.
func forwardOrder3D(x, y, z int) bool {
	return z < 0 || (z == 0 && forwardOrder2D(x, y))
}

// sortOffsets2D orders offsets in raster order so that accessor output
// is independent of construction order.
func sortOffsets2D(offs []Offset2D) {
	slices.SortFunc(offs, func(a, b Offset2D) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

func sortOffsets3D(offs []Offset3D) {
	slices.SortFunc(offs, func(a, b Offset3D) int {
		if a.Z != b.Z {
			return a.Z - b.Z
		}
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
