package chamfer

import "math"

// Value is the set of distance-field encodings: saturating 16-bit
// fixed point or IEEE 32-bit float.
type Value interface {
	uint16 | float32
}

// Sentinel returns the "unreached" marker for encoding T:
// math.MaxUint16 for uint16 fields, +Inf for float32 fields.
func Sentinel[T Value]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(math.Inf(1))
	}
	return T(math.MaxUint16)
}

// satAdd returns d+w clamped to the sentinel. Adding any weight to the
// sentinel yields the sentinel, so unreached neighbors never offer a
// finite candidate. For float encodings sent-w is still +Inf and IEEE
// addition absorbs the sentinel naturally; the comparison form keeps
// one code path for both encodings.
func satAdd[T Value](d, w, sent T) T {
	if d >= sent-w {
		return sent
	}
	return d + w
}

// normalizeSlice divides every finite cell by the mask normalization
// weight, converting raw accumulated weights into calibrated distance
// units. Integer encodings round to nearest; the sentinel is preserved.
func normalizeSlice[T Value](data []T, norm int) {
	if norm == 1 {
		return
	}
	switch d := any(data).(type) {
	case []uint16:
		half := uint32(norm) / 2
		for i, v := range d {
			if v == math.MaxUint16 {
				continue
			}
			d[i] = uint16((uint32(v) + half) / uint32(norm))
		}
	case []float32:
		// +Inf / norm stays +Inf, so no sentinel test is needed.
		n := float32(norm)
		for i := range d {
			d[i] /= n
		}
	}
}
