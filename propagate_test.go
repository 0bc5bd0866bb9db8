package chamfer

import (
	"slices"
	"testing"
)

// seedField builds a sentinel-filled field with zeros at the given
// seed indices.
func seedField(w, h int, seeds ...int) *Grid2D[uint16] {
	f := NewGrid2D[uint16](w, h)
	f.Fill(Sentinel[uint16]())
	for _, i := range seeds {
		f.data[i] = 0
	}
	return f
}

func TestSweepMonotonicity(t *testing.T) {
	// The backward sweep may only lower values left by the forward
	// sweep, for every mask in the catalogue.
	for name, m := range masks2D {
		t.Run(name, func(t *testing.T) {
			f := seedField(9, 9, 0, 9*9-1) // two corner seeds
			s := &sweeper2D[uint16]{dist: f, mask: m, sent: Sentinel[uint16]()}
			s.forwardSweep()
			after := slices.Clone(f.data)
			s.backwardSweep()
			for i := range f.data {
				if f.data[i] > after[i] {
					t.Fatalf("cell %d increased across backward sweep: %d -> %d",
						i, after[i], f.data[i])
				}
			}
		})
	}
}

func TestSweepSeedInvariance(t *testing.T) {
	seeds := []int{0, 7*5 + 3, 9*5 - 1}
	f := seedField(5, 9, seeds...)
	s := &sweeper2D[uint16]{dist: f, mask: Borgefors, sent: Sentinel[uint16]()}
	s.forwardSweep()
	for _, i := range seeds {
		if f.data[i] != 0 {
			t.Fatalf("seed %d = %d after forward sweep, want 0", i, f.data[i])
		}
	}
	s.backwardSweep()
	for _, i := range seeds {
		if f.data[i] != 0 {
			t.Fatalf("seed %d = %d after backward sweep, want 0", i, f.data[i])
		}
	}
}

func TestSweepObserverOrder(t *testing.T) {
	f := seedField(4, 4, 0)
	var got []SweepDirection
	s := &sweeper2D[uint16]{
		dist:     f,
		mask:     CityBlock,
		sent:     Sentinel[uint16](),
		observer: func(d SweepDirection) { got = append(got, d) },
	}
	s.run()
	want := []SweepDirection{SweepForward, SweepBackward}
	if !slices.Equal(got, want) {
		t.Errorf("observer saw %v, want %v", got, want)
	}
}

func TestSweepDirectionString(t *testing.T) {
	if SweepForward.String() != "forward" || SweepBackward.String() != "backward" {
		t.Errorf("String() = %q/%q, want forward/backward",
			SweepForward.String(), SweepBackward.String())
	}
}
