package chamfer

import "testing"

func TestBoundaryDistance2DRow(t *testing.T) {
	// Two regions meeting mid-row: each cell measures the distance to
	// the border between them. The image edge is not a boundary.
	labels := NewGrid2D[uint8](6, 1)
	for x := 0; x < 3; x++ {
		labels.Set(x, 0, 1)
	}
	for x := 3; x < 6; x++ {
		labels.Set(x, 0, 2)
	}
	dist, err := BoundaryDistance2D[uint16](labels, CityBlock)
	if err != nil {
		t.Fatalf("BoundaryDistance2D() error = %v", err)
	}
	want := []uint16{3, 2, 1, 1, 2, 3}
	for x, w := range want {
		if got := dist.At(x, 0); got != w {
			t.Errorf("dist(%d) = %d, want %d", x, got, w)
		}
	}
}

func TestBoundaryDistance2DBackgroundIsARegion(t *testing.T) {
	// A single labeled cell in background: both sides of the border
	// get finite distances.
	labels := NewGrid2D[uint8](5, 1)
	labels.Set(2, 0, 1)
	dist, err := BoundaryDistance2D[uint16](labels, CityBlock)
	if err != nil {
		t.Fatalf("BoundaryDistance2D() error = %v", err)
	}
	want := []uint16{2, 1, 1, 1, 2}
	for x, w := range want {
		if got := dist.At(x, 0); got != w {
			t.Errorf("dist(%d) = %d, want %d", x, got, w)
		}
	}
}

func TestBoundaryDistance2DUniform(t *testing.T) {
	labels := NewGrid2D[uint8](4, 4)
	labels.Fill(3)
	dist, err := BoundaryDistance2D[uint16](labels, Borgefors)
	if err != nil {
		t.Fatalf("BoundaryDistance2D() error = %v", err)
	}
	sent := Sentinel[uint16]()
	for i, v := range dist.Data() {
		if v != sent {
			t.Fatalf("uniform grid cell %d = %d, want sentinel", i, v)
		}
	}
}

func TestErodeLabels2D(t *testing.T) {
	labels := NewGrid2D[uint8](6, 1)
	for x := 0; x < 3; x++ {
		labels.Set(x, 0, 1)
	}
	for x := 3; x < 6; x++ {
		labels.Set(x, 0, 2)
	}
	owners, _, err := ErodeLabels2D[uint16](labels, CityBlock, 1)
	if err != nil {
		t.Fatalf("ErodeLabels2D() error = %v", err)
	}
	want := []uint8{1, 1, 0, 0, 2, 2}
	for x, w := range want {
		if got := owners.At(x, 0); got != w {
			t.Errorf("owners(%d) = %d, want %d", x, got, w)
		}
	}
}

func TestErodeLabels2DThinStructureVanishes(t *testing.T) {
	// A 1-cell-wide line is closer than any positive radius to its
	// boundary on both sides.
	labels := NewGrid2D[uint8](7, 3)
	for x := 0; x < 7; x++ {
		labels.Set(x, 1, 4)
	}
	owners, _, err := ErodeLabels2D[uint16](labels, CityBlock, 1)
	if err != nil {
		t.Fatalf("ErodeLabels2D() error = %v", err)
	}
	for i, v := range owners.Data() {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0 (line should vanish)", i, v)
		}
	}
}

func TestErodeLabels2DZeroRadiusKeepsInterior(t *testing.T) {
	labels := NewGrid2D[uint8](5, 5)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			labels.Set(x, y, 1)
		}
	}
	owners, _, err := ErodeLabels2D[uint16](labels, CityBlock, 0)
	if err != nil {
		t.Fatalf("ErodeLabels2D() error = %v", err)
	}
	// Threshold 0.5: every labeled cell has boundary distance >= 1.
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if got := owners.At(x, y); got != 1 {
				t.Errorf("owners(%d,%d) = %d, want 1", x, y, got)
			}
		}
	}
}

func TestErodeLabels3D(t *testing.T) {
	// A 3x3x3 solid block: radius 1 keeps only the center.
	labels := NewGrid3D[uint8](5, 5, 5)
	for z := 1; z < 4; z++ {
		for y := 1; y < 4; y++ {
			for x := 1; x < 4; x++ {
				labels.Set(x, y, z, 2)
			}
		}
	}
	owners, _, err := ErodeLabels3D[uint16](labels, CityBlock3D, 1)
	if err != nil {
		t.Fatalf("ErodeLabels3D() error = %v", err)
	}
	for z := 0; z < 5; z++ {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				want := uint8(0)
				if x == 2 && y == 2 && z == 2 {
					want = 2
				}
				if got := owners.At(x, y, z); got != want {
					t.Errorf("owners(%d,%d,%d) = %d, want %d", x, y, z, got, want)
				}
			}
		}
	}
}

func TestBoundaryDistance3D(t *testing.T) {
	labels := NewGrid3D[uint8](4, 1, 1)
	labels.Set(0, 0, 0, 1)
	labels.Set(1, 0, 0, 1)
	dist, err := BoundaryDistance3D[uint16](labels, CityBlock3D)
	if err != nil {
		t.Fatalf("BoundaryDistance3D() error = %v", err)
	}
	want := []uint16{2, 1, 1, 2}
	for x, w := range want {
		if got := dist.At(x, 0, 0); got != w {
			t.Errorf("dist(%d) = %d, want %d", x, got, w)
		}
	}
}
