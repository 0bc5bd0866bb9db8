package chamfer

import (
	"errors"
	"testing"
)

func TestNewMask2DValidation(t *testing.T) {
	tests := []struct {
		name    string
		offsets []Offset2D
		wantErr bool
	}{
		{"empty", nil, true},
		{"zero offset", []Offset2D{{0, 0, 1}, {1, 0, 1}, {-1, 0, 1}}, true},
		{"zero weight", []Offset2D{{1, 0, 0}, {-1, 0, 0}}, true},
		{"negative weight", []Offset2D{{1, 0, -3}, {-1, 0, -3}}, true},
		{"duplicate", []Offset2D{{1, 0, 1}, {1, 0, 1}, {-1, 0, 1}}, true},
		{"missing negation", []Offset2D{{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}}, true},
		{"asymmetric weight", []Offset2D{{1, 0, 1}, {-1, 0, 2}}, true},
		{"no unit offset", []Offset2D{{1, 1, 2}, {-1, -1, 2}, {1, -1, 2}, {-1, 1, 2}}, true},
		{"valid minimal", []Offset2D{{1, 0, 1}, {-1, 0, 1}}, false},
		{"valid 3x3", weighted2D(3, 4), false},
		{"valid 5x5", knight2D(5, 7, 11), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMask2D(tt.offsets)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMask2D() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMask) {
				t.Errorf("NewMask2D() error = %v, want wrapped ErrInvalidMask", err)
			}
		})
	}
}

func TestNewMask3DValidation(t *testing.T) {
	tests := []struct {
		name    string
		offsets []Offset3D
		wantErr bool
	}{
		{"empty", nil, true},
		{"zero weight", []Offset3D{{1, 0, 0, 0}, {-1, 0, 0, 0}}, true},
		{"missing negation", []Offset3D{{0, 0, 1, 1}, {1, 0, 0, 1}, {-1, 0, 0, 1}}, true},
		{"valid 26-neighborhood", weighted3D(3, 4, 5), false},
		{"valid svensson", svensson3D(3, 4, 5, 7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMask3D(tt.offsets)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMask3D() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaskPartitionSymmetry(t *testing.T) {
	for name, m := range masks2D {
		fwd, bwd := m.ForwardOffsets(), m.BackwardOffsets()
		if len(fwd) != len(bwd) {
			t.Errorf("%s: forward has %d offsets, backward %d", name, len(fwd), len(bwd))
			continue
		}
		// The backward subset must be the exact point reflection.
		reflected := make(map[Offset2D]bool, len(bwd))
		for _, o := range bwd {
			reflected[Offset2D{-o.X, -o.Y, o.Weight}] = true
		}
		for _, o := range fwd {
			if !reflected[o] {
				t.Errorf("%s: forward offset %+v has no backward reflection", name, o)
			}
			if !forwardOrder2D(o.X, o.Y) {
				t.Errorf("%s: offset %+v is not forward in raster order", name, o)
			}
		}
	}
}

func TestMaskPartitionSymmetry3D(t *testing.T) {
	for name, m := range masks3D {
		fwd, bwd := m.ForwardOffsets(), m.BackwardOffsets()
		if len(fwd) != len(bwd) {
			t.Errorf("%s: forward has %d offsets, backward %d", name, len(fwd), len(bwd))
			continue
		}
		reflected := make(map[Offset3D]bool, len(bwd))
		for _, o := range bwd {
			reflected[Offset3D{-o.X, -o.Y, -o.Z, o.Weight}] = true
		}
		for _, o := range fwd {
			if !reflected[o] {
				t.Errorf("%s: forward offset %+v has no backward reflection", name, o)
			}
		}
	}
}

func TestMaskNormalization(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"cityblock", CityBlock.Normalization(), 1},
		{"chessboard", Chessboard.Normalization(), 1},
		{"weights23", Weights23.Normalization(), 2},
		{"borgefors", Borgefors.Normalization(), 3},
		{"chessknight", ChessKnight.Normalization(), 5},
		{"cityblock3d", CityBlock3D.Normalization(), 1},
		{"borgefors3d", Borgefors3D.Normalization(), 3},
		{"svensson3d", Svensson3D.Normalization(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Normalization() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestMaskNeighborhoodSizes(t *testing.T) {
	if n := len(CityBlock.Offsets()); n != 8 {
		t.Errorf("CityBlock has %d offsets, want 8", n)
	}
	if n := len(ChessKnight.Offsets()); n != 16 {
		t.Errorf("ChessKnight has %d offsets, want 16", n)
	}
	if n := len(Borgefors3D.Offsets()); n != 26 {
		t.Errorf("Borgefors3D has %d offsets, want 26", n)
	}
	if n := len(Svensson3D.Offsets()); n != 50 {
		t.Errorf("Svensson3D has %d offsets, want 50", n)
	}
}

func TestLookupMask(t *testing.T) {
	if _, err := LookupMask2D("Borgefors"); err != nil {
		t.Errorf("LookupMask2D(Borgefors) error = %v", err)
	}
	if _, err := LookupMask2D("nope"); err == nil {
		t.Error("LookupMask2D(nope) expected error")
	}
	if _, err := LookupMask3D("svensson"); err != nil {
		t.Errorf("LookupMask3D(svensson) error = %v", err)
	}
	if _, err := LookupMask3D("nope"); err == nil {
		t.Error("LookupMask3D(nope) expected error")
	}
}
