// Package maskfile loads chamfer masks from TOML files.
//
// A mask file names its dimensionality and lists weighted offsets:
//
//	name = "borgefors"
//	dim = 2
//	mirror = true
//
//	[[offsets]]
//	x = 1
//	y = 0
//	w = 3
//
//	[[offsets]]
//	x = 1
//	y = 1
//	w = 4
//
// With mirror set, only one half of the symmetric neighborhood is
// listed and the point-reflected counterparts are filled in. Without
// it, the file must list every offset explicitly.
package maskfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/gogrid/chamfer"
)

// ErrInvalidFile is returned when a mask file is malformed: wrong
// dimensionality, stray coordinates, or offsets the mask rules reject.
var ErrInvalidFile = errors.New("maskfile: invalid mask file")

// File is the decoded form of a mask file, before mask validation.
type File struct {
	Name    string   `toml:"name"`
	Dim     int      `toml:"dim"`
	Mirror  bool     `toml:"mirror"`
	Offsets []Offset `toml:"offsets"`
}

// Offset is one weighted displacement entry. Z is ignored for dim = 2
// files and must be absent or zero there.
type Offset struct {
	X int `toml:"x"`
	Y int `toml:"y"`
	Z int `toml:"z"`
	W int `toml:"w"`
}

// Load reads and decodes a mask file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("maskfile: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a mask file from raw TOML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if f.Dim != 2 && f.Dim != 3 {
		return nil, fmt.Errorf("%w: dim must be 2 or 3, got %d", ErrInvalidFile, f.Dim)
	}
	if f.Dim == 2 {
		for _, o := range f.Offsets {
			if o.Z != 0 {
				return nil, fmt.Errorf("%w: z coordinate in a 2D mask file", ErrInvalidFile)
			}
		}
	}
	return &f, nil
}

// Mask2D builds the chamfer mask described by a dim = 2 file.
func (f *File) Mask2D() (*chamfer.Mask2D, error) {
	if f.Dim != 2 {
		return nil, fmt.Errorf("%w: file is %dD, want 2D", ErrInvalidFile, f.Dim)
	}
	offs := make([]chamfer.Offset2D, 0, 2*len(f.Offsets))
	for _, o := range f.Offsets {
		offs = append(offs, chamfer.Offset2D{X: o.X, Y: o.Y, Weight: o.W})
		if f.Mirror {
			offs = append(offs, chamfer.Offset2D{X: -o.X, Y: -o.Y, Weight: o.W})
		}
	}
	m, err := chamfer.NewMask2D(offs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return m, nil
}

// Mask3D builds the chamfer mask described by a dim = 3 file.
func (f *File) Mask3D() (*chamfer.Mask3D, error) {
	if f.Dim != 3 {
		return nil, fmt.Errorf("%w: file is %dD, want 3D", ErrInvalidFile, f.Dim)
	}
	offs := make([]chamfer.Offset3D, 0, 2*len(f.Offsets))
	for _, o := range f.Offsets {
		offs = append(offs, chamfer.Offset3D{X: o.X, Y: o.Y, Z: o.Z, Weight: o.W})
		if f.Mirror {
			offs = append(offs, chamfer.Offset3D{X: -o.X, Y: -o.Y, Z: -o.Z, Weight: o.W})
		}
	}
	m, err := chamfer.NewMask3D(offs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return m, nil
}
