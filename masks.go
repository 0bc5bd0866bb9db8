package chamfer

import (
	"fmt"
	"sort"
	"strings"
)

// Pre-built chamfer masks. All are immutable and safe to share across
// concurrent calls. The weight tuples are the classical integer
// approximations of Euclidean distance; Normalization() converts raw
// sums back to units of the orthogonal step.
var (
	// CityBlock uses weights (1, 2): Manhattan distance.
	CityBlock = mustMask2D(weighted2D(1, 2))

	// Chessboard uses weights (1, 1): Chebyshev distance.
	Chessboard = mustMask2D(weighted2D(1, 1))

	// Weights23 uses weights (2, 3), a coarse Euclidean approximation
	// with a small integer dynamic.
	Weights23 = mustMask2D(weighted2D(2, 3))

	// Borgefors uses weights (3, 4), the optimal 3x3 integer
	// approximation of Euclidean distance (Borgefors, 1986).
	Borgefors = mustMask2D(weighted2D(3, 4))

	// ChessKnight uses weights (5, 7, 11) over a 5x5 neighborhood
	// including knight moves, the best 5x5 integer approximation.
	ChessKnight = mustMask2D(knight2D(5, 7, 11))
)

// Pre-built 3D masks.
var (
	// CityBlock3D uses weights (1, 2, 3).
	CityBlock3D = mustMask3D(weighted3D(1, 2, 3))

	// Chessboard3D uses weights (1, 1, 1).
	Chessboard3D = mustMask3D(weighted3D(1, 1, 1))

	// Borgefors3D uses weights (3, 4, 5) over the 26-neighborhood.
	Borgefors3D = mustMask3D(weighted3D(3, 4, 5))

	// Svensson3D uses weights (3, 4, 5, 7), adding the (±1,±1,±2)
	// permutations of the 5x5x5 neighborhood (Svensson and Borgefors,
	// 2002).
	Svensson3D = mustMask3D(svensson3D(3, 4, 5, 7))
)

var masks2D = map[string]*Mask2D{
	"cityblock":   CityBlock,
	"chessboard":  Chessboard,
	"weights23":   Weights23,
	"borgefors":   Borgefors,
	"chessknight": ChessKnight,
}

var masks3D = map[string]*Mask3D{
	"cityblock":  CityBlock3D,
	"chessboard": Chessboard3D,
	"borgefors":  Borgefors3D,
	"svensson":   Svensson3D,
}

// LookupMask2D returns the catalogue mask with the given name
// (case-insensitive): cityblock, chessboard, weights23, borgefors or
// chessknight.
func LookupMask2D(name string) (*Mask2D, error) {
	m, ok := masks2D[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("chamfer: unknown 2D mask %q (have %s)", name, strings.Join(MaskNames2D(), ", "))
	}
	return m, nil
}

// LookupMask3D returns the catalogue mask with the given name
// (case-insensitive): cityblock, chessboard, borgefors or svensson.
func LookupMask3D(name string) (*Mask3D, error) {
	m, ok := masks3D[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("chamfer: unknown 3D mask %q (have %s)", name, strings.Join(MaskNames3D(), ", "))
	}
	return m, nil
}

// MaskNames2D lists the 2D catalogue names in sorted order.
func MaskNames2D() []string {
	names := make([]string, 0, len(masks2D))
	for n := range masks2D {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MaskNames3D lists the 3D catalogue names in sorted order.
func MaskNames3D() []string {
	names := make([]string, 0, len(masks3D))
	for n := range masks3D {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// weighted2D builds the full 3x3 neighborhood: orthogonal steps with
// weight a, diagonal steps with weight b.
func weighted2D(a, b int) []Offset2D {
	return []Offset2D{
		{-1, -1, b}, {0, -1, a}, {1, -1, b},
		{-1, 0, a}, {1, 0, a},
		{-1, 1, b}, {0, 1, a}, {1, 1, b},
	}
}

// knight2D builds the 5x5 neighborhood: orthogonal a, diagonal b, and
// the eight knight moves with weight c.
func knight2D(a, b, c int) []Offset2D {
	offs := weighted2D(a, b)
	for _, k := range [][2]int{
		{-1, -2}, {1, -2}, {-2, -1}, {2, -1},
		{-2, 1}, {2, 1}, {-1, 2}, {1, 2},
	} {
		offs = append(offs, Offset2D{k[0], k[1], c})
	}
	return offs
}

// weighted3D builds the full 26-neighborhood: face neighbors with
// weight a, edge neighbors with weight b, vertex neighbors with
// weight c.
func weighted3D(a, b, c int) []Offset3D {
	var offs []Offset3D
	for z := -1; z <= 1; z++ {
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				switch abs(x) + abs(y) + abs(z) {
				case 0:
					continue
				case 1:
					offs = append(offs, Offset3D{x, y, z, a})
				case 2:
					offs = append(offs, Offset3D{x, y, z, b})
				case 3:
					offs = append(offs, Offset3D{x, y, z, c})
				}
			}
		}
	}
	return offs
}

// svensson3D extends weighted3D with the 24 permutations of (±1,±1,±2)
// carrying weight e.
func svensson3D(a, b, c, e int) []Offset3D {
	offs := weighted3D(a, b, c)
	for _, p := range [][3]int{{1, 1, 2}, {1, 2, 1}, {2, 1, 1}} {
		for sx := -1; sx <= 1; sx += 2 {
			for sy := -1; sy <= 1; sy += 2 {
				for sz := -1; sz <= 1; sz += 2 {
					offs = append(offs, Offset3D{sx * p[0], sy * p[1], sz * p[2], e})
				}
			}
		}
	}
	return offs
}

func mustMask2D(offs []Offset2D) *Mask2D {
	m, err := NewMask2D(offs)
	if err != nil {
		panic(err)
	}
	return m
}

func mustMask3D(offs []Offset3D) *Mask3D {
	m, err := NewMask3D(offs)
	if err != nil {
		panic(err)
	}
	return m
}
