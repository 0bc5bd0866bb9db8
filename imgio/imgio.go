// Package imgio converts between images and chamfer grids.
//
// Binary masks come from thresholding any image; label maps ride in
// 16-bit gray channels (TIFF or PNG). Distance fields go back out as
// 16-bit gray images, either verbatim for integer encodings or scaled
// for float encodings.
package imgio

import (
	"image"
	"image/color"

	"github.com/gogrid/chamfer"
)

// Binary converts an image to a binary grid: cells with luminance
// above threshold become foreground (1), the rest background (0).
// With invert set, the comparison flips, for images where the objects
// are dark on a light background.
func Binary(img image.Image, threshold uint8, invert bool) *chamfer.Grid2D[uint8] {
	b := img.Bounds()
	g := chamfer.NewGrid2D[uint8](b.Dx(), b.Dy())
	data := g.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			fg := gray.Y > threshold
			if invert {
				fg = !fg
			}
			if fg {
				data[i] = 1
			}
			i++
		}
	}
	return g
}

// Labels converts an image to a 16-bit label grid using the gray-16
// channel, so label identities survive a round trip through 16-bit
// TIFF or PNG. Zero is background.
func Labels(img image.Image) *chamfer.Grid2D[uint16] {
	b := img.Bounds()
	g := chamfer.NewGrid2D[uint16](b.Dx(), b.Dy())
	data := g.Data()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data[i] = color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
			i++
		}
	}
	return g
}

// Gray16 renders a 16-bit grid verbatim as an image.Gray16. Sentinel
// cells of a distance field come out white (65535).
func Gray16(g *chamfer.Grid2D[uint16]) *image.Gray16 {
	w, h := g.Width(), g.Height()
	img := image.NewGray16(image.Rect(0, 0, w, h))
	data := g.Data()
	for i, v := range data {
		x, y := i%w, i/w
		img.SetGray16(x, y, color.Gray16{Y: v})
	}
	return img
}

// Gray16Scaled renders a float grid as an image.Gray16, scaling finite
// values linearly so the largest maps to 65534. Unreached cells (+Inf)
// come out white (65535). An all-unreached field renders all white.
func Gray16Scaled(g *chamfer.Grid2D[float32]) *image.Gray16 {
	sent := chamfer.Sentinel[float32]()
	data := g.Data()
	var maxv float32
	for _, v := range data {
		if v != sent && v > maxv {
			maxv = v
		}
	}
	w, h := g.Width(), g.Height()
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for i, v := range data {
		x, y := i%w, i/w
		var out uint16
		switch {
		case v == sent:
			out = 65535
		case maxv > 0:
			out = uint16(v / maxv * 65534)
		}
		img.SetGray16(x, y, color.Gray16{Y: out})
	}
	return img
}
