package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the image format is not
// supported for the requested operation.
var ErrUnsupportedFormat = errors.New("imgio: unsupported format")

// Load reads an image from the given file path, selecting the decoder
// by extension. Supported formats: PNG, JPEG, TIFF, BMP. Unknown
// extensions fall back to content sniffing.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imgio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(f)
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	case ".tif", ".tiff":
		return tiff.Decode(f)
	case ".bmp":
		return bmp.Decode(f)
	default:
		return Decode(f)
	}
}

// Decode reads an image from r, auto-detecting the format among the
// registered codecs (PNG, JPEG, TIFF, BMP).
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode: %w", err)
	}
	return img, nil
}

// Save writes an image to the given file path, selecting the encoder
// by extension. Supported formats: PNG, TIFF (deflate-compressed),
// BMP. 16-bit gray data survives PNG and TIFF; BMP flattens to 8 bits.
func Save(path string, img image.Image) error {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(w io.Writer) error { return png.Encode(w, img) }
	case ".tif", ".tiff":
		encode = func(w io.Writer) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	case ".bmp":
		encode = func(w io.Writer) error { return bmp.Encode(w, img) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgio: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("imgio: encode: %w", err)
	}
	return f.Close()
}
