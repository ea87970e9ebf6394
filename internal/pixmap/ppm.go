package pixmap

import (
	"fmt"
	"io"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// DecodePPM reads a packed "P6" pixmap: header followed by width*height
// 3-byte pixels.
func DecodePPM(r io.Reader) (*ir.Raster, error) {
	br := bufferedReader(r)
	h, err := ReadHeader(br, MagicPPM)
	if err != nil {
		return nil, fmt.Errorf("ppm header: %w", err)
	}

	img := ir.NewRaster(h.Width, h.Height, 3)
	if err := readBody(br, img.Pixels); err != nil {
		return nil, fmt.Errorf("ppm body: %w", err)
	}
	return img, nil
}

// EncodePPM writes img as a packed "P6" pixmap.
func EncodePPM(w io.Writer, img *ir.Raster) error {
	if err := img.Validate(3); err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	header := fmt.Sprintf("%s\n%d %d\n%d\n", MagicPPM, img.Width, img.Height, MaxValue)
	if _, err := writeAll(w, []byte(header), img.Pixels); err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	return nil
}
