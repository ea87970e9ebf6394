package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// EncoderOptions controls lossy encoders.
type EncoderOptions struct {
	Quality int // JPEG quality (1-100)
}

// ClampQuality limits a JPEG quality factor to 1..100; 0 selects
// DefaultQuality.
func ClampQuality(quality int) int {
	if quality == 0 {
		return DefaultQuality
	}
	if quality < 1 {
		return 1
	}
	if quality > 100 {
		return 100
	}
	return quality
}

// Encode encodes an R,G,B raster in the format named by ext (".png",
// ".jpg", ...).
func Encode(ext string, r *ir.Raster, opts EncoderOptions) ([]byte, error) {
	if err := r.Validate(3); err != nil {
		return nil, fmt.Errorf("encode %s: %w", ext, err)
	}

	img := toNRGBA(r)
	var buf bytes.Buffer
	var err error

	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg", ".jpe":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: ClampQuality(opts.Quality)})
	case ".gif":
		err = gif.Encode(&buf, img, &gif.Options{NumColors: 256})
	case ".bmp":
		err = bmp.Encode(&buf, img)
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, fmt.Errorf("%w: no encoder for %q", ir.ErrUnrecognizedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ir.ErrDelegateCodec, ext, err)
	}
	return buf.Bytes(), nil
}

func toNRGBA(r *ir.Raster) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	n := r.Width * r.Height
	for i := 0; i < n; i++ {
		copy(img.Pix[i*4:i*4+3], r.Pixels[i*3:i*3+3])
		img.Pix[i*4+3] = 255
	}
	return img
}
