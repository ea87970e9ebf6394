// Package imagecodec adapts the Go image codecs (PNG, JPEG, GIF, BMP, TIFF,
// WebP) to ir.Raster. It handles every extension that is not one of the
// pixmap containers.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// DecodeRGB decodes any registered image format from memory into an
// interleaved R,G,B raster. Alpha is dropped.
func DecodeRGB(data []byte) (*ir.Raster, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ir.ErrDelegateCodec)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrDelegateCodec, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s image has no pixels", ir.ErrDelegateCodec, format)
	}

	out := ir.NewRaster(b.Dx(), b.Dy(), 3)
	i := 0
	switch src := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				copy(out.Pixels[i:i+3], row[x*4:x*4+3])
				i += 3
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				out.Pixels[i], out.Pixels[i+1], out.Pixels[i+2] = c.R, c.G, c.B
				i += 3
			}
		}
	}
	return out, nil
}
