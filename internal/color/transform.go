package color

import (
	"fmt"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// Direction selects which way a raster transform runs.
type Direction int

const (
	RGBToYUVDirection Direction = iota
	YUVToRGBDirection
)

func (d Direction) String() string {
	switch d {
	case RGBToYUVDirection:
		return "RGB→YUV"
	case YUVToRGBDirection:
		return "YUV→RGB"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// RGBToYUV converts an interleaved R,G,B raster into Y,U,V.
func RGBToYUV(src *ir.Raster) (*ir.Raster, error) {
	return TransformPixels(src, RGBToYUVDirection)
}

// YUVToRGB converts an interleaved Y,U,V raster into R,G,B.
func YUVToRGB(src *ir.Raster) (*ir.Raster, error) {
	return TransformPixels(src, YUVToRGBDirection)
}

// TransformPixels applies the direct RGB↔YUV matrix to every pixel of a
// 3-channel raster. src is left untouched; the result is a new raster.
func TransformPixels(src *ir.Raster, dir Direction) (*ir.Raster, error) {
	if err := src.Validate(3); err != nil {
		return nil, fmt.Errorf("%s transform: %w", dir, err)
	}

	dst := ir.NewRaster(src.Width, src.Height, 3)
	in, out := src.Pixels, dst.Pixels

	for i := 0; i < len(in); i += 3 {
		a, b, c := FromByte(in[i]), FromByte(in[i+1]), FromByte(in[i+2])
		switch dir {
		case RGBToYUVDirection:
			yuv := SRGB{a, b, c}.YUV()
			out[i], out[i+1], out[i+2] = ToByte(yuv.Y), ToByte(yuv.U), ToByte(yuv.V)
		case YUVToRGBDirection:
			rgb := YUV{a, b, c}.SRGB()
			out[i], out[i+1], out[i+2] = ToByte(rgb.R), ToByte(rgb.G), ToByte(rgb.B)
		default:
			return nil, fmt.Errorf("unknown transform direction %d", int(dir))
		}
	}

	return dst, nil
}
