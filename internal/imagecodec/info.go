package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// Info describes an encoded image without decoding its pixels.
type Info struct {
	Format     string // registered format name: "png", "jpeg", ...
	Width      int
	Height     int
	ColorSpace string
}

// GetInfo reads the format and dimensions from encoded image data.
func GetInfo(data []byte) (*Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrDelegateCodec, err)
	}
	return &Info{
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorSpace: colorSpaceName(cfg.ColorModel),
	}, nil
}

func colorSpaceName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	switch m {
	case color.YCbCrModel, color.NYCbCrAModel:
		return "YCbCr"
	case color.GrayModel, color.Gray16Model:
		return "Gray"
	case color.CMYKModel:
		return "CMYK"
	default:
		return "RGB"
	}
}
