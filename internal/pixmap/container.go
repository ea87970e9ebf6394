package pixmap

import (
	"fmt"
	"io"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// Kind selects one of the two container layouts.
type Kind int

const (
	Packed Kind = iota // "P6": interleaved 3-byte pixels
	Planar             // "N2": Y plane + half-resolution VU plane
)

func (k Kind) String() string {
	switch k {
	case Packed:
		return "ppm"
	case Planar:
		return "nv21"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Magic returns the header token of the container.
func (k Kind) Magic() string {
	if k == Planar {
		return MagicNV21
	}
	return MagicPPM
}

// Decode reads a container of the given kind into a 3-channel raster.
func Decode(k Kind, r io.Reader, opts ResampleOptions) (*ir.Raster, error) {
	switch k {
	case Packed:
		return DecodePPM(r)
	case Planar:
		return DecodeNV21(r, opts)
	default:
		return nil, fmt.Errorf("%w: container %s", ir.ErrUnrecognizedFormat, k)
	}
}

// Encode writes a 3-channel raster as a container of the given kind.
func Encode(k Kind, w io.Writer, img *ir.Raster, opts ResampleOptions) error {
	switch k {
	case Packed:
		return EncodePPM(w, img)
	case Planar:
		return EncodeNV21(w, img, opts)
	default:
		return fmt.Errorf("%w: container %s", ir.ErrUnrecognizedFormat, k)
	}
}
