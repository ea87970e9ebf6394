package color

import (
	"fmt"
	"strings"
)

// Space names one of the five color representations.
type Space int

const (
	SpaceSRGB Space = iota
	SpaceLinear
	SpaceXYZ
	SpaceLUV
	SpaceYUV
)

// ParseSpace converts a space name to a Space.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(s) {
	case "srgb", "rgb":
		return SpaceSRGB, nil
	case "linear", "linearrgb", "lrgb":
		return SpaceLinear, nil
	case "xyz":
		return SpaceXYZ, nil
	case "luv", "cieluv":
		return SpaceLUV, nil
	case "yuv":
		return SpaceYUV, nil
	default:
		return 0, fmt.Errorf("unknown color space: %q", s)
	}
}

func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "srgb"
	case SpaceLinear:
		return "linear"
	case SpaceXYZ:
		return "xyz"
	case SpaceLUV:
		return "luv"
	case SpaceYUV:
		return "yuv"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// Chain is one color expressed in every space.
type Chain struct {
	SRGB   SRGB
	Linear LinearRGB
	XYZ    XYZ
	LUV    LUV
	YUV    YUV
}

// Expand walks the conversion graph outward from a value given in space s.
func Expand(s Space, a, b, c float64, w Illuminant) (Chain, error) {
	var ch Chain
	switch s {
	case SpaceSRGB:
		ch.SRGB = SRGB{a, b, c}
		ch.Linear = ch.SRGB.Linear()
		ch.XYZ = ch.Linear.XYZ()
	case SpaceLinear:
		ch.Linear = LinearRGB{a, b, c}
		ch.SRGB = ch.Linear.SRGB()
		ch.XYZ = ch.Linear.XYZ()
	case SpaceXYZ:
		ch.XYZ = XYZ{a, b, c}
		ch.Linear = ch.XYZ.Linear()
		ch.SRGB = ch.Linear.SRGB()
	case SpaceLUV:
		ch.LUV = LUV{a, b, c}
		ch.XYZ = ch.LUV.XYZWith(w)
		ch.Linear = ch.XYZ.Linear()
		ch.SRGB = ch.Linear.SRGB()
		ch.YUV = ch.SRGB.YUV()
		return ch, nil
	case SpaceYUV:
		ch.YUV = YUV{a, b, c}
		ch.SRGB = ch.YUV.SRGB()
		ch.Linear = ch.SRGB.Linear()
		ch.XYZ = ch.Linear.XYZ()
		ch.LUV = ch.XYZ.LUVWith(w)
		return ch, nil
	default:
		return ch, fmt.Errorf("unknown color space %d", int(s))
	}
	ch.LUV = ch.XYZ.LUVWith(w)
	ch.YUV = ch.SRGB.YUV()
	return ch, nil
}
