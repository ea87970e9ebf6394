// Package color implements the conversions between sRGB, linear RGB, CIE XYZ,
// CIE L*u*v* and YUV, and the per-pixel RGB↔YUV raster transform.
//
// Each color space is a plain float64 triple. Conversions only exist between
// neighbours in the graph
//
//	YUV ↔ sRGB ↔ LinearRGB ↔ XYZ ↔ LUV
//
// so longer paths are spelled out as explicit chains.
package color

import (
	"fmt"
	"math"
)

// sRGB piecewise gamma (IEC 61966-2-1).
const (
	rgbThreshold = 0.0031308
	rgbLowGain   = 12.92
	rgbHighGain  = 1.055
	rgbOffset    = 0.055
	rgbGamma     = 2.4
)

// SRGB is gamma-encoded RGB with channels nominally in [0,1].
type SRGB struct {
	R, G, B float64
}

// LinearRGB is RGB with the sRGB transfer function removed.
type LinearRGB struct {
	R, G, B float64
}

// XYZ is a CIE 1931 tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

// YUV is luma plus two chroma channels offset by 0.5.
type YUV struct {
	Y, U, V float64
}

func toLinear(c float64) float64 {
	if c <= rgbThreshold*rgbLowGain {
		return c / rgbLowGain
	}
	return math.Pow((c+rgbOffset)/rgbHighGain, rgbGamma)
}

func fromLinear(c float64) float64 {
	if c <= rgbThreshold {
		return rgbLowGain * c
	}
	return rgbHighGain*math.Pow(c, 1/rgbGamma) - rgbOffset
}

// Linear removes the sRGB transfer function.
func (c SRGB) Linear() LinearRGB {
	return LinearRGB{toLinear(c.R), toLinear(c.G), toLinear(c.B)}
}

// YUV applies the direct sRGB → YUV matrix.
func (c SRGB) YUV() YUV {
	y, u, v := srgbToYUV.mul(c.R, c.G, c.B)
	return YUV{y, u + 0.5, v + 0.5}
}

func (c SRGB) String() string {
	return fmt.Sprintf("sRGB(%g, %g, %g)", c.R, c.G, c.B)
}

// SRGB applies the sRGB transfer function.
func (c LinearRGB) SRGB() SRGB {
	return SRGB{fromLinear(c.R), fromLinear(c.G), fromLinear(c.B)}
}

// XYZ converts using the sRGB primaries.
func (c LinearRGB) XYZ() XYZ {
	x, y, z := linearToXYZ.mul(c.R, c.G, c.B)
	return XYZ{x, y, z}
}

func (c LinearRGB) String() string {
	return fmt.Sprintf("linearRGB(%g, %g, %g)", c.R, c.G, c.B)
}

// Linear converts back to linear RGB with the inverse primaries matrix.
func (c XYZ) Linear() LinearRGB {
	r, g, b := xyzToLinear.mul(c.X, c.Y, c.Z)
	return LinearRGB{r, g, b}
}

// LUV converts to CIE L*u*v* relative to D65.
func (c XYZ) LUV() LUV {
	return c.LUVWith(D65)
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%g, %g, %g)", c.X, c.Y, c.Z)
}

// SRGB removes the chroma offset and applies the inverse YUV matrix.
func (c YUV) SRGB() SRGB {
	r, g, b := yuvToSRGB.mul(c.Y, c.U-0.5, c.V-0.5)
	return SRGB{r, g, b}
}

func (c YUV) String() string {
	return fmt.Sprintf("YUV(%g, %g, %g)", c.Y, c.U, c.V)
}

// ToByte maps a [0,1] channel onto 0..255, clamping out-of-range values.
func ToByte(v float64) byte {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 255
	}
	return byte(math.Round(v * 255))
}

// FromByte maps an 8-bit channel onto [0,1].
func FromByte(b byte) float64 {
	return float64(b) / 255
}
