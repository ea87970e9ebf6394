package color

import (
	"fmt"
	"math"
)

// Illuminant is a reference white given as Yn and the u', v' chromaticity.
type Illuminant struct {
	Yn  float64
	UPn float64 // u'n
	VPn float64 // v'n
}

var (
	// D65 is daylight.
	D65 = Illuminant{Yn: 95.04, UPn: 0.19782690146122145, VPn: 0.46834020232296747}
	// IlluminantA is incandescent light.
	IlluminantA = Illuminant{Yn: 109.85, UPn: 0.25597259683442175, VPn: 0.5242952597883013}
)

// CIE breakpoints.
var (
	luvEpsilon    = math.Pow(6.0/29.0, 3) // Y/Yn threshold
	luvKappa      = math.Pow(29.0/3.0, 3) // slope of the linear segment
	luvKappaInv   = math.Pow(3.0/29.0, 3) // inverse slope
	luvLThreshold = 8.0                   // L* at the threshold
)

// LUV is CIE L*u*v*.
type LUV struct {
	L, U, V float64
}

// LUVWith converts to L*u*v* relative to the reference white w.
//
// A zero denominator X+15Y+3Z yields (0,0,0).
func (c XYZ) LUVWith(w Illuminant) LUV {
	k := c.X + 15*c.Y + 3*c.Z
	if k == 0 {
		return LUV{}
	}
	var l float64
	yyn := c.Y / w.Yn
	if yyn <= luvEpsilon {
		l = luvKappa * yyn
	} else {
		l = 116*math.Cbrt(yyn) - 16
	}
	return LUV{
		L: l,
		U: 13 * l * (4*c.X/k - w.UPn),
		V: 13 * l * (9*c.Y/k - w.VPn),
	}
}

// XYZ converts to CIE XYZ relative to D65.
func (c LUV) XYZ() XYZ {
	return c.XYZWith(D65)
}

// XYZWith converts to CIE XYZ relative to the reference white w.
//
// L* == 0 yields (0,0,0).
func (c LUV) XYZWith(w Illuminant) XYZ {
	if c.L == 0 {
		return XYZ{}
	}
	up := (c.U/c.L)/13 + w.UPn
	vp := (c.V/c.L)/13 + w.VPn
	var y float64
	if c.L <= luvLThreshold {
		y = w.Yn * c.L * luvKappaInv
	} else {
		y = w.Yn * math.Pow((c.L+16)/116, 3)
	}
	return XYZ{
		X: y * 9 * up / (4 * vp),
		Y: y,
		Z: y * (12 - 3*up - 20*vp) / (4 * vp),
	}
}

func (c LUV) String() string {
	return fmt.Sprintf("L*u*v*(%g, %g, %g)", c.L, c.U, c.V)
}

// YUVToLUV chains YUV → sRGB → linear RGB → XYZ → L*u*v*.
func YUVToLUV(c YUV) LUV {
	return c.SRGB().Linear().XYZ().LUV()
}

// LUVToYUV chains L*u*v* → XYZ → linear RGB → sRGB → YUV.
func LUVToYUV(c LUV) YUV {
	return c.XYZ().Linear().SRGB().YUV()
}
