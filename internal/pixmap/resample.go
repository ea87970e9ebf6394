package pixmap

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// Kernel names an interpolation kernel for chroma resampling.
type Kernel int

const (
	KernelBilinear Kernel = iota
	KernelNearest
	KernelApproxBilinear
	KernelCatmullRom
)

// ResampleOptions selects the kernels used when the half-resolution VU plane
// is expanded on decode and reduced on encode.
type ResampleOptions struct {
	Upsample   Kernel
	Downsample Kernel
}

// DefaultResample expands chroma bilinearly and reduces it with the cubic
// Catmull-Rom kernel.
var DefaultResample = ResampleOptions{
	Upsample:   KernelBilinear,
	Downsample: KernelCatmullRom,
}

// ParseKernel converts a kernel name to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(s) {
	case "bilinear":
		return KernelBilinear, nil
	case "nearest":
		return KernelNearest, nil
	case "approxbilinear":
		return KernelApproxBilinear, nil
	case "catmullrom", "cubic":
		return KernelCatmullRom, nil
	default:
		return 0, fmt.Errorf("unknown resampling kernel: %q", s)
	}
}

func (k Kernel) String() string {
	switch k {
	case KernelBilinear:
		return "bilinear"
	case KernelNearest:
		return "nearest"
	case KernelApproxBilinear:
		return "approxbilinear"
	case KernelCatmullRom:
		return "catmullrom"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

func (k Kernel) scaler() draw.Scaler {
	switch k {
	case KernelNearest:
		return draw.NearestNeighbor
	case KernelApproxBilinear:
		return draw.ApproxBiLinear
	case KernelCatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// scalePlane resizes a single-channel plane to width×height.
func scalePlane(p *ir.Raster, width, height int, k Kernel) *ir.Raster {
	if width == p.Width && height == p.Height {
		return p.Clone()
	}
	out := ir.NewRaster(width, height, 1)
	if out.Empty() || p.Empty() {
		return out
	}

	src := &image.Gray{Pix: p.Pixels, Stride: p.Width, Rect: image.Rect(0, 0, p.Width, p.Height)}
	dst := &image.Gray{Pix: out.Pixels, Stride: width, Rect: image.Rect(0, 0, width, height)}
	k.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return out
}

// cropPlane returns the top-left width×height region of p.
func cropPlane(p *ir.Raster, width, height int) *ir.Raster {
	if width == p.Width && height == p.Height {
		return p
	}
	out := ir.NewRaster(width, height, 1)
	for y := 0; y < height; y++ {
		copy(out.Pixels[y*width:(y+1)*width], p.Pixels[y*p.Width:y*p.Width+width])
	}
	return out
}

// extendPlane grows p to width×height by repeating its last column and row.
func extendPlane(p *ir.Raster, width, height int) *ir.Raster {
	if width == p.Width && height == p.Height {
		return p
	}
	out := ir.NewRaster(width, height, 1)
	for y := 0; y < height; y++ {
		row := p.Pixels[min(y, p.Height-1)*p.Width:]
		for x := 0; x < width; x++ {
			out.Pixels[y*width+x] = row[min(x, p.Width-1)]
		}
	}
	return out
}
