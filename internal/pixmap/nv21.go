package pixmap

import (
	"fmt"
	"io"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// neutralChroma fills chroma when the VU plane has no samples.
const neutralChroma = 128

// NV21 holds the two planes of an "N2" pixmap: a full-resolution Y plane and
// a half-resolution VU plane with V stored before U in every sample.
// Half dimensions truncate, so an odd width or height leaves the last
// column or row without chroma of its own.
type NV21 struct {
	Width  int
	Height int
	Y      *ir.Raster // Width × Height × 1
	VU     *ir.Raster // Width/2 × Height/2 × 2
}

// NewNV21 allocates zeroed planes for a width×height image.
func NewNV21(width, height int) *NV21 {
	n := &NV21{Width: width, Height: height}
	cw, ch := n.SizeVU()
	n.Y = ir.NewRaster(width, height, 1)
	n.VU = ir.NewRaster(cw, ch, 2)
	return n
}

// SizeVU returns the chroma plane extent.
func (n *NV21) SizeVU() (width, height int) {
	return n.Width / 2, n.Height / 2
}

// BytesY is the Y plane size in bytes.
func (n *NV21) BytesY() int {
	return n.Width * n.Height
}

// BytesVU is the VU plane size in bytes.
func (n *NV21) BytesVU() int {
	w, h := n.SizeVU()
	return w * h * 2
}

// ReadNV21 parses an "N2" header and reads exactly BytesY()+BytesVU() body
// bytes.
func ReadNV21(r io.Reader) (*NV21, error) {
	br := bufferedReader(r)
	h, err := ReadHeader(br, MagicNV21)
	if err != nil {
		return nil, fmt.Errorf("nv21 header: %w", err)
	}

	n := &NV21{Width: h.Width, Height: h.Height}
	bytesY, bytesVU := n.BytesY(), n.BytesVU()
	body := make([]byte, bytesY+bytesVU)
	if err := readBody(br, body); err != nil {
		return nil, fmt.Errorf("nv21 body: %w", err)
	}

	cw, ch := n.SizeVU()
	n.Y = &ir.Raster{Width: h.Width, Height: h.Height, Channels: 1, Pixels: body[:bytesY:bytesY]}
	n.VU = &ir.Raster{Width: cw, Height: ch, Channels: 2, Pixels: body[bytesY:]}
	return n, nil
}

// WriteTo writes the header followed by the Y and VU planes.
func (n *NV21) WriteTo(w io.Writer) (int64, error) {
	if err := n.validate(); err != nil {
		return 0, err
	}
	header := fmt.Sprintf("%s %d %d %d\n", MagicNV21, n.Width, n.Height, MaxValue)
	return writeAll(w, []byte(header), n.Y.Pixels, n.VU.Pixels)
}

func (n *NV21) validate() error {
	if n.Width <= 0 || n.Height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ir.ErrHeaderMismatch, n.Width, n.Height)
	}
	if n.Y == nil || len(n.Y.Pixels) != n.BytesY() {
		return fmt.Errorf("%w: Y plane does not match %dx%d", ir.ErrHeaderMismatch, n.Width, n.Height)
	}
	if n.VU == nil || len(n.VU.Pixels) != n.BytesVU() {
		return fmt.Errorf("%w: VU plane does not match %dx%d", ir.ErrHeaderMismatch, n.Width, n.Height)
	}
	return nil
}

// Raster expands the VU plane to full resolution and interleaves it with Y
// into a Y,U,V raster.
func (n *NV21) Raster(opts ResampleOptions) (*ir.Raster, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}

	var u, v *ir.Raster
	if n.VU.Empty() {
		u = ir.NewRaster(n.Width, n.Height, 1)
		for i := range u.Pixels {
			u.Pixels[i] = neutralChroma
		}
		v = u.Clone()
	} else {
		// Each VU sample covers one 2×2 luma block; an odd last
		// column or row repeats its neighbour's chroma.
		cw, ch := n.SizeVU()
		vu := n.VU.Split()
		v = extendPlane(scalePlane(vu[0], 2*cw, 2*ch, opts.Upsample), n.Width, n.Height)
		u = extendPlane(scalePlane(vu[1], 2*cw, 2*ch, opts.Upsample), n.Width, n.Height)
	}

	return ir.Merge(n.Y, u, v)
}

// FromRaster splits a Y,U,V raster into NV21 planes. Y is copied unchanged;
// U and V are reduced by exactly 2× and stored as V,U pairs.
func FromRaster(img *ir.Raster, opts ResampleOptions) (*NV21, error) {
	if err := img.Validate(3); err != nil {
		return nil, err
	}

	planes := img.Split()
	n := &NV21{Width: img.Width, Height: img.Height, Y: planes[0]}
	cw, ch := n.SizeVU()
	if cw == 0 || ch == 0 {
		n.VU = ir.NewRaster(cw, ch, 2)
		return n, nil
	}

	// An odd last column or row has no chroma sample of its own.
	u := scalePlane(cropPlane(planes[1], 2*cw, 2*ch), cw, ch, opts.Downsample)
	v := scalePlane(cropPlane(planes[2], 2*cw, 2*ch), cw, ch, opts.Downsample)
	vu, err := ir.Merge(v, u)
	if err != nil {
		return nil, err
	}
	n.VU = vu
	return n, nil
}

// DecodeNV21 reads an "N2" pixmap and returns it as a full-resolution
// Y,U,V raster.
func DecodeNV21(r io.Reader, opts ResampleOptions) (*ir.Raster, error) {
	n, err := ReadNV21(r)
	if err != nil {
		return nil, err
	}
	img, err := n.Raster(opts)
	if err != nil {
		return nil, fmt.Errorf("nv21 expand: %w", err)
	}
	return img, nil
}

// EncodeNV21 writes a Y,U,V raster as an "N2" pixmap.
func EncodeNV21(w io.Writer, img *ir.Raster, opts ResampleOptions) error {
	n, err := FromRaster(img, opts)
	if err != nil {
		return fmt.Errorf("nv21: %w", err)
	}
	if _, err := n.WriteTo(w); err != nil {
		return fmt.Errorf("nv21: %w", err)
	}
	return nil
}
