package ir

import "fmt"

// Raster is the intermediate representation passed between the container
// codecs, the color transform and the generic image codec. Pixels are stored
// as interleaved channel bytes (Channels bytes per pixel, row-major order,
// top to bottom). A single plane of a planar format is also a Raster.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte // len = Width * Height * Channels
}

// NewRaster allocates a zeroed raster of the given extent.
func NewRaster(width, height, channels int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pixels:   make([]byte, width*height*channels),
	}
}

// Len returns the number of bytes the raster's extent requires.
func (r *Raster) Len() int {
	return r.Width * r.Height * r.Channels
}

// Empty reports whether the raster holds no pixels.
func (r *Raster) Empty() bool {
	return r == nil || r.Width == 0 || r.Height == 0
}

// Validate checks the buffer-length invariant and the expected channel count.
// A channels value of 0 skips the channel check.
func (r *Raster) Validate(channels int) error {
	if r == nil {
		return fmt.Errorf("%w: nil raster", ErrHeaderMismatch)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: raster extent %dx%d", ErrHeaderMismatch, r.Width, r.Height)
	}
	if channels != 0 && r.Channels != channels {
		return fmt.Errorf("%w: expected %d channels, got %d", ErrHeaderMismatch, channels, r.Channels)
	}
	if len(r.Pixels) != r.Len() {
		return fmt.Errorf("%w: expected %d pixel bytes for %dx%dx%d, got %d",
			ErrHeaderMismatch, r.Len(), r.Width, r.Height, r.Channels, len(r.Pixels))
	}
	return nil
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	out := &Raster{Width: r.Width, Height: r.Height, Channels: r.Channels}
	out.Pixels = append([]byte(nil), r.Pixels...)
	return out
}

// Split separates an interleaved raster into single-channel planes.
func (r *Raster) Split() []*Raster {
	planes := make([]*Raster, r.Channels)
	for c := range planes {
		planes[c] = NewRaster(r.Width, r.Height, 1)
	}
	n := r.Width * r.Height
	for i := 0; i < n; i++ {
		for c, p := range planes {
			p.Pixels[i] = r.Pixels[i*r.Channels+c]
		}
	}
	return planes
}

// Merge interleaves single-channel planes of equal extent into one raster.
func Merge(planes ...*Raster) (*Raster, error) {
	if len(planes) == 0 {
		return nil, fmt.Errorf("%w: no planes to merge", ErrHeaderMismatch)
	}
	w, h := planes[0].Width, planes[0].Height
	for i, p := range planes {
		if p.Channels != 1 || p.Width != w || p.Height != h || len(p.Pixels) != w*h {
			return nil, fmt.Errorf("%w: plane %d is %dx%dx%d, expected %dx%dx1",
				ErrHeaderMismatch, i, p.Width, p.Height, p.Channels, w, h)
		}
	}
	out := NewRaster(w, h, len(planes))
	n := w * h
	for i := 0; i < n; i++ {
		for c, p := range planes {
			out.Pixels[i*out.Channels+c] = p.Pixels[i]
		}
	}
	return out, nil
}
