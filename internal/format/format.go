// Package format maps file names to pixel formats and routes decoding and
// encoding to the pixmap containers or the generic image codec.
package format

import (
	"fmt"
	"strings"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

// PixelFormat is the logical pixel layout behind a file name.
type PixelFormat int

const (
	None PixelFormat = iota
	RGB
	YUV  // packed "P6" pixmap holding Y,U,V
	NV21 // planar "N2" pixmap
)

func (f PixelFormat) String() string {
	switch f {
	case None:
		return "NONE"
	case RGB:
		return "RGB"
	case YUV:
		return "YUV"
	case NV21:
		return "NV21"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// IsYUV reports whether f belongs to the YUV family.
func (f PixelFormat) IsYUV() bool {
	return f == YUV || f == NV21
}

// StreamSuffix marks a name that refers to stdin/stdout, e.g. "png:-".
const StreamSuffix = ":-"

const minNameLen = 5

// Target is a resolved source or destination.
type Target struct {
	Name   string
	Format PixelFormat
	Stream bool
	Ext    string // lower-case, with leading dot
}

// Resolve derives the pixel format, stream flag and extension from a name.
// Unusable names resolve to None together with ErrUnrecognizedFormat.
func Resolve(name string) (Target, error) {
	t := Target{Name: name}
	if len(name) < minNameLen {
		return t, fmt.Errorf("%w: invalid file type %q", ir.ErrUnrecognizedFormat, name)
	}

	if strings.HasSuffix(name, StreamSuffix) {
		t.Stream = true
		t.Ext = "." + strings.TrimSuffix(name, StreamSuffix)
	} else {
		p := strings.LastIndex(name, ".")
		if p <= 0 || strings.ContainsAny(name[p:], `/\`) {
			return t, fmt.Errorf("%w: invalid file type %q", ir.ErrUnrecognizedFormat, name)
		}
		t.Ext = name[p:]
	}

	t.Ext = strings.ToLower(t.Ext)
	switch t.Ext {
	case ".ppm":
		t.Format = YUV
	case ".nv21":
		t.Format = NV21
	default:
		t.Format = RGB
	}
	return t, nil
}
