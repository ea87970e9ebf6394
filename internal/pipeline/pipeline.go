package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/suzumura-ss/color-converter/internal/color"
	"github.com/suzumura-ss/color-converter/internal/format"
	"github.com/suzumura-ss/color-converter/internal/ir"
)

// Mode selects when the RGB↔YUV transform runs.
type Mode int

const (
	Auto  Mode = iota // transform only when source and destination families differ
	ToRGB             // always YUV → RGB
	ToYUV             // always RGB → YUV
	Copy              // never transform
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "convert":
		return Auto, nil
	case "torgb":
		return ToRGB, nil
	case "toyuv":
		return ToYUV, nil
	case "copy":
		return Copy, nil
	default:
		return 0, fmt.Errorf("unknown conversion mode: %q", s)
	}
}

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case ToRGB:
		return "torgb"
	case ToYUV:
		return "toyuv"
	case Copy:
		return "copy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is how far a conversion got.
type State int

const (
	Started State = iota
	Decoded
	Transformed
	Encoded
)

func (s State) String() string {
	switch s {
	case Started:
		return "started"
	case Decoded:
		return "decoded"
	case Transformed:
		return "transformed"
	case Encoded:
		return "encoded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options controls a conversion run.
type Options struct {
	Mode   Mode
	Logger *slog.Logger
}

// Result holds the outcome of a pipeline run.
type Result struct {
	State       State
	SrcFormat   format.PixelFormat
	DstFormat   format.PixelFormat
	Width       int
	Height      int
	Transformed bool
	Direction   color.Direction // valid when Transformed
}

// Run executes decode → color transform → encode from src to dst. The
// returned Result is non-nil even on failure and records the last state
// reached.
func Run(d *format.Dispatcher, src, dst string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	res := &Result{State: Started}

	// 1. Resolve destination up front so a bad name fails before any I/O
	out, err := format.Resolve(dst)
	if err != nil {
		return res, fmt.Errorf("destination: %w", err)
	}
	res.DstFormat = out.Format

	// 2. Decode
	img, in, err := d.Decode(src)
	res.SrcFormat = in.Format
	if err != nil {
		return res, fmt.Errorf("decode: %w", err)
	}
	res.State = Decoded
	res.Width, res.Height = img.Width, img.Height

	// 3. Color transform
	img, dir, applied, err := Transform(img, opts.Mode, in.Format, out.Format)
	if err != nil {
		return res, fmt.Errorf("color transform: %w", err)
	}
	if applied {
		res.Transformed = true
		res.Direction = dir
		log.Debug("transformed", "direction", dir.String())
	} else {
		log.Debug("transform skipped", "mode", opts.Mode.String(),
			"src", in.Format.String(), "dst", out.Format.String())
	}
	res.State = Transformed

	// 4. Encode
	if _, err := d.Encode(dst, img); err != nil {
		return res, fmt.Errorf("encode: %w", err)
	}
	res.State = Encoded
	return res, nil
}

// Transform runs the color step of a conversion on a decoded raster. When
// no transform applies img is returned unchanged.
func Transform(img *ir.Raster, mode Mode, src, dst format.PixelFormat) (*ir.Raster, color.Direction, bool, error) {
	dir, apply := plan(mode, src, dst)
	if !apply {
		return img, dir, false, nil
	}
	out, err := color.TransformPixels(img, dir)
	if err != nil {
		return nil, dir, false, err
	}
	return out, dir, true, nil
}

// plan decides whether a transform runs and in which direction.
func plan(mode Mode, src, dst format.PixelFormat) (color.Direction, bool) {
	switch mode {
	case ToRGB:
		return color.YUVToRGBDirection, true
	case ToYUV:
		return color.RGBToYUVDirection, true
	case Copy:
		return 0, false
	}
	if src.IsYUV() == dst.IsYUV() {
		return 0, false
	}
	if src.IsYUV() {
		return color.YUVToRGBDirection, true
	}
	return color.RGBToYUVDirection, true
}

// Describe summarises a result for logs.
func (r *Result) Describe() string {
	action := "copied"
	if r.Transformed {
		action = r.Direction.String()
	}
	return fmt.Sprintf("%dx%d %s → %s (%s)", r.Width, r.Height, r.SrcFormat, r.DstFormat, action)
}
