package format

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/suzumura-ss/color-converter/internal/imagecodec"
	"github.com/suzumura-ss/color-converter/internal/ir"
	"github.com/suzumura-ss/color-converter/internal/pixmap"
)

// Dispatcher decodes and encodes rasters by name. Names ending in ":-" use
// Stdin/Stdout; all other names are files.
type Dispatcher struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Resample pixmap.ResampleOptions
	Encoder  imagecodec.EncoderOptions
	Logger   *slog.Logger
}

// NewDispatcher returns a Dispatcher bound to the given streams with default
// resampling and encoder settings.
func NewDispatcher(stdin io.Reader, stdout io.Writer) *Dispatcher {
	return &Dispatcher{
		Stdin:    stdin,
		Stdout:   stdout,
		Resample: pixmap.DefaultResample,
		Encoder:  imagecodec.EncoderOptions{Quality: imagecodec.DefaultQuality},
	}
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

// Decode reads the raster named by name. The returned raster is 3-channel:
// R,G,B for the RGB family and Y,U,V for the YUV family.
func (d *Dispatcher) Decode(name string) (*ir.Raster, Target, error) {
	t, err := Resolve(name)
	if err != nil {
		return nil, t, err
	}

	var img *ir.Raster
	if t.Stream {
		if d.Stdin == nil {
			return nil, t, fmt.Errorf("%w: no input stream for %q", ir.ErrIO, name)
		}
		img, err = d.decodeFrom(t, d.Stdin)
	} else {
		img, err = d.decodeFile(t)
	}
	if err != nil {
		return nil, t, fmt.Errorf("decoding %s: %w", name, err)
	}

	d.logger().Debug("decoded",
		"name", name, "format", t.Format.String(), "stream", t.Stream,
		"width", img.Width, "height", img.Height)
	return img, t, nil
}

func (d *Dispatcher) decodeFile(t Target) (*ir.Raster, error) {
	f, err := os.Open(t.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrIO, err)
	}
	defer f.Close()
	return d.decodeFrom(t, f)
}

func (d *Dispatcher) decodeFrom(t Target, r io.Reader) (*ir.Raster, error) {
	switch t.Format {
	case YUV:
		return pixmap.Decode(pixmap.Packed, r, d.Resample)
	case NV21:
		return pixmap.Decode(pixmap.Planar, r, d.Resample)
	case RGB:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ir.ErrIO, err)
		}
		return imagecodec.DecodeRGB(data)
	default:
		return nil, fmt.Errorf("%w: %s", ir.ErrUnrecognizedFormat, t.Format)
	}
}

// Encode writes img to the destination named by name. The complete output is
// built in memory first; files are replaced atomically and streams receive a
// single write.
func (d *Dispatcher) Encode(name string, img *ir.Raster) (Target, error) {
	t, err := Resolve(name)
	if err != nil {
		return t, err
	}

	data, err := d.encodeBytes(t, img)
	if err != nil {
		return t, fmt.Errorf("encoding %s: %w", name, err)
	}

	if t.Stream {
		if d.Stdout == nil {
			return t, fmt.Errorf("%w: no output stream for %q", ir.ErrIO, name)
		}
		n, err := d.Stdout.Write(data)
		if err == nil && n < len(data) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return t, fmt.Errorf("writing %s: %w: %v", name, ir.ErrIO, err)
		}
	} else if err := writeFileAtomic(t.Name, data, 0644); err != nil {
		return t, err
	}

	d.logger().Debug("encoded",
		"name", name, "format", t.Format.String(), "stream", t.Stream, "bytes", len(data))
	return t, nil
}

func (d *Dispatcher) encodeBytes(t Target, img *ir.Raster) ([]byte, error) {
	var buf bytes.Buffer
	switch t.Format {
	case YUV:
		if err := pixmap.Encode(pixmap.Packed, &buf, img, d.Resample); err != nil {
			return nil, err
		}
	case NV21:
		if err := pixmap.Encode(pixmap.Planar, &buf, img, d.Resample); err != nil {
			return nil, err
		}
	case RGB:
		return imagecodec.Encode(t.Ext, img, d.Encoder)
	default:
		return nil, fmt.Errorf("%w: %s", ir.ErrUnrecognizedFormat, t.Format)
	}
	return buf.Bytes(), nil
}
