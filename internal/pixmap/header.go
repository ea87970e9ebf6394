// Package pixmap reads and writes the two binary raster containers: the
// packed 3-channel "P6" pixmap and the planar "N2" NV21 pixmap. Both share
// the same ASCII header grammar
//
//	<magic> <width> <height> <depth>
//
// with any whitespace between tokens and exactly one whitespace byte after
// the depth, followed by the raw body.
package pixmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

const (
	MagicPPM  = "P6"
	MagicNV21 = "N2"
	MaxValue  = 255 // only supported depth

	maxTokenLen = 32
	maxPixels   = 1 << 30
)

// Header is a parsed container header.
type Header struct {
	Magic  string
	Width  int
	Height int
	Depth  int
}

func (h Header) String() string {
	return fmt.Sprintf("%s %dx%d depth=%d", h.Magic, h.Width, h.Height, h.Depth)
}

// ReadHeader scans the four header tokens from r and validates them against
// the expected magic. On success r is positioned at the first body byte.
func ReadHeader(r *bufio.Reader, magic string) (Header, error) {
	var h Header
	var err error

	if h.Magic, err = readToken(r); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if h.Magic != magic {
		return h, fmt.Errorf("%w: expected magic %q, got %q", ir.ErrHeaderMismatch, magic, h.Magic)
	}
	if h.Width, err = readValue(r, "width"); err != nil {
		return h, err
	}
	if h.Height, err = readValue(r, "height"); err != nil {
		return h, err
	}
	if h.Depth, err = readValue(r, "depth"); err != nil {
		return h, err
	}

	if h.Width <= 0 || h.Height <= 0 {
		return h, fmt.Errorf("%w: invalid size %dx%d", ir.ErrHeaderMismatch, h.Width, h.Height)
	}
	if h.Width > maxPixels/h.Height {
		return h, fmt.Errorf("%w: %dx%d exceeds %d pixels", ir.ErrHeaderMismatch, h.Width, h.Height, maxPixels)
	}
	if h.Depth != MaxValue {
		return h, fmt.Errorf("%w: expected depth %d, got %d", ir.ErrHeaderMismatch, MaxValue, h.Depth)
	}
	return h, nil
}

// readToken skips leading whitespace and returns the next token. The single
// whitespace byte that ends the token is consumed.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: header ended early", ir.ErrTruncatedData)
			}
			return "", fmt.Errorf("%w: %v", ir.ErrIO, err)
		}
		if isSpace(c) {
			if len(tok) == 0 {
				continue
			}
			return string(tok), nil
		}
		if len(tok) == maxTokenLen {
			return "", fmt.Errorf("%w: header token longer than %d bytes", ir.ErrHeaderMismatch, maxTokenLen)
		}
		tok = append(tok, c)
	}
}

func readValue(r *bufio.Reader, name string) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ir.ErrHeaderMismatch, name, tok)
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func bufferedReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// readBody fills buf completely or fails; a short body is never returned.
func readBody(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: expected %d body bytes, got %d", ir.ErrTruncatedData, len(buf), n)
	default:
		return fmt.Errorf("%w: reading body: %v", ir.ErrIO, err)
	}
}

// writeAll writes every chunk in order, turning short writes into ErrIO.
func writeAll(w io.Writer, chunks ...[]byte) (int64, error) {
	var total int64
	for _, c := range chunks {
		n, err := w.Write(c)
		total += int64(n)
		if err == nil && n < len(c) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return total, fmt.Errorf("%w: %v", ir.ErrIO, err)
		}
	}
	return total, nil
}
