package imagecodec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

func testRaster() *ir.Raster {
	r := ir.NewRaster(8, 4, 3)
	for i := range r.Pixels {
		r.Pixels[i] = byte(i * 7)
	}
	return r
}

func TestLosslessRoundTrip(t *testing.T) {
	src := testRaster()
	for _, ext := range []string{".png", ".PNG", ".bmp", ".tif", ".tiff"} {
		data, err := Encode(ext, src, EncoderOptions{})
		if err != nil {
			t.Fatalf("Encode(%s): %v", ext, err)
		}
		got, err := DecodeRGB(data)
		if err != nil {
			t.Fatalf("DecodeRGB(%s): %v", ext, err)
		}
		if got.Width != src.Width || got.Height != src.Height {
			t.Errorf("%s: decoded %dx%d, want %dx%d", ext, got.Width, got.Height, src.Width, src.Height)
		}
		if !bytes.Equal(got.Pixels, src.Pixels) {
			t.Errorf("%s: pixels changed in lossless round trip", ext)
		}
	}
}

func TestJPEGRoundTrip(t *testing.T) {
	src := ir.NewRaster(16, 16, 3)
	for i := 0; i < 16*16; i++ {
		src.Pixels[i*3], src.Pixels[i*3+1], src.Pixels[i*3+2] = 200, 100, 50
	}

	data, err := Encode(".jpg", src, EncoderOptions{Quality: 100})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Fatal("output is not a valid JPEG (bad FFD8 magic)")
	}

	got, err := DecodeRGB(data)
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	for i, want := range src.Pixels {
		d := int(got.Pixels[i]) - int(want)
		if d < -4 || d > 4 {
			t.Fatalf("byte %d = %d, want about %d", i, got.Pixels[i], want)
		}
	}
}

func TestGIFEncodes(t *testing.T) {
	data, err := Encode(".gif", testRaster(), EncoderOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Format != "gif" || info.ColorSpace != "Paletted" {
		t.Errorf("GetInfo = %+v, want paletted gif", info)
	}
}

func TestEncodeUnknownExtension(t *testing.T) {
	for _, ext := range []string{".xyz", ".webp", ""} {
		if _, err := Encode(ext, testRaster(), EncoderOptions{}); !errors.Is(err, ir.ErrUnrecognizedFormat) {
			t.Errorf("Encode(%q): expected ErrUnrecognizedFormat, got %v", ext, err)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image at all")} {
		if _, err := DecodeRGB(data); !errors.Is(err, ir.ErrDelegateCodec) {
			t.Errorf("DecodeRGB(%q): expected ErrDelegateCodec, got %v", data, err)
		}
	}
}

func TestGetInfo(t *testing.T) {
	data, err := Encode(".png", testRaster(), EncoderOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Format != "png" || info.Width != 8 || info.Height != 4 {
		t.Errorf("GetInfo = %+v", info)
	}
}

func TestClampQuality(t *testing.T) {
	cases := map[int]int{0: DefaultQuality, -5: 1, 1: 1, 85: 85, 250: 100}
	for in, want := range cases {
		if got := ClampQuality(in); got != want {
			t.Errorf("ClampQuality(%d) = %d, want %d", in, got, want)
		}
	}
}
