package format

import (
	"errors"
	"testing"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		format PixelFormat
		stream bool
		ext    string
	}{
		{"image.ppm", YUV, false, ".ppm"},
		{"image.PPM", YUV, false, ".ppm"},
		{"frame.nv21", NV21, false, ".nv21"},
		{"FRAME.NV21", NV21, false, ".nv21"},
		{"photo.png", RGB, false, ".png"},
		{"photo.JPG", RGB, false, ".jpg"},
		{"dir.v2/photo.jpeg", RGB, false, ".jpeg"},
		{"jpg:-", RGB, true, ".jpg"},
		{"ppm:-", YUV, true, ".ppm"},
		{"NV21:-", NV21, true, ".nv21"},
		{"png:-", RGB, true, ".png"},
	}
	for _, tc := range cases {
		got, err := Resolve(tc.name)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.name, err)
			continue
		}
		if got.Format != tc.format || got.Stream != tc.stream || got.Ext != tc.ext {
			t.Errorf("Resolve(%q) = %+v, want format=%s stream=%v ext=%s",
				tc.name, got, tc.format, tc.stream, tc.ext)
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	upper, err1 := Resolve("image.PPM")
	lower, err2 := Resolve("image.ppm")
	if err1 != nil || err2 != nil {
		t.Fatalf("Resolve: %v, %v", err1, err2)
	}
	if upper.Format != lower.Format {
		t.Errorf("image.PPM → %s, image.ppm → %s", upper.Format, lower.Format)
	}
}

func TestResolveNone(t *testing.T) {
	for _, name := range []string{"", "a.b", "x.pn", "noextension", ".png", "dir.d/file"} {
		got, err := Resolve(name)
		if got.Format != None {
			t.Errorf("Resolve(%q).Format = %s, want NONE", name, got.Format)
		}
		if !errors.Is(err, ir.ErrUnrecognizedFormat) {
			t.Errorf("Resolve(%q): expected ErrUnrecognizedFormat, got %v", name, err)
		}
	}
}

func TestFamilies(t *testing.T) {
	if RGB.IsYUV() || None.IsYUV() {
		t.Error("RGB and NONE must not be YUV family")
	}
	if !YUV.IsYUV() || !NV21.IsYUV() {
		t.Error("YUV and NV21 must be YUV family")
	}
}
