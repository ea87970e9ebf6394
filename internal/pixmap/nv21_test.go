package pixmap

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/suzumura-ss/color-converter/internal/ir"
)

func nv21Stream(width, height, bodyLen int) []byte {
	data := []byte(fmt.Sprintf("N2 %d %d 255\n", width, height))
	for i := 0; i < bodyLen; i++ {
		data = append(data, byte(i))
	}
	return data
}

func TestNV21PlaneSizes(t *testing.T) {
	n := NewNV21(4, 4)
	if n.BytesY() != 16 {
		t.Errorf("BytesY = %d, want 16", n.BytesY())
	}
	if n.BytesVU() != 8 {
		t.Errorf("BytesVU = %d, want 8", n.BytesVU())
	}
}

func TestNV21OddSizesTruncate(t *testing.T) {
	cases := []struct {
		w, h          int
		cw, ch        int
		bytesY, bytVU int
	}{
		{5, 3, 2, 1, 15, 4},
		{3, 5, 1, 2, 15, 4},
		{1, 1, 0, 0, 1, 0},
		{7, 1, 3, 0, 7, 0},
	}
	for _, tc := range cases {
		n := NewNV21(tc.w, tc.h)
		cw, ch := n.SizeVU()
		if cw != tc.cw || ch != tc.ch {
			t.Errorf("%dx%d: SizeVU = %dx%d, want %dx%d", tc.w, tc.h, cw, ch, tc.cw, tc.ch)
		}
		if n.BytesY() != tc.bytesY || n.BytesVU() != tc.bytVU {
			t.Errorf("%dx%d: bytes = %d+%d, want %d+%d", tc.w, tc.h, n.BytesY(), n.BytesVU(), tc.bytesY, tc.bytVU)
		}
	}
}

func TestReadNV21(t *testing.T) {
	n, err := ReadNV21(bytes.NewReader(nv21Stream(4, 4, 24)))
	if err != nil {
		t.Fatalf("ReadNV21: %v", err)
	}
	if len(n.Y.Pixels) != 16 {
		t.Errorf("Y plane has %d samples, want 16", len(n.Y.Pixels))
	}
	if len(n.VU.Pixels) != 8 {
		t.Errorf("VU plane has %d bytes, want 8", len(n.VU.Pixels))
	}
	if n.VU.Pixels[0] != 16 || n.VU.Pixels[7] != 23 {
		t.Errorf("VU plane = %v, want bytes 16..23", n.VU.Pixels)
	}
}

func TestReadNV21Truncated(t *testing.T) {
	n, err := ReadNV21(bytes.NewReader(nv21Stream(4, 4, 20)))
	if !errors.Is(err, ir.ErrTruncatedData) {
		t.Fatalf("expected ErrTruncatedData, got %v", err)
	}
	if n != nil {
		t.Error("truncated read returned planes")
	}

	if _, err := DecodeNV21(bytes.NewReader(nv21Stream(4, 4, 20)), DefaultResample); !errors.Is(err, ir.ErrTruncatedData) {
		t.Errorf("DecodeNV21: expected ErrTruncatedData, got %v", err)
	}
}

func TestReadNV21RejectsPPMMagic(t *testing.T) {
	data := append([]byte("P6 4 4 255\n"), make([]byte, 24)...)
	if _, err := ReadNV21(bytes.NewReader(data)); !errors.Is(err, ir.ErrHeaderMismatch) {
		t.Errorf("expected ErrHeaderMismatch, got %v", err)
	}
}

func TestNV21WriteTo(t *testing.T) {
	n := NewNV21(4, 2)
	for i := range n.Y.Pixels {
		n.Y.Pixels[i] = byte(i)
	}
	n.VU.Pixels[0], n.VU.Pixels[1] = 200, 100
	n.VU.Pixels[2], n.VU.Pixels[3] = 201, 101

	var buf bytes.Buffer
	written, err := n.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := append([]byte("N2 4 2 255\n"), 0, 1, 2, 3, 4, 5, 6, 7, 200, 100, 201, 101)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteTo wrote %v, want %v", buf.Bytes(), want)
	}
	if written != int64(len(want)) {
		t.Errorf("WriteTo reported %d bytes, want %d", written, len(want))
	}
}

func TestNV21DecodeOrdersChannelsYUV(t *testing.T) {
	// One chroma sample: V=200, U=100.
	data := append([]byte("N2 2 2 255\n"), 10, 20, 30, 40, 200, 100)
	img, err := DecodeNV21(bytes.NewReader(data), DefaultResample)
	if err != nil {
		t.Fatalf("DecodeNV21: %v", err)
	}
	if err := img.Validate(3); err != nil {
		t.Fatalf("decoded raster: %v", err)
	}
	for i, y := range []byte{10, 20, 30, 40} {
		px := img.Pixels[i*3 : i*3+3]
		if px[0] != y || px[1] != 100 || px[2] != 200 {
			t.Errorf("pixel %d = %v, want [%d 100 200]", i, px, y)
		}
	}
}

func TestNV21ConstantChromaRoundTrip(t *testing.T) {
	src := ir.NewRaster(6, 4, 3)
	for i := 0; i < 6*4; i++ {
		src.Pixels[i*3] = byte(i * 10)
		src.Pixels[i*3+1] = 90
		src.Pixels[i*3+2] = 200
	}

	var buf bytes.Buffer
	if err := EncodeNV21(&buf, src, DefaultResample); err != nil {
		t.Fatalf("EncodeNV21: %v", err)
	}

	n, err := ReadNV21(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadNV21: %v", err)
	}
	for i := 0; i < len(n.VU.Pixels); i += 2 {
		if n.VU.Pixels[i] != 200 || n.VU.Pixels[i+1] != 90 {
			t.Fatalf("VU sample %d = %v, want [200 90]", i/2, n.VU.Pixels[i:i+2])
		}
	}

	back, err := DecodeNV21(bytes.NewReader(buf.Bytes()), DefaultResample)
	if err != nil {
		t.Fatalf("DecodeNV21: %v", err)
	}
	if !bytes.Equal(back.Pixels, src.Pixels) {
		t.Errorf("round trip changed pixels:\n got %v\nwant %v", back.Pixels, src.Pixels)
	}
}

func TestNV21OddSizeRoundTrip(t *testing.T) {
	src := ir.NewRaster(5, 3, 3)
	for i := range src.Pixels {
		src.Pixels[i] = byte(i)
	}

	var buf bytes.Buffer
	if err := EncodeNV21(&buf, src, DefaultResample); err != nil {
		t.Fatalf("EncodeNV21: %v", err)
	}
	header := "N2 5 3 255\n"
	if want := len(header) + 15 + 4; buf.Len() != want {
		t.Errorf("encoded %d bytes, want %d", buf.Len(), want)
	}

	back, err := DecodeNV21(&buf, DefaultResample)
	if err != nil {
		t.Fatalf("DecodeNV21: %v", err)
	}
	if back.Width != 5 || back.Height != 3 {
		t.Errorf("decoded %dx%d, want 5x3", back.Width, back.Height)
	}
	for i := 0; i < 15; i++ {
		if back.Pixels[i*3] != src.Pixels[i*3] {
			t.Errorf("Y sample %d = %d, want %d", i, back.Pixels[i*3], src.Pixels[i*3])
		}
	}
}

func TestNV21OddWidthKeepsChromaOnLumaBlocks(t *testing.T) {
	// Two chroma samples: block 0 is (V=50,U=50), block 1 is (V=200,U=200).
	vu := []byte{50, 50, 200, 200}
	odd := append([]byte("N2 5 2 255\n"), make([]byte, 10)...)
	odd = append(odd, vu...)
	even := append([]byte("N2 4 2 255\n"), make([]byte, 8)...)
	even = append(even, vu...)

	for _, k := range []Kernel{KernelBilinear, KernelNearest, KernelApproxBilinear, KernelCatmullRom} {
		opts := ResampleOptions{Upsample: k, Downsample: k}
		got, err := DecodeNV21(bytes.NewReader(odd), opts)
		if err != nil {
			t.Fatalf("%s: DecodeNV21 5x2: %v", k, err)
		}
		want, err := DecodeNV21(bytes.NewReader(even), opts)
		if err != nil {
			t.Fatalf("%s: DecodeNV21 4x2: %v", k, err)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 5; x++ {
				g := got.Pixels[(y*5+x)*3:]
				w := want.Pixels[(y*4+min(x, 3))*3:]
				if g[1] != w[1] || g[2] != w[2] {
					t.Errorf("%s: chroma at (%d,%d) = %v, want %v", k, x, y, g[1:3], w[1:3])
				}
			}
		}
	}

	nearest := ResampleOptions{Upsample: KernelNearest, Downsample: KernelNearest}
	img, err := DecodeNV21(bytes.NewReader(odd), nearest)
	if err != nil {
		t.Fatalf("DecodeNV21: %v", err)
	}
	var row []byte
	for x := 0; x < 5; x++ {
		row = append(row, img.Pixels[x*3+1])
	}
	if want := []byte{50, 50, 200, 200, 200}; !bytes.Equal(row, want) {
		t.Errorf("U along row 0 = %v, want %v", row, want)
	}
}

func TestNV21OddWidthEncodeIgnoresUnpairedColumn(t *testing.T) {
	// Chroma edge between columns 1 and 2; column 4 has no chroma sample.
	odd := ir.NewRaster(5, 2, 3)
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			px := odd.Pixels[(y*5+x)*3:]
			px[0], px[1], px[2] = byte(x+y*5), 40, 220
			if x >= 2 {
				px[1], px[2] = 220, 40
			}
		}
	}
	even := ir.NewRaster(4, 2, 3)
	for y := 0; y < 2; y++ {
		copy(even.Pixels[y*12:(y+1)*12], odd.Pixels[y*15:y*15+12])
	}

	for _, k := range []Kernel{KernelBilinear, KernelNearest, KernelApproxBilinear, KernelCatmullRom} {
		opts := ResampleOptions{Upsample: k, Downsample: k}
		got, err := FromRaster(odd, opts)
		if err != nil {
			t.Fatalf("%s: FromRaster 5x2: %v", k, err)
		}
		want, err := FromRaster(even, opts)
		if err != nil {
			t.Fatalf("%s: FromRaster 4x2: %v", k, err)
		}
		if !bytes.Equal(got.VU.Pixels, want.VU.Pixels) {
			t.Errorf("%s: VU = %v, want %v", k, got.VU.Pixels, want.VU.Pixels)
		}
	}

	n, err := FromRaster(odd, ResampleOptions{Upsample: KernelNearest, Downsample: KernelNearest})
	if err != nil {
		t.Fatalf("FromRaster: %v", err)
	}
	if want := []byte{220, 40, 40, 220}; !bytes.Equal(n.VU.Pixels, want) {
		t.Errorf("nearest VU = %v, want %v", n.VU.Pixels, want)
	}
}

func TestExtendPlaneRepeatsEdges(t *testing.T) {
	p := &ir.Raster{Width: 2, Height: 1, Channels: 1, Pixels: []byte{1, 2}}
	got := extendPlane(p, 3, 2)
	if want := []byte{1, 2, 2, 1, 2, 2}; !bytes.Equal(got.Pixels, want) {
		t.Errorf("extendPlane = %v, want %v", got.Pixels, want)
	}
}

func TestNV21WithoutChromaIsNeutral(t *testing.T) {
	data := append([]byte("N2 1 1 255\n"), 77)
	img, err := DecodeNV21(bytes.NewReader(data), DefaultResample)
	if err != nil {
		t.Fatalf("DecodeNV21: %v", err)
	}
	if !bytes.Equal(img.Pixels, []byte{77, neutralChroma, neutralChroma}) {
		t.Errorf("pixels = %v, want [77 128 128]", img.Pixels)
	}

	var buf bytes.Buffer
	if err := EncodeNV21(&buf, img, DefaultResample); err != nil {
		t.Fatalf("EncodeNV21: %v", err)
	}
	if want := "N2 1 1 255\nM"; buf.String() != want {
		t.Errorf("encoded %q, want %q", buf.String(), want)
	}
}

func TestNearestUpsampleReplicatesBlocks(t *testing.T) {
	plane := &ir.Raster{Width: 2, Height: 2, Channels: 1, Pixels: []byte{1, 2, 3, 4}}
	got := scalePlane(plane, 4, 4, KernelNearest)
	want := []byte{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	if !bytes.Equal(got.Pixels, want) {
		t.Errorf("nearest upsample = %v, want %v", got.Pixels, want)
	}
}

func TestParseKernel(t *testing.T) {
	for _, name := range []string{"bilinear", "nearest", "approxbilinear", "catmullrom"} {
		k, err := ParseKernel(name)
		if err != nil {
			t.Fatalf("ParseKernel(%q): %v", name, err)
		}
		if k.String() != name {
			t.Errorf("ParseKernel(%q).String() = %q", name, k.String())
		}
	}
	if k, err := ParseKernel("Cubic"); err != nil || k != KernelCatmullRom {
		t.Errorf("ParseKernel(Cubic) = %v, %v", k, err)
	}
	if _, err := ParseKernel("lanczos"); err == nil {
		t.Error("expected error for unknown kernel")
	}
}

func TestContainerDispatch(t *testing.T) {
	src := &ir.Raster{Width: 2, Height: 2, Channels: 3, Pixels: bytes.Repeat([]byte{50, 60, 70}, 4)}
	for _, k := range []Kind{Packed, Planar} {
		var buf bytes.Buffer
		if err := Encode(k, &buf, src, DefaultResample); err != nil {
			t.Fatalf("%s: Encode: %v", k, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte(k.Magic())) {
			t.Errorf("%s: output starts with %q, want %q", k, buf.Bytes()[:2], k.Magic())
		}
		got, err := Decode(k, &buf, DefaultResample)
		if err != nil {
			t.Fatalf("%s: Decode: %v", k, err)
		}
		if !bytes.Equal(got.Pixels, src.Pixels) {
			t.Errorf("%s: round trip = %v, want %v", k, got.Pixels, src.Pixels)
		}
	}
}
