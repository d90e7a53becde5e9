package splat

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestNewImage_LengthMismatch(t *testing.T) {
	dims := Dimensions{Width: 2, Height: 2}
	_, err := NewImage(make([]byte, 15), dims, "short")
	if err == nil {
		t.Fatal("NewImage with short data: err = nil, want length error")
	}
	if !strings.Contains(err.Error(), "want 16") {
		t.Errorf("err = %q, want expected-length message", err)
	}
}

func TestNewImage_InvalidDimensions(t *testing.T) {
	_, err := NewImage(nil, Dimensions{Width: 0, Height: 2}, "flat")
	if err == nil {
		t.Fatal("NewImage with zero width: err = nil, want error")
	}
}

func TestNewImage_CopiesData(t *testing.T) {
	dims := Dimensions{Width: 1, Height: 1}
	pix := []byte{1, 2, 3, 4}
	img, err := NewImage(pix, dims, "")
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	pix[0] = 99
	if img.Pix()[0] != 1 {
		t.Errorf("mutating the source slice changed the image: Pix()[0] = %d, want 1", img.Pix()[0])
	}
}

func TestNewImage_DefaultName(t *testing.T) {
	img := mustSolidImage(t, Dimensions{Width: 1, Height: 1}, testWhite, "")
	if img.Name() != "(untitled)" {
		t.Errorf("Name() = %q, want %q", img.Name(), "(untitled)")
	}
	if got := img.String(); got != "<image: (untitled) 1x1>" {
		t.Errorf("String() = %q, want %q", got, "<image: (untitled) 1x1>")
	}
}

func TestImage_Equal(t *testing.T) {
	dims := Dimensions{Width: 2, Height: 2}
	a := mustSolidImage(t, dims, testWhite, "a")
	b := mustSolidImage(t, dims, testWhite, "b")
	c := mustSolidImage(t, dims, testBlack, "c")
	d := mustSolidImage(t, Dimensions{Width: 4, Height: 1}, testWhite, "d")

	if !a.Equal(a) {
		t.Error("a.Equal(a) = false, want true")
	}
	if !a.Equal(b) {
		t.Error("a.Equal(b) = false, want true (names do not participate)")
	}
	if a.Equal(c) {
		t.Error("a.Equal(c) = true, want false (different pixels)")
	}
	if a.Equal(d) {
		t.Error("a.Equal(d) = true, want false (same bytes, different dimensions)")
	}
	if a.Equal(nil) {
		t.Error("a.Equal(nil) = true, want false")
	}
}

func TestFromImage_ConvertsToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	img, err := FromImage(src, "tiny")
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	want := Dimensions{Width: 2, Height: 1}
	if img.Dimensions() != want {
		t.Fatalf("Dimensions() = %s, want %s", img.Dimensions(), want)
	}
	wantPix := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(img.Pix(), wantPix) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), wantPix)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// A source whose bounds do not start at the origin must still convert
	// from its own top-left corner.
	src := image.NewNRGBA(image.Rect(3, 5, 5, 6))
	src.SetNRGBA(3, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(4, 5, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	img, err := FromImage(src, "offset")
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	wantPix := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	if !bytes.Equal(img.Pix(), wantPix) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), wantPix)
	}
}

func TestFromImage_EmptyBounds(t *testing.T) {
	if _, err := FromImage(image.NewNRGBA(image.Rectangle{}), "empty"); err == nil {
		t.Error("FromImage with empty bounds: err = nil, want error")
	}
}

func TestDecodeImage_PNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(90 * y), B: 7, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	img, err := DecodeImage(&buf, "roundtrip")
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Dimensions() != (Dimensions{Width: 3, Height: 2}) {
		t.Fatalf("Dimensions() = %s, want 3x2", img.Dimensions())
	}
	if !bytes.Equal(img.Pix(), src.Pix) {
		t.Error("decoded pixels differ from encoded source")
	}
}

func TestDecodeImage_Garbage(t *testing.T) {
	if _, err := DecodeImage(strings.NewReader("not an image"), "junk"); err == nil {
		t.Error("DecodeImage(garbage): err = nil, want decode error")
	}
}
