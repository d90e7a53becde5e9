package splat

import (
	"bytes"
	"testing"
)

// --- Shared test fixtures ---

var (
	testBlack = RGBPixel{0, 0, 0}
	testWhite = RGBPixel{255, 255, 255}
)

// solidPixels builds a solid-color opaque RGBA buffer covering dims.
func solidPixels(dims Dimensions, c RGBPixel) []byte {
	px := c.rgba()
	return bytes.Repeat(px[:], dims.Area())
}

// mustSolidImage builds a solid-color image or fails the test.
func mustSolidImage(t *testing.T, dims Dimensions, c RGBPixel, name string) *Image {
	t.Helper()
	img, err := NewImage(solidPixels(dims, c), dims, name)
	if err != nil {
		t.Fatalf("NewImage(%s): %v", dims, err)
	}
	return img
}

// testState builds the canonical fixture: a 5x5 black canvas with one 3x3
// white sprite at the origin.
func testState(t *testing.T) *State {
	t.Helper()
	state := NewState()
	state.Canvas.Dimensions = Dimensions{Width: 5, Height: 5}
	sprite := NewSprite(mustSolidImage(t, Dimensions{Width: 3, Height: 3}, testWhite, "block"), "block")
	state.Canvas.Sprites = append(state.Canvas.Sprites,
		NewPositionedSprite(sprite, Coordinates{}))
	return state
}

// frameRows splits a rendered frame buffer into per-row byte slices.
func frameRows(frame []byte, dims Dimensions) [][]byte {
	stride := dims.Width * BytesPerPixel
	rows := make([][]byte, 0, dims.Height)
	for i := 0; i < len(frame); i += stride {
		rows = append(rows, frame[i:i+stride])
	}
	return rows
}

// pixelRun repeats one color's RGBA bytes n times.
func pixelRun(c RGBPixel, n int) []byte {
	px := c.rgba()
	return bytes.Repeat(px[:], n)
}

// errorKeys returns the sorted key set of an ErrorMap.
func errorKeys(m ErrorMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// wantKeys asserts the exact key set of an ErrorMap.
func wantKeys(t *testing.T, m ErrorMap, want ...string) {
	t.Helper()
	if len(m) != len(want) {
		t.Fatalf("error keys = %v, want %v", errorKeys(m), want)
	}
	for _, k := range want {
		if _, ok := m[k]; !ok {
			t.Fatalf("error keys = %v, want %v", errorKeys(m), want)
		}
	}
}
