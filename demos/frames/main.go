// frames swaps a sprite between two keyed frames cut from an atlas sheet.
// The sprite itself is never rebuilt — only its active key changes.
package main

import (
	"bytes"
	"log"

	"github.com/splatkit/splat"
)

const manifest = `{
  "frames": {
    "on":  {"frame": {"x": 0,   "y": 0, "w": 160, "h": 160}},
    "off": {"frame": {"x": 160, "y": 0, "w": 160, "h": 160}}
  }
}`

// buildSheet makes a 320x160 sheet: an orange square next to a teal one.
func buildSheet() (*splat.Image, error) {
	dims := splat.Dimensions{Width: 320, Height: 160}
	pix := make([]byte, 0, dims.AreaRGBABytes())
	orange := []byte{255, 160, 0, 255}
	teal := []byte{0, 160, 160, 255}
	for row := 0; row < dims.Height; row++ {
		pix = append(pix, bytes.Repeat(orange, 160)...)
		pix = append(pix, bytes.Repeat(teal, 160)...)
	}
	return splat.NewImage(pix, dims, "sheet")
}

func main() {
	sheet, err := buildSheet()
	if err != nil {
		log.Fatalf("build sheet: %v", err)
	}
	atlas, err := splat.LoadAtlas([]byte(manifest), sheet)
	if err != nil {
		log.Fatalf("load atlas: %v", err)
	}
	blinker, err := atlas.Sprite("blinker", "on", "off")
	if err != nil {
		log.Fatalf("build sprite: %v", err)
	}

	display, err := splat.NewDisplay(800, 600, 1000/60)
	if err != nil {
		log.Fatalf("create display: %v", err)
	}
	placed := splat.NewPositionedSprite(blinker, splat.Coordinates{X: 320, Y: 220})
	display.State.Canvas.Sprites = append(display.State.Canvas.Sprites, placed)

	display.OnTick = func(tick int) {
		if tick%30 != 0 {
			return
		}
		if placed.ActiveKey == "on" {
			placed.ActiveKey = "off"
		} else {
			placed.ActiveKey = "on"
		}
		display.Dirty = true
	}

	if err := display.Run("splat: frame swap"); err != nil {
		log.Fatalf("run: %v", err)
	}
}
