// square renders a single white square centered on the canvas and nudges it
// around a small circle, one step per tick.
package main

import (
	"bytes"
	"log"
	"math"

	"github.com/splatkit/splat"
)

const (
	canvasW = 800
	canvasH = 600
	side    = 120
)

func main() {
	dims := splat.Dimensions{Width: side, Height: side}
	pix := bytes.Repeat([]byte{255, 255, 255, 255}, dims.Area())
	img, err := splat.NewImage(pix, dims, "square")
	if err != nil {
		log.Fatalf("build square image: %v", err)
	}

	centerX := canvasW/2 - side/2
	centerY := canvasH/2 - side/2
	square := splat.NewPositionedSprite(
		splat.NewSprite(img, "square"),
		splat.Coordinates{X: centerX, Y: centerY},
	)

	display, err := splat.NewDisplay(canvasW, canvasH, 1000/60)
	if err != nil {
		log.Fatalf("create display: %v", err)
	}
	display.State.Canvas.BackgroundColor = splat.RGBPixel{16, 16, 64}
	display.State.Canvas.Sprites = append(display.State.Canvas.Sprites, square)

	display.OnTick = func(tick int) {
		angle := float64(tick) / 30
		square.Coordinates.X = centerX + int(math.Round(60*math.Cos(angle)))
		square.Coordinates.Y = centerY + int(math.Round(60*math.Sin(angle)))
		display.Dirty = true
	}

	if err := display.Run("splat: square"); err != nil {
		log.Fatalf("run: %v", err)
	}
}
