// animation sweeps a sprite back and forth across the canvas with eased
// tweens, scrolling off both edges to show clipping, while the background
// slowly fades between two colors.
package main

import (
	"bytes"
	"log"

	"github.com/tanema/gween/ease"

	"github.com/splatkit/splat"
)

const (
	canvasW = 800
	canvasH = 600
	spriteW = 96
	spriteH = 96
)

func main() {
	dims := splat.Dimensions{Width: spriteW, Height: spriteH}
	img, err := splat.NewImage(
		bytes.Repeat([]byte{240, 240, 240, 255}, dims.Area()), dims, "comet")
	if err != nil {
		log.Fatalf("build sprite image: %v", err)
	}
	comet := splat.NewPositionedSprite(
		splat.NewSprite(img, "comet"),
		splat.Coordinates{X: -spriteW, Y: canvasH/2 - spriteH/2},
	)

	display, err := splat.NewDisplay(canvasW, canvasH, 1000/60)
	if err != nil {
		log.Fatalf("create display: %v", err)
	}
	display.State.Canvas.Sprites = append(display.State.Canvas.Sprites, comet)

	dt := float32(display.State.TickRateMS) / 1000

	// Ping-pong between fully off the left edge and fully off the right.
	sweep := splat.TweenPosition(comet, canvasW, comet.Coordinates.Y, 3, ease.InOutQuad)
	goingRight := true

	fade := splat.TweenBackground(display.State.Canvas, splat.RGBPixel{64, 0, 64}, 8, ease.Linear)

	display.OnTick = func(tick int) {
		sweep.Update(dt)
		if sweep.Done {
			goingRight = !goingRight
			toX := canvasW
			if !goingRight {
				toX = -spriteW
			}
			sweep = splat.TweenPosition(comet, toX, comet.Coordinates.Y, 3, ease.InOutQuad)
		}
		if !fade.Done {
			fade.Update(dt)
		}
		display.Dirty = true
	}

	if err := display.Run("splat: animation"); err != nil {
		log.Fatalf("run: %v", err)
	}
}
