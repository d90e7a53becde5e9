// colorcycle steps the canvas background through a palette, one color
// every 16 ticks. Demonstrates the dirty flag: only ticks that change the
// state do any compositing work.
package main

import (
	"log"

	"github.com/splatkit/splat"
)

var palette = []splat.RGBPixel{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{0, 255, 255},
	{255, 0, 255},
}

func main() {
	display, err := splat.NewDisplay(800, 600, 1000/60)
	if err != nil {
		log.Fatalf("create display: %v", err)
	}

	next := 0
	display.OnTick = func(tick int) {
		if tick%16 != 1 {
			return
		}
		display.State.Canvas.BackgroundColor = palette[next]
		next = (next + 1) % len(palette)
		display.Dirty = true
	}

	if err := display.Run("splat: color cycle"); err != nil {
		log.Fatalf("run: %v", err)
	}
}
