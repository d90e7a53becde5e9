package splat

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 scalar fields of the scene state
// simultaneously. Create one via TweenPosition or TweenBackground and call
// Update(dt) once per tick; the group writes the eased values back into the
// state, so the host only needs to set the dirty flag.
//
// There is no global animation manager — hosts call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	apply  func(vals [3]float32)
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values back to
// the target fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	var vals [3]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		vals[i] = v
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
}

// roundToInt converts an eased float back to a pixel value.
func roundToInt(v float32) int {
	return int(math.Round(float64(v)))
}

// TweenPosition creates a TweenGroup that moves a positioned sprite to the
// given canvas coordinates over duration seconds using the easing function.
func TweenPosition(ps *PositionedSprite, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(ps.Coordinates.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(ps.Coordinates.Y), float32(toY), duration, fn)
	g.apply = func(vals [3]float32) {
		ps.Coordinates.X = roundToInt(vals[0])
		ps.Coordinates.Y = roundToInt(vals[1])
	}
	return g
}

// TweenBackground creates a TweenGroup that fades the canvas background
// color to the target over duration seconds using the easing function.
func TweenBackground(c *Canvas, to RGBPixel, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(c.BackgroundColor[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(vals [3]float32) {
		for i := 0; i < 3; i++ {
			c.BackgroundColor[i] = roundToInt(vals[i])
		}
	}
	return g
}
