package splat

import "strconv"

// Defaults for a freshly constructed canvas and state.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultTickRateMS = 1000 / 60
)

// Canvas is the authoritative per-frame scene description: a background
// color, the canvas dimensions, and an ordered sprite list. List order is
// paint order — later sprites draw over earlier ones, and the background is
// always painted first. Hosts mutate all of it freely between renders.
type Canvas struct {
	BackgroundColor RGBPixel
	Dimensions      Dimensions
	Sprites         []*PositionedSprite
}

// NewCanvas creates an empty black canvas at the default size.
func NewCanvas() *Canvas {
	return &Canvas{
		Dimensions: Dimensions{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Validate checks dimensions, background color, and every sprite. Sprite
// errors nest under "sprites" keyed by list index.
func (c *Canvas) Validate() ErrorMap {
	errs := ErrorMap{}
	errs.merge("dimensions", c.Dimensions.Validate())
	errs.merge("background_color", c.BackgroundColor.Validate())

	spriteErrs := ErrorMap{}
	for i, ps := range c.Sprites {
		if ps == nil {
			spriteErrs[strconv.Itoa(i)] = newFieldError("nil sprite", nil)
			continue
		}
		spriteErrs.merge(strconv.Itoa(i), ps.Validate())
	}
	errs.merge("sprites", spriteErrs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// State is the top-level render input, owned by the host for the lifetime
// of one session. FrameRate is observational — the display loop writes the
// measured rate into it each tick; hosts only read it.
type State struct {
	Canvas     *Canvas
	FrameRate  int
	TickRateMS int
}

// NewState creates a State with a default canvas and a ~60Hz tick rate.
func NewState() *State {
	return &State{
		Canvas:     NewCanvas(),
		TickRateMS: DefaultTickRateMS,
	}
}

// Validate checks the canvas (nested under "canvas"), a non-negative frame
// rate, and a strictly positive tick rate.
func (s *State) Validate() ErrorMap {
	errs := ErrorMap{}
	if s.Canvas == nil {
		errs["canvas"] = newFieldError("nil canvas", nil)
	} else {
		errs.merge("canvas", s.Canvas.Validate())
	}
	if s.FrameRate < 0 {
		errs["frame_rate"] = newFieldError("negative frame_rate", s.FrameRate)
	}
	if s.TickRateMS <= 0 {
		errs["tick_rate_ms"] = newFieldError("nonpositive tick_rate_ms", s.TickRateMS)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
