package splat

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Display is the ebiten host for the compositor: it owns the State, drives
// the tick loop, and keeps the rendered frame buffer bound to a GPU image.
// It implements [ebiten.Game].
//
// Per tick, Display increments the tick counter, invokes OnTick, and — only
// when the host has marked the state Dirty — validates the whole State,
// renders it, and uploads the frame buffer. A validation failure stops the
// loop and surfaces an *InvalidStateError; render work is skipped entirely
// on clean ticks.
type Display struct {
	// State is the scene the host mutates between ticks.
	State *State
	// Dirty tells the next tick that the state changed and a render is due.
	// The display clears it after rendering.
	Dirty bool
	// OnTick, when set, runs once per tick before the dirty check. This is
	// where hosts animate: mutate the state, then set Dirty.
	OnTick func(tick int)

	renderer *Renderer
	image    *ebiten.Image
	frames   *FrameCounter
	tick     int
	running  bool
}

// NewDisplay creates a display with a black canvas of the given size and
// renders the first frame immediately, so a bound image exists before the
// game loop starts. Fails on nonpositive width, height, or tick rate.
func NewDisplay(width, height, tickRateMS int) (*Display, error) {
	if width <= 0 {
		return nil, fmt.Errorf("splat: nonpositive width %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("splat: nonpositive height %d", height)
	}
	if tickRateMS <= 0 {
		return nil, fmt.Errorf("splat: nonpositive tick_rate_ms %d", tickRateMS)
	}

	state := NewState()
	state.Canvas.Dimensions = Dimensions{Width: width, Height: height}
	state.TickRateMS = tickRateMS

	d := &Display{
		State:    state,
		renderer: NewRenderer(),
		frames:   NewFrameCounter(time.Second),
		running:  true,
	}

	frame, reallocated := d.renderer.Render(state)
	if !reallocated {
		// A fresh renderer must allocate on its first render.
		panic("splat: first render did not allocate a frame buffer")
	}
	d.image = ebiten.NewImage(width, height)
	d.image.WritePixels(frame)

	Logger().Info("display created", "dims", state.Canvas.Dimensions.String(), "tick_rate_ms", tickRateMS)
	return d, nil
}

// Update advances one tick. Implements [ebiten.Game].
func (d *Display) Update() error {
	if !d.running {
		return ebiten.Termination
	}

	d.tick++
	if d.OnTick != nil {
		d.OnTick(d.tick)
	}

	if d.Dirty {
		if errs := d.State.Validate(); errs != nil {
			d.running = false
			d.Dirty = false
			return &InvalidStateError{Errors: errs}
		}

		frame, reallocated := d.renderer.Render(d.State)
		if reallocated {
			// The old image is sized for the old buffer; rebuild the binding.
			if d.image != nil {
				d.image.Deallocate()
			}
			dims := d.renderer.Dimensions()
			d.image = ebiten.NewImage(dims.Width, dims.Height)
		}
		d.image.WritePixels(frame)
		d.Dirty = false
	}

	d.State.FrameRate = d.frames.Tick()
	return nil
}

// Draw paints the bound frame image onto the screen. Implements [ebiten.Game].
func (d *Display) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.image, nil)
}

// Layout reports the canvas dimensions as the logical screen size.
// Implements [ebiten.Game].
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	dims := d.State.Canvas.Dimensions
	return dims.Width, dims.Height
}

// Tick returns the number of ticks elapsed since the loop started.
func (d *Display) Tick() int {
	return d.tick
}

// Running reports whether the tick loop is (or would be) running.
func (d *Display) Running() bool {
	return d.running
}

// Stop makes the next Update end the game loop. Idempotent.
func (d *Display) Stop() {
	d.running = false
}

// Renderer exposes the underlying renderer, for screenshots and frame
// buffer access.
func (d *Display) Renderer() *Renderer {
	return d.renderer
}

// Run opens a window sized to the canvas, derives the ticks-per-second rate
// from the state's tick_rate_ms, and runs the game loop until the display
// is stopped, the window is closed, or a tick fails.
func (d *Display) Run(title string) error {
	dims := d.State.Canvas.Dimensions
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(dims.Width, dims.Height)

	tps := 1000 / d.State.TickRateMS
	if tps < 1 {
		tps = 1
	}
	ebiten.SetTPS(tps)

	d.running = true
	return ebiten.RunGame(d)
}
