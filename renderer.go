package splat

import (
	"bytes"
	"context"
	"log/slog"
	"time"
)

// cropWindow describes which part of a sprite is visible along one axis and
// where that part lands on the canvas.
type cropWindow struct {
	local  int // first visible coordinate, relative to the sprite image's origin
	size   int // number of visible pixels from local
	canvas int // position of local relative to the canvas origin
}

// cropToVisible clips one axis of a sprite against the canvas. The second
// return is false when nothing is visible on this axis.
//
// The boundary conditions are deliberate: canvasCoord+extent == 0 is fully
// off the low side, while canvasCoord+extent == canvasExtent is still fully
// visible — only canvasCoord >= canvasExtent is off the high side.
func cropToVisible(canvasCoord, extent, canvasExtent int) (cropWindow, bool) {
	w := cropWindow{local: 0, size: extent, canvas: canvasCoord}

	switch {
	case canvasCoord < 0: // partially left of / above the canvas
		if canvasCoord+extent <= 0 {
			return cropWindow{}, false
		}
		w.size = extent + canvasCoord
		w.local = extent - w.size
		w.canvas = 0
	case canvasCoord+extent >= canvasExtent: // partially right of / below the canvas
		if canvasCoord >= canvasExtent {
			return cropWindow{}, false
		}
		w.local = 0
		w.size = canvasExtent - canvasCoord
		w.canvas = canvasCoord
	}

	// A sprite wider than the canvas overhangs both edges at once; clamp the
	// window so it never runs past the high side.
	if w.canvas+w.size > canvasExtent {
		w.size = canvasExtent - w.canvas
	}

	return w, true
}

// renderStats collects per-render counters and timings, reported at debug
// level only.
type renderStats struct {
	fillTime time.Duration
	blitTime time.Duration
	drawn    int
	skipped  int
}

// Renderer composites a Canvas into a flat RGBA frame buffer. It keeps the
// buffer across calls: as long as the canvas dimensions are unchanged the
// same buffer is rewritten in place, because image bindings exported to GPU
// or toolkit APIs cannot be resized without rebuilding the bound object.
//
// A Renderer assumes the State it is handed has already been validated by
// the host. It is single-threaded, like everything else in splat.
type Renderer struct {
	dims    Dimensions
	frame   []byte
	bgCache []byte
	bgColor RGBPixel
}

// NewRenderer creates a renderer with no allocated frame buffer. The first
// Render call always reports a reallocation.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Frame returns the most recently rendered buffer, nil before the first
// render. The returned slice MUST NOT be mutated — scene changes go through
// the Canvas, never the output buffer.
func (r *Renderer) Frame() []byte {
	return r.frame
}

// Dimensions returns the dimensions of the current frame buffer.
func (r *Renderer) Dimensions() Dimensions {
	return r.dims
}

// Render composites one frame: background fill, then every sprite in list
// order, each clipped to its visible window. It returns the frame buffer
// and whether the buffer was freshly allocated this call — when true the
// host must rebuild whatever image object was bound to the previous buffer.
func (r *Renderer) Render(state *State) (frame []byte, reallocated bool) {
	canvas := state.Canvas
	dims := canvas.Dimensions

	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	var stats renderStats
	var t0 time.Time

	// The replicated background is the dominant cost on large canvases;
	// rebuild it only when the color or the area changed.
	newBGCache := len(r.bgCache) == 0 || canvas.BackgroundColor != r.bgColor

	if dims != r.dims {
		r.frame = make([]byte, dims.AreaRGBABytes())
		r.dims = dims
		reallocated = true
		newBGCache = true
		log.Debug("allocated frame buffer", "dims", dims.String(), "bytes", len(r.frame))
	}

	if debug {
		t0 = time.Now()
	}

	if newBGCache {
		px := canvas.BackgroundColor.rgba()
		r.bgCache = bytes.Repeat(px[:], dims.Area())
		r.bgColor = canvas.BackgroundColor
		log.Debug("rebuilt background cache", "color", r.bgColor, "bytes", len(r.bgCache))
	}
	copy(r.frame, r.bgCache)

	if debug {
		stats.fillTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, ps := range canvas.Sprites {
		if r.blitSprite(ps, dims) {
			stats.drawn++
		} else {
			stats.skipped++
		}
	}

	if debug {
		stats.blitTime = time.Since(t0)
		log.Debug("rendered frame",
			"fill", stats.fillTime, "blit", stats.blitTime,
			"drawn", stats.drawn, "skipped", stats.skipped,
			"reallocated", reallocated)
	}

	return r.frame, reallocated
}

// blitSprite copies the visible rows of the sprite's active frame into the
// frame buffer. Reports false when the sprite is entirely off-canvas on
// either axis (a zero-cost skip, no partial draw).
func (r *Renderer) blitSprite(ps *PositionedSprite, dims Dimensions) bool {
	img := ps.Active()
	imgDims := img.Dimensions()

	xWin, ok := cropToVisible(ps.Coordinates.X, imgDims.Width, dims.Width)
	if !ok {
		return false
	}
	yWin, ok := cropToVisible(ps.Coordinates.Y, imgDims.Height, dims.Height)
	if !ok {
		return false
	}

	// Source stride is the sprite's own width; destination stride is the
	// canvas width. They differ whenever the sprite is cropped.
	srcStride := imgDims.Width * BytesPerPixel
	dstStride := dims.Width * BytesPerPixel
	run := xWin.size * BytesPerPixel
	src := (yWin.local*imgDims.Width + xWin.local) * BytesPerPixel
	dst := (yWin.canvas*dims.Width + xWin.canvas) * BytesPerPixel

	pix := img.Pix()
	for row := 0; row < yWin.size; row++ {
		copy(r.frame[dst:dst+run], pix[src:src+run])
		src += srcStride
		dst += dstStride
	}
	return true
}
