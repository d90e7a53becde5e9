// Package splat is a software 2D sprite compositor.
//
// Given a canvas with a background color and an ordered list of positioned
// sprites, splat flattens one frame into a plain RGBA byte buffer: the
// background is painted first, then each sprite's active frame is blitted
// in list order, clipped to the canvas on all four edges. Sprites overwrite
// — there is no blending, scaling, or rotation.
//
// # Scene state
//
// The renderable state is a small mutable tree: [State] holds a [Canvas],
// the canvas holds [PositionedSprite]s, and each sprite holds one or more
// immutable keyed frame [Image]s plus the key of the frame currently shown.
// Hosts animate by mutating coordinates, background color, and active keys
// between ticks:
//
//	state := splat.NewState()
//	img, _ := splat.NewImage(pixels, splat.Dimensions{Width: 3, Height: 3}, "dot")
//	sprite := splat.NewPositionedSprite(splat.NewSprite(img, "dot"), splat.Coordinates{X: 10, Y: 10})
//	state.Canvas.Sprites = append(state.Canvas.Sprites, sprite)
//
// Every state type implements [Validatable]. Validation is recursive and
// exhaustive — all violations across the tree are collected into one
// [ErrorMap], keyed by field name, and the host checks it before rendering.
//
// # Rendering
//
// [Renderer.Render] composites the state into a persistent frame buffer.
// The buffer is reused across frames while the canvas dimensions stay the
// same; when they change the renderer allocates a new buffer and reports it,
// so hosts know to rebuild whatever image object the old buffer was bound to.
//
// # Display host
//
// [Display] wraps the renderer in an [ebiten.Game]: a fixed-rate tick loop
// with a dirty flag gating render work, validation before every render, and
// the frame buffer kept uploaded to a GPU image.
//
//	display, _ := splat.NewDisplay(800, 600, 1000/60)
//	display.OnTick = func(tick int) {
//		sprite.Coordinates.X++
//		display.Dirty = true
//	}
//	log.Fatal(display.Run("bouncing dot"))
//
// Runnable examples live under demos/.
package splat
