package splat

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ToImage copies the current frame buffer into a straight-alpha NRGBA
// image. Returns nil before the first render.
func (r *Renderer) ToImage() *image.NRGBA {
	if r.frame == nil {
		return nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, r.dims.Width, r.dims.Height))
	copy(img.Pix, r.frame)
	return img
}

// Screenshot writes the current frame buffer to a PNG file. Fails when
// nothing has been rendered yet.
func (r *Renderer) Screenshot(path string) error {
	img := r.ToImage()
	if img == nil {
		return fmt.Errorf("splat: screenshot %s: no frame rendered yet", path)
	}
	return writePNG(path, img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
