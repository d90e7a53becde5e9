package splat

import "strconv"

// BytesPerPixel is the size of one canvas pixel. Pixel data is always
// straight-alpha RGBA, one byte per channel.
const BytesPerPixel = 4

// defaultName is used for images and sprites created without a friendly name.
const defaultName = "(untitled)"

// Validatable is implemented by every piece of renderable state. Validate
// returns a nil or empty ErrorMap when the value is structurally sound.
//
// Validation composes bottom-up: compound values validate their children and
// merge any non-empty child maps under the child's field name. The renderer
// itself never validates — the host checks the whole State before each render.
type Validatable interface {
	Validate() ErrorMap
}

// RGBPixel is a single background color in RGB order. Channels are ints
// rather than bytes so that out-of-range values are representable and
// Validate can report them.
type RGBPixel [3]int

// Validate reports any channel outside [0, 255], keyed by channel index.
func (p RGBPixel) Validate() ErrorMap {
	errs := ErrorMap{}
	for i, channel := range p {
		if channel < 0 || channel > 255 {
			errs[strconv.Itoa(i)] = newFieldError("channel out of range 0<=X<=255", channel)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// rgba expands the pixel to one opaque RGBA pixel. Callers are expected to
// have validated the color first.
func (p RGBPixel) rgba() [BytesPerPixel]byte {
	return [BytesPerPixel]byte{byte(p[0]), byte(p[1]), byte(p[2]), 0xFF}
}
