package splat

import "fmt"

// Coordinates is a position on the canvas. The origin is the top-left
// corner with Y increasing downward. Values are unconstrained — negative or
// past-the-edge positions are how sprites scroll on and off the canvas.
type Coordinates struct {
	X, Y int
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Validate always passes: any position is a legal position.
func (c Coordinates) Validate() ErrorMap {
	return nil
}

// Dimensions is the width and height of a rectangular pixel region.
type Dimensions struct {
	Width, Height int
}

// Area returns the covered area in pixels.
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// AreaRGBABytes returns the byte length of an RGBA buffer covering the area.
func (d Dimensions) AreaRGBABytes() int {
	return d.Area() * BytesPerPixel
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Validate requires both extents to be strictly positive.
func (d Dimensions) Validate() ErrorMap {
	errs := ErrorMap{}
	if d.Width <= 0 {
		errs["width"] = newFieldError("nonpositive width", d.Width)
	}
	if d.Height <= 0 {
		errs["height"] = newFieldError("nonpositive height", d.Height)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
