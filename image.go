package splat

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"

	// Codecs registered for DecodeImage. PNG is the common case; BMP shows
	// up in retro sprite assets often enough to ship by default. Other
	// formats register themselves the usual way from host code.
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Image is an immutable straight-alpha RGBA pixel buffer tagged with its
// dimensions. Once constructed it never changes, so a single Image may be
// shared by any number of sprites without aliasing hazards. There are no
// partial updates — build a new Image instead.
type Image struct {
	pix  []byte
	dims Dimensions
	name string
}

// NewImage builds an Image from raw RGBA pixel data. The data is copied, so
// the caller's slice may be reused freely afterwards. Fails when dims are
// nonpositive or the data length does not equal dims.AreaRGBABytes().
func NewImage(pix []byte, dims Dimensions, name string) (*Image, error) {
	if errs := dims.Validate(); errs != nil {
		return nil, fmt.Errorf("splat: invalid image dimensions %s: %w", dims, errs)
	}
	if len(pix) != dims.AreaRGBABytes() {
		return nil, fmt.Errorf("splat: pixel data is %d bytes, want %d for %s RGBA",
			len(pix), dims.AreaRGBABytes(), dims)
	}
	if name == "" {
		name = defaultName
	}
	owned := make([]byte, len(pix))
	copy(owned, pix)
	return &Image{pix: owned, dims: dims, name: name}, nil
}

// FromImage converts any decoded image to an Image, going through
// straight-alpha NRGBA so the pixel layout matches the canvas format.
func FromImage(src image.Image, name string) (*Image, error) {
	bounds := src.Bounds()
	dims := Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}
	if errs := dims.Validate(); errs != nil {
		return nil, fmt.Errorf("splat: source image has invalid dimensions %s: %w", dims, errs)
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, dims.Width, dims.Height))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	if name == "" {
		name = defaultName
	}
	// NewNRGBA allocates a tightly packed buffer; adopt it without a second copy.
	return &Image{pix: nrgba.Pix, dims: dims, name: name}, nil
}

// DecodeImage reads and decodes an image through Go's codec registry
// (PNG and BMP are registered by this package) and converts it to RGBA.
func DecodeImage(r io.Reader, name string) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("splat: decode image %q: %w", name, err)
	}
	img, err := FromImage(src, name)
	if err != nil {
		return nil, err
	}
	Logger().Debug("decoded image", "name", img.Name(), "format", format, "dims", img.Dimensions().String())
	return img, nil
}

// Dimensions returns the image's width and height.
func (img *Image) Dimensions() Dimensions {
	return img.dims
}

// Name returns the friendly name given at construction.
func (img *Image) Name() string {
	return img.name
}

// Pix returns the raw RGBA pixel data. The returned slice MUST NOT be
// mutated by the caller — the whole point of Image is that it never changes.
func (img *Image) Pix() []byte {
	return img.pix
}

// Equal reports value equality: same dimensions and same pixel bytes.
// Names do not participate.
func (img *Image) Equal(other *Image) bool {
	if img == other {
		return true
	}
	if other == nil {
		return false
	}
	return img.dims == other.dims && bytes.Equal(img.pix, other.pix)
}

func (img *Image) String() string {
	return fmt.Sprintf("<image: %s %s>", img.name, img.dims)
}

// Validate always passes: construction already enforced the invariants and
// immutability keeps them true.
func (img *Image) Validate() ErrorMap {
	return nil
}
