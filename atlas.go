package splat

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Atlas slices a single sheet Image into named frame images, driven by a
// TexturePacker-style JSON manifest. Because every frame is cut into its
// own immutable Image at load time, atlas frames plug straight into Sprite
// frame maps with no page indirection at render time.
type Atlas struct {
	frames map[string]*Image
}

// magentaPlaceholder is returned for unknown frame names so a typo shows up
// on screen as a loud 1x1 magenta pixel instead of a crash.
var magentaPlaceholder *Image

func ensureMagentaPlaceholder() *Image {
	if magentaPlaceholder == nil {
		magentaPlaceholder, _ = NewImage(
			[]byte{0xFF, 0x00, 0xFF, 0xFF},
			Dimensions{Width: 1, Height: 1},
			"(missing frame)",
		)
	}
	return magentaPlaceholder
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonManifest struct {
	Frames map[string]jsonFrame `json:"frames"`
}

// LoadAtlas parses a TexturePacker hash-format manifest ({"frames": {name:
// {"frame": {x,y,w,h}}, ...}}) and cuts each frame out of the sheet.
// Rotated frames are rejected: this compositor never rotates pixels, so a
// rotated region could not be drawn correctly.
func LoadAtlas(jsonData []byte, sheet *Image) (*Atlas, error) {
	var manifest jsonManifest
	if err := json.Unmarshal(jsonData, &manifest); err != nil {
		return nil, fmt.Errorf("splat: parse atlas JSON: %w", err)
	}
	if len(manifest.Frames) == 0 {
		return nil, fmt.Errorf("splat: atlas JSON has no \"frames\"")
	}

	atlas := &Atlas{frames: make(map[string]*Image, len(manifest.Frames))}
	for name, f := range manifest.Frames {
		if f.Rotated {
			return nil, fmt.Errorf("splat: atlas frame %q is rotated; rotated frames are not supported", name)
		}
		img, err := cutRegion(sheet, f.Frame, name)
		if err != nil {
			return nil, err
		}
		atlas.frames[name] = img
	}
	return atlas, nil
}

// cutRegion copies the rows of one sheet sub-rectangle into a fresh Image.
func cutRegion(sheet *Image, rect jsonRect, name string) (*Image, error) {
	dims := Dimensions{Width: rect.W, Height: rect.H}
	if errs := dims.Validate(); errs != nil {
		return nil, fmt.Errorf("splat: atlas frame %q has invalid dimensions %s: %w", name, dims, errs)
	}
	sheetDims := sheet.Dimensions()
	if rect.X < 0 || rect.Y < 0 ||
		rect.X+rect.W > sheetDims.Width || rect.Y+rect.H > sheetDims.Height {
		return nil, fmt.Errorf("splat: atlas frame %q rect (%d,%d %dx%d) is outside the %s sheet",
			name, rect.X, rect.Y, rect.W, rect.H, sheetDims)
	}

	pix := make([]byte, dims.AreaRGBABytes())
	sheetPix := sheet.Pix()
	srcStride := sheetDims.Width * BytesPerPixel
	run := rect.W * BytesPerPixel
	src := (rect.Y*sheetDims.Width + rect.X) * BytesPerPixel
	for row := 0; row < rect.H; row++ {
		copy(pix[row*run:(row+1)*run], sheetPix[src:src+run])
		src += srcStride
	}
	return NewImage(pix, dims, name)
}

// Frame returns the image for the given frame name. Unknown names log a
// warning and return a 1x1 magenta placeholder.
func (a *Atlas) Frame(name string) *Image {
	if img, ok := a.frames[name]; ok {
		return img
	}
	Logger().Warn("atlas frame not found, using magenta placeholder", "name", name)
	return ensureMagentaPlaceholder()
}

// FrameNames returns the sorted names of all frames in the atlas.
func (a *Atlas) FrameNames() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sprite builds a multi-frame sprite from the named atlas frames, keyed by
// frame name with the first name active. Unknown names fail here rather
// than at render time.
func (a *Atlas) Sprite(name string, frameNames ...string) (*Sprite, error) {
	if len(frameNames) == 0 {
		return nil, fmt.Errorf("splat: sprite %q needs at least one atlas frame", name)
	}
	images := make(map[string]*Image, len(frameNames))
	for _, fn := range frameNames {
		img, ok := a.frames[fn]
		if !ok {
			return nil, fmt.Errorf("splat: sprite %q references unknown atlas frame %q", name, fn)
		}
		images[fn] = img
	}
	return NewFrameSprite(images, frameNames[0], name)
}
