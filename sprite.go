package splat

import (
	"fmt"
	"maps"
	"sort"
)

// Sprite is a named set of one or more keyed frame images, one of which is
// active at any time. Swapping ActiveKey between ticks is how frame
// animation works — the sprite itself is never rebuilt.
//
// Images and ActiveKey are plain fields so hosts can mutate them between
// ticks; validation runs before every render and reports every violation in
// one pass, so a stale key or emptied map is caught before it can draw.
type Sprite struct {
	Images    map[string]*Image
	ActiveKey string
	Name      string
}

// NewSprite creates a single-frame sprite with the image keyed on "".
func NewSprite(img *Image, name string) *Sprite {
	if name == "" {
		name = defaultName
	}
	return &Sprite{
		Images: map[string]*Image{"": img},
		Name:   name,
	}
}

// NewFrameSprite creates a multi-frame sprite and validates it immediately,
// so an empty frame map or a dangling active key fails at construction time
// rather than at render time.
func NewFrameSprite(images map[string]*Image, activeKey, name string) (*Sprite, error) {
	if name == "" {
		name = defaultName
	}
	s := &Sprite{Images: images, ActiveKey: activeKey, Name: name}
	if errs := s.Validate(); errs != nil {
		return nil, fmt.Errorf("splat: invalid sprite %q: %w", name, errs)
	}
	return s, nil
}

// Active returns the currently displayed frame. A missing key is a
// programming error — validation runs before every render and would have
// caught it — so Active panics rather than limping on.
func (s *Sprite) Active() *Image {
	img, ok := s.Images[s.ActiveKey]
	if !ok {
		panic(fmt.Sprintf("splat: sprite %q active key %q not in images", s.Name, s.ActiveKey))
	}
	return img
}

// SetActive selects the frame whose image equals img by value. Fails when no
// frame matches. When several frames hold equal images the lowest key wins,
// for determinism.
func (s *Sprite) SetActive(img *Image) error {
	keys := make([]string, 0, len(s.Images))
	for k := range s.Images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s.Images[k].Equal(img) {
			s.ActiveKey = k
			return nil
		}
	}
	return fmt.Errorf("splat: sprite %q has no frame equal to %v", s.Name, img)
}

// Validate reports an empty frame map, a dangling active key, and any frame
// image errors (keyed by frame key under "images") all at once.
func (s *Sprite) Validate() ErrorMap {
	errs := ErrorMap{}
	if len(s.Images) == 0 {
		errs["images"] = newFieldError("empty images map", nil)
	}
	if _, ok := s.Images[s.ActiveKey]; !ok {
		errs["active_key"] = newFieldError("active_key not in images map keys", s.ActiveKey)
	}

	childErrs := ErrorMap{}
	for k, img := range s.Images {
		if img == nil {
			childErrs[k] = newFieldError("nil image", nil)
			continue
		}
		childErrs.merge(k, img.Validate())
	}
	errs.merge("images", childErrs)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (s *Sprite) String() string {
	return fmt.Sprintf("<sprite %s>", s.Name)
}

// PositionedSprite is a Sprite placed at canvas coordinates. Coordinates
// are mutated freely between ticks to animate position.
type PositionedSprite struct {
	Sprite
	Coordinates Coordinates
}

// NewPositionedSprite places a sprite on the canvas. The frame map is
// cloned so that repositioned copies of one sprite can swap frames
// independently; the Images themselves are immutable and stay shared.
func NewPositionedSprite(s *Sprite, at Coordinates) *PositionedSprite {
	return &PositionedSprite{
		Sprite: Sprite{
			Images:    maps.Clone(s.Images),
			ActiveKey: s.ActiveKey,
			Name:      s.Name,
		},
		Coordinates: at,
	}
}

// Validate adds coordinate validation to the sprite's own, merged under
// "coordinates". Coordinates currently never fail, but the merge keeps the
// composition rule uniform should that ever change.
func (ps *PositionedSprite) Validate() ErrorMap {
	errs := ps.Sprite.Validate()
	if errs == nil {
		errs = ErrorMap{}
	}
	errs.merge("coordinates", ps.Coordinates.Validate())
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (ps *PositionedSprite) String() string {
	return fmt.Sprintf("<sprite %s@%s>", ps.Name, ps.Coordinates)
}
