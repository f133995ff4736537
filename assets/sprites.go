// Package assets turns the pixel-art sheet in prefabs/sprites.yaml into
// drawable images.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blackcat/prefabs"
)

var ErrMissingSprite = errors.New("assets: missing sprite")

// Transparent is the palette key for an empty pixel.
const Transparent = '.'

// Sprites resolves sprite names to images. Every sprite is built by Preload;
// asking for a name that was never loaded is an error.
type Sprites struct {
	images   map[string]*ebiten.Image
	mirrored map[string]*ebiten.Image
}

// NewSprites decodes every sprite in spec. Every name in required must be
// in the sheet.
func NewSprites(spec *prefabs.SpriteSheetSpec, required ...string) (*Sprites, error) {
	s := &Sprites{}
	if err := s.Preload(spec, required...); err != nil {
		return nil, err
	}
	return s, nil
}

// Preload replaces the loaded set with the sprites in spec. A sheet that
// fails to decode or lacks one of the required names is rejected and the
// previous set is kept.
func (s *Sprites) Preload(spec *prefabs.SpriteSheetSpec, required ...string) error {
	pixels, err := Decode(spec)
	if err != nil {
		return err
	}
	for _, name := range required {
		if _, ok := pixels[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingSprite, name)
		}
	}
	images := make(map[string]*ebiten.Image, len(pixels))
	mirrored := make(map[string]*ebiten.Image, len(pixels))
	for name, img := range pixels {
		images[name] = ebiten.NewImageFromImage(img)
		mirrored[name] = ebiten.NewImageFromImage(Mirror(img))
	}
	s.images = images
	s.mirrored = mirrored
	return nil
}

// Sprite returns the image registered under name.
func (s *Sprites) Sprite(name string) (*ebiten.Image, error) {
	img, ok := s.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingSprite, name)
	}
	return img, nil
}

// Mirrored returns the horizontally flipped copy of name.
func (s *Sprites) Mirrored(name string) (*ebiten.Image, error) {
	img, ok := s.mirrored[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (mirrored)", ErrMissingSprite, name)
	}
	return img, nil
}

// Decode rasterises every sprite in spec. Sprites with a base are drawn on
// top of their base, which must have the same size.
func Decode(spec *prefabs.SpriteSheetSpec) (map[string]*image.NRGBA, error) {
	if spec == nil {
		return nil, errors.New("assets: nil sprite sheet")
	}
	palette := make(map[rune]color.Color, len(spec.Palette))
	for key, c := range spec.Palette {
		r := []rune(key)
		if len(r) != 1 || r[0] == Transparent {
			return nil, fmt.Errorf("assets: palette key %q must be a single character other than %q", key, Transparent)
		}
		palette[r[0]] = c.Color
	}

	out := make(map[string]*image.NRGBA, len(spec.Sprites))
	var build func(name string, depth int) (*image.NRGBA, error)
	build = func(name string, depth int) (*image.NRGBA, error) {
		if img, ok := out[name]; ok {
			return img, nil
		}
		sp, ok := spec.Sprites[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingSprite, name)
		}
		if depth > len(spec.Sprites) {
			return nil, fmt.Errorf("assets: sprite %q: base cycle", name)
		}
		img, err := rasterise(name, sp, palette)
		if err != nil {
			return nil, err
		}
		if sp.Base != "" {
			base, err := build(sp.Base, depth+1)
			if err != nil {
				return nil, fmt.Errorf("assets: sprite %q base: %w", name, err)
			}
			if base.Bounds() != img.Bounds() {
				return nil, fmt.Errorf("assets: sprite %q is %v but base %q is %v", name, img.Bounds().Size(), sp.Base, base.Bounds().Size())
			}
			img = overlay(base, img)
		}
		out[name] = img
		return img, nil
	}

	for name := range spec.Sprites {
		if _, err := build(name, 0); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func rasterise(name string, sp prefabs.SpriteSpec, palette map[rune]color.Color) (*image.NRGBA, error) {
	if len(sp.Rows) == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no rows", name)
	}
	scale := sp.Scale
	if scale <= 0 {
		scale = 1
	}
	width := len([]rune(sp.Rows[0]))
	img := image.NewNRGBA(image.Rect(0, 0, width*scale, len(sp.Rows)*scale))
	for y, row := range sp.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("assets: sprite %q row %d is %d wide, want %d", name, y, len(runes), width)
		}
		for x, ch := range runes {
			if ch == Transparent {
				continue
			}
			c, ok := palette[ch]
			if !ok {
				return nil, fmt.Errorf("assets: sprite %q row %d: unknown palette key %q", name, y, ch)
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img, nil
}

func overlay(base, top *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(base.Bounds())
	copy(out.Pix, base.Pix)
	b := top.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := top.NRGBAAt(x, y); c.A > 0 {
				out.SetNRGBA(x, y, c)
			}
		}
	}
	return out
}

// Mirror flips img horizontally.
func Mirror(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetNRGBA(b.Max.X-1-(x-b.Min.X), y, img.NRGBAAt(x, y))
		}
	}
	return out
}
