package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blackcat/common"
	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/render"
)

// Kind tags which variant an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindRobot
	KindFlippers
	KindCucumber
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRobot:
		return "robot"
	case KindFlippers:
		return "flippers"
	case KindCucumber:
		return "cucumber"
	case KindBoss:
		return "boss"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a prefab kind name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "robot":
		return KindRobot, nil
	case "flippers":
		return KindFlippers, nil
	case "cucumber":
		return KindCucumber, nil
	}
	return 0, fmt.Errorf("obj: unknown enemy kind %q", name)
}

// Entity is anything that lives on the playfield.
type Entity interface {
	Bounds() common.Rect
	Update(dt float64)
	Draw(s render.Surface)
	IsDead() bool
}

// Sprites resolves sprite names to images.
type Sprites interface {
	Sprite(name string) (*ebiten.Image, error)
	Mirrored(name string) (*ebiten.Image, error)
}

// CuePlayer plays one-shot sound cues.
type CuePlayer interface {
	Play(cue string, volume float64)
}

// Body is the geometry and animation every entity shares.
type Body struct {
	Kind Kind
	X, Y float64
	W, H float64
	Anim *component.Animation
	Dead bool
}

func (b *Body) Bounds() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, Width: b.W, Height: b.H}
}

func (b *Body) IsDead() bool { return b.Dead }

// Draw paints the current animation frame over the body's box.
func (b *Body) Draw(s render.Surface) {
	if img := b.Anim.Current(); img != nil {
		s.DrawImage(img, b.X, b.Y, b.W, b.H)
	}
}

// mirroredFrames builds the two-frame "sprite, then its mirror" sequence
// the cat and most enemies animate with.
func mirroredFrames(sprites Sprites, name string, first, second float64) ([]component.Frame, error) {
	img, err := sprites.Sprite(name)
	if err != nil {
		return nil, err
	}
	flipped, err := sprites.Mirrored(name)
	if err != nil {
		return nil, err
	}
	return []component.Frame{
		{Image: img, Duration: first},
		{Image: flipped, Duration: second},
	}, nil
}
