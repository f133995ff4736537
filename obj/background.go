package obj

import (
	"image/color"
	"math"

	"github.com/milk9111/blackcat/render"
)

const (
	brickWidth  = 96.0
	brickHeight = 16.0
)

var (
	brickFill   = color.NRGBA{R: 0x8f, G: 0x56, B: 0x3b, A: 0xff}
	brickMortar = color.NRGBA{R: 0x45, G: 0x28, B: 0x3c, A: 0xff}
)

// Background is the brick wall scrolling down behind everything.
type Background struct {
	// Speed is in px/ms.
	Speed  float64
	offset float64
}

func NewBackground(speed float64) *Background {
	return &Background{Speed: speed}
}

// Update scrolls the wall; the offset wraps every two brick rows so the
// staggered pattern repeats seamlessly.
func (b *Background) Update(dt float64) {
	b.offset = math.Mod(b.offset+b.Speed*dt, brickHeight*2)
}

func (b *Background) Offset() float64 { return b.offset }

func (b *Background) Draw(s render.Surface) {
	w, h := s.Size()
	width, height := float64(w), float64(h)
	s.FillRect(0, 0, width, height, brickMortar)

	row := 0
	for y := b.offset - brickHeight*2; y < height; y += brickHeight {
		shift := 0.0
		if row%2 != 0 {
			shift = -brickWidth / 2
		}
		for x := shift; x < width; x += brickWidth {
			s.FillRect(x, y, brickWidth, brickHeight, brickFill)
			s.StrokeRect(x, y, brickWidth, brickHeight, 1, brickMortar)
		}
		row++
	}
}
