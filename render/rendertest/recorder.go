// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blackcat/render"
)

// Recorder remembers what was drawn instead of drawing it.
type Recorder struct {
	Width, Height int

	Images []DrawnImage
	Texts  []DrawnText
	Rects  int
	UIs    int
}

type DrawnImage struct {
	Image      *ebiten.Image
	X, Y, W, H float64
	Angle      float64
}

type DrawnText struct {
	Text  string
	Size  float64
	X, Y  float64
	Color color.Color
	Align render.Align
}

var _ render.Surface = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{Width: w, Height: h}
}

func (r *Recorder) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	r.Images = append(r.Images, DrawnImage{Image: img, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawImageRotated(img *ebiten.Image, x, y, w, h, angle float64) {
	r.Images = append(r.Images, DrawnImage{Image: img, X: x, Y: y, W: w, H: h, Angle: angle})
}

func (r *Recorder) DrawText(s string, size, x, y float64, clr color.Color, align render.Align) {
	r.Texts = append(r.Texts, DrawnText{Text: s, Size: size, X: x, Y: y, Color: clr, Align: align})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color)          { r.Rects++ }
func (r *Recorder) StrokeRect(x, y, w, h, width float64, clr color.Color) { r.Rects++ }
func (r *Recorder) DrawUI(ui *ebitenui.UI)                                { r.UIs++ }
func (r *Recorder) Size() (int, int)                                      { return r.Width, r.Height }

// HasText reports whether s was drawn.
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}
