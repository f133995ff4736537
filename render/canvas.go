// Package render is the drawing surface the game states paint on.
package render

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Align positions text horizontally around its anchor x.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// baseTextSize is the pixel height of basicfont.Face7x13.
const baseTextSize = 13

// Surface is everything a state or entity needs to draw a frame.
type Surface interface {
	DrawImage(img *ebiten.Image, x, y, w, h float64)
	// DrawImageRotated draws img rotated by angle radians around its centre.
	DrawImageRotated(img *ebiten.Image, x, y, w, h, angle float64)
	DrawText(s string, size, x, y float64, clr color.Color, align Align)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	DrawUI(ui *ebitenui.UI)
	Size() (int, int)
}

// Canvas draws onto an ebiten screen image.
type Canvas struct {
	target *ebiten.Image
	face   ebtext.Face
}

func NewCanvas() *Canvas {
	return &Canvas{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

// Bind sets the image the next draw calls paint on. The driver rebinds it
// every frame.
func (c *Canvas) Bind(target *ebiten.Image) { c.target = target }

func (c *Canvas) Size() (int, int) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	if c.target == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	scaleTo(op, img, w, h)
	op.GeoM.Translate(x, y)
	c.target.DrawImage(img, op)
}

func (c *Canvas) DrawImageRotated(img *ebiten.Image, x, y, w, h, angle float64) {
	if c.target == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	scaleTo(op, img, w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x+w/2, y+h/2)
	c.target.DrawImage(img, op)
}

func (c *Canvas) DrawText(s string, size, x, y float64, clr color.Color, align Align) {
	if c.target == nil || s == "" {
		return
	}
	if clr == nil {
		clr = color.White
	}
	scale := size / baseTextSize
	if scale <= 0 {
		scale = 1
	}
	op := &ebtext.DrawOptions{}
	switch align {
	case AlignLeft:
		op.PrimaryAlign = ebtext.AlignStart
	case AlignRight:
		op.PrimaryAlign = ebtext.AlignEnd
	default:
		op.PrimaryAlign = ebtext.AlignCenter
	}
	// y is the baseline, matching how the HUD positions its labels.
	op.SecondaryAlign = ebtext.AlignEnd
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(c.target, s, c.face, op)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	if c.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(c.target, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (c *Canvas) DrawUI(ui *ebitenui.UI) {
	if c.target == nil || ui == nil {
		return
	}
	ui.Draw(c.target)
}

func scaleTo(op *ebiten.DrawImageOptions, img *ebiten.Image, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return
	}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
}
