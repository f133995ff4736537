package scenes

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/blackcat/fsm"
	"github.com/milk9111/blackcat/render"
)

// Freezable is a state that can be drawn without being updated.
type Freezable interface {
	fsm.State
	DrawFrozen(s render.Surface)
}

var pauseShade = color.NRGBA{A: 0xb3}

// Pause suspends the state it was entered from and resumes it untouched.
type Pause struct {
	ctx    *Context
	prev   Freezable
	ui     *ebitenui.UI
	resume bool
}

// OnEnter expects the suspended state as its first argument.
func (p *Pause) OnEnter(args ...any) {
	p.prev = nil
	p.resume = false
	if len(args) > 0 {
		p.prev, _ = args[0].(Freezable)
	}
	p.ctx.Audio.SetMusicEnabled(false)
}

func (p *Pause) OnLeave() {
	p.ctx.Audio.SetMusicEnabled(true)
}

func (p *Pause) Previous() fsm.State { return p.prev }

func (p *Pause) OnUpdate(dt float64) error {
	if p.ui != nil {
		p.ui.Update()
	}
	if p.ctx.Controls.Escape.Pressed() {
		p.resume = true
	}
	if p.resume && p.prev != nil {
		p.resume = false
		p.ctx.Machine.ResumeState(p.prev)
	}
	return nil
}

func (p *Pause) OnDraw(s render.Surface) {
	if p.prev != nil {
		p.prev.DrawFrozen(s)
	}
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), pauseShade)
	if p.ui == nil {
		p.ui = newPauseUI(w, h, func() { p.resume = true })
	}
	s.DrawUI(p.ui)
}
