package scenes

import (
	"image/color"

	"github.com/milk9111/blackcat/fsm"
	"github.com/milk9111/blackcat/render"
	"golang.org/x/image/colornames"
)

var (
	selectedColor   = colornames.White
	unselectedColor = colornames.Gray
)

// Menu offers "Start Game" and "Toggle Fullscreen". Up or down flips the
// selection.
type Menu struct {
	fsm.NopHooks

	ctx           *Context
	game          fsm.State
	startSelected bool
}

func (m *Menu) StartSelected() bool { return m.startSelected }

func (m *Menu) OnUpdate(dt float64) error {
	c := m.ctx.Controls
	if c.Up.Pressed() || c.Down.Pressed() {
		m.startSelected = !m.startSelected
	}
	if !c.Confirm.Pressed() {
		return nil
	}

	if m.startSelected {
		m.ctx.Audio.Play(CueGameStart, 1)
		m.ctx.Machine.SetState(m.game)
		return nil
	}
	if m.ctx.ToggleFullscreen != nil {
		m.ctx.ToggleFullscreen()
	}
	return nil
}

func (m *Menu) OnDraw(s render.Surface) {
	w, _ := s.Size()
	x := float64(w) / 2
	start, full := selectedColor, unselectedColor
	if !m.startSelected {
		start, full = full, start
	}
	s.DrawText("Menu", 40, x, 80, color.White, render.AlignCenter)
	s.DrawText("Start Game", 24, x, 200, start, render.AlignCenter)
	s.DrawText("Toggle Fullscreen", 24, x, 240, full, render.AlignCenter)
}
