package scenes

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blackcat/fsm"
	"github.com/milk9111/blackcat/render"
)

// Outcome is how a session ended.
type Outcome struct {
	Victory bool
	Score   int
}

// Over shows the outcome and starts a new session on confirm.
type Over struct {
	ctx     *Context
	game    fsm.State
	outcome Outcome
}

// OnEnter takes the session's Outcome as its first argument.
func (o *Over) OnEnter(args ...any) {
	o.outcome = Outcome{}
	if len(args) > 0 {
		o.outcome, _ = args[0].(Outcome)
	}

	o.ctx.Audio.StopAllLoops()
	if o.outcome.Victory {
		o.ctx.Audio.Play(CueVictory, 1)
	} else {
		o.ctx.Audio.Play(CueDefeat, 1)
	}
}

func (o *Over) OnLeave() {}

func (o *Over) Outcome() Outcome { return o.outcome }

func (o *Over) OnUpdate(dt float64) error {
	if o.ctx.Controls.Confirm.Pressed() {
		o.ctx.Machine.SetState(o.game)
	}
	return nil
}

func (o *Over) OnDraw(s render.Surface) {
	w, _ := s.Size()
	x := float64(w) / 2
	title := "Game Over"
	if o.outcome.Victory {
		title = "Victory"
	}
	s.DrawText(title, 40, x, 80, color.White, render.AlignCenter)
	s.DrawText(fmt.Sprintf("Score %s", formatScore(o.outcome.Score)), 16, x, 130, color.White, render.AlignCenter)
	s.DrawText("Start Over", 24, x, 200, color.White, render.AlignCenter)
}
