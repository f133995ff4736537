package scenes

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/render"
	"golang.org/x/image/colornames"
)

const (
	barWidth  = 120
	barHeight = 8
	pipSize   = 6
	pipGap    = 3
)

var (
	barBackdrop = color.NRGBA{A: 0x80}
	barReady    = colornames.Lime
	barCharging = colornames.Yellow
	pipFull     = colornames.Crimson
	pipEmpty    = colornames.Dimgray
)

func formatScore(score int) string { return fmt.Sprintf("%08d", score) }

func drawHUD(s render.Surface, score int, player *obj.Player, boss *obj.Boss) {
	w, h := s.Size()
	s.DrawText(formatScore(score), 16, float64(w)-10, 25, color.White, render.AlignRight)

	x, y := 10.0, float64(h)-20
	s.FillRect(x-2, y-2, barWidth+4, barHeight+4, barBackdrop)
	s.StrokeRect(x, y, barWidth, barHeight, 1, color.White)
	fill := barCharging
	if player.IsAttackReady() {
		fill = barReady
	}
	s.FillRect(x, y, barWidth*player.AttackCooldownProgress(), barHeight, fill)
	s.DrawText("Attack", 12, x, y-5, color.White, render.AlignLeft)

	if boss == nil || boss.IsDefeated() {
		return
	}
	for i := 0; i < boss.MaxHealth(); i++ {
		c := pipEmpty
		if i < boss.Health() {
			c = pipFull
		}
		s.FillRect(10+float64(i*(pipSize+pipGap)), 14, pipSize, pipSize, c)
	}
}
