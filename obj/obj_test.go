package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blackcat/common"
	"github.com/milk9111/blackcat/prefabs"
)

// stubSprites resolves every name to a nil image except the ones listed as
// missing.
type stubSprites struct {
	missing map[string]bool
}

func (s stubSprites) Sprite(name string) (*ebiten.Image, error) {
	if s.missing[name] {
		return nil, fmt.Errorf("sprite %q not loaded", name)
	}
	return nil, nil
}

func (s stubSprites) Mirrored(name string) (*ebiten.Image, error) {
	return s.Sprite(name)
}

type cueLog struct {
	played []string
}

func (c *cueLog) Play(cue string, volume float64) {
	c.played = append(c.played, cue)
}

func (c *cueLog) count(cue string) int {
	n := 0
	for _, p := range c.played {
		if p == cue {
			n++
		}
	}
	return n
}

type stubTarget struct {
	body      common.Rect
	box       common.Rect
	attacking bool
}

func (t *stubTarget) Bounds() common.Rect    { return t.body }
func (t *stubTarget) AttackBox() common.Rect { return t.box }
func (t *stubTarget) IsAttacking() bool      { return t.attacking }

var testCanvas = prefabs.CanvasSpec{Width: 320, Height: 480}

func testPlayerSpec() prefabs.PlayerSpec {
	return prefabs.PlayerSpec{
		StartX:     120,
		StartY:     300,
		Width:      12,
		Height:     24,
		Speed:      2,
		CooldownMs: 500,
		IdleMs:     200,
		AttackMs:   100,
		Hitbox:     prefabs.BoxSpec{Width: 16, Height: 16, OffsetY: -24},
	}
}

func testBossSpec() prefabs.BossSpec {
	return prefabs.BossSpec{
		Width:           36,
		Height:          48,
		StartY:          20,
		Health:          8,
		StageTwoAt:      4,
		SpawnGraceMs:    300,
		InvincibleMs:    300,
		HurtMs:          200,
		RepositionSpeed: 2,
		DefeatDrift:     1,
		Orbit:           prefabs.OrbitSpec{CenterY: 100, Radius: 70, PeriodMs: 500},
		Sweep:           prefabs.SweepSpec{BaseY: 80, Margin: 20, PeriodMs: 1000, BobHeight: 30, BobPeriodMs: 300},
	}
}
