package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blackcat/common"
	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/prefabs"
	"github.com/milk9111/blackcat/render"
)

const (
	SpriteCat       = "cat"
	SpriteCatAttack = "cat_attack"
	CueAttack       = "attack"
)

// Player is the cat. It moves a fixed number of pixels per update and swipes
// upward with a cooldown between swipes.
type Player struct {
	Body

	idle      *component.Animation
	attack    *component.Animation
	cooldown  *component.Cooldown
	attacking bool

	speed   float64
	box     prefabs.BoxSpec
	canvasW float64
	canvasH float64

	controls *Controls
	cues     CuePlayer
}

// NewPlayer builds the cat at the spec's start position. controls may be nil
// when the caller drives Step directly.
func NewPlayer(spec prefabs.PlayerSpec, canvas prefabs.CanvasSpec, sprites Sprites, cues CuePlayer, controls *Controls) (*Player, error) {
	idleFrames, err := mirroredFrames(sprites, SpriteCat, spec.IdleMs, spec.IdleMs)
	if err != nil {
		return nil, err
	}
	idle, err := component.NewAnimation(idleFrames, true)
	if err != nil {
		return nil, err
	}
	attackFrames, err := mirroredFrames(sprites, SpriteCatAttack, spec.AttackMs, spec.AttackMs)
	if err != nil {
		return nil, err
	}
	attack, err := component.NewAnimation(attackFrames, false)
	if err != nil {
		return nil, err
	}

	return &Player{
		Body: Body{
			Kind: KindPlayer,
			X:    spec.StartX,
			Y:    spec.StartY,
			W:    spec.Width,
			H:    spec.Height,
			Anim: idle,
		},
		idle:     idle,
		attack:   attack,
		cooldown: component.NewCooldown(spec.CooldownMs),
		speed:    spec.Speed,
		box:      spec.Hitbox,
		canvasW:  float64(canvas.Width),
		canvasH:  float64(canvas.Height),
		controls: controls,
		cues:     cues,
	}, nil
}

// Update reads the bound controls and steps the cat.
func (p *Player) Update(dt float64) {
	if p.controls == nil {
		p.Step(dt, cp.Vector{}, false)
		return
	}
	p.Step(dt, p.controls.Direction, p.controls.Attack.Pressed())
}

// Step moves the cat by dir*speed, clamps it to the canvas and handles the
// attack button edge.
func (p *Player) Step(dt float64, dir cp.Vector, attackPressed bool) {
	pos := cp.Vector{X: p.X, Y: p.Y}.Add(dir.Mult(p.speed))
	p.X = common.Clamp(pos.X, 0, p.canvasW-p.W)
	p.Y = common.Clamp(pos.Y, 0, p.canvasH-p.H)

	p.cooldown.Tick(dt)
	if attackPressed && p.cooldown.Ready() {
		p.attack.Reset()
		p.cooldown.Restart()
		p.attacking = true
		if p.cues != nil {
			p.cues.Play(CueAttack, 1)
		}
	}

	if p.attacking {
		p.attack.Advance(dt)
		if p.attack.Finished() {
			p.attacking = false
		}
	}
	p.idle.Advance(dt)
}

func (p *Player) Draw(s render.Surface) {
	p.Body.Draw(s)
	if p.attacking {
		box := p.AttackBox()
		s.DrawImage(p.attack.Current(), box.X, box.Y, box.Width, box.Height)
	}
}

// AttackBox is the swipe area centred above the cat.
func (p *Player) AttackBox() common.Rect {
	return common.Rect{
		X:      p.X + p.W/2 - p.box.Width/2,
		Y:      p.Y + p.box.OffsetY,
		Width:  p.box.Width,
		Height: p.box.Height,
	}
}

// IsAttacking is true for exactly one playthrough of the attack animation.
func (p *Player) IsAttacking() bool { return p.attacking }

func (p *Player) IsAttackReady() bool { return p.cooldown.Ready() }

// AttackCooldownProgress is in [0,1]; 1 means ready.
func (p *Player) AttackCooldownProgress() float64 { return p.cooldown.Progress() }
