package obj

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blackcat/common"
	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/prefabs"
)

const CueBossHit = "boss_hit"

type BossState int

const (
	BossAnger BossState = iota
	BossHurt
	BossRepositioning
	BossDefeat
)

func (s BossState) String() string {
	switch s {
	case BossAnger:
		return "anger"
	case BossHurt:
		return "hurt"
	case BossRepositioning:
		return "repositioning"
	case BossDefeat:
		return "defeat"
	}
	return fmt.Sprintf("boss_state(%d)", int(s))
}

// BossSprites are the sprites NewBoss needs, keyed by the state that shows
// them.
var BossSprites = map[BossState]string{
	BossAnger:  "boss_anger",
	BossHurt:   "boss_hurt",
	BossDefeat: "boss_defeat",
}

const bossFrameMs = 200

// Boss is the end-of-session encounter. Its stage is derived from health
// every update; defeat is absorbing.
type Boss struct {
	Body

	health       *component.Health
	stage        int
	state        BossState
	time         float64
	hurtTimer    float64
	repositioned bool

	spec    prefabs.BossSpec
	canvasW float64
	canvasH float64
	anims   map[BossState]*component.Animation

	target Target
	cues   CuePlayer

	// OnContact fires when the boss touches the cat outside of an attack.
	OnContact func()
}

// NewBoss places the boss at the top centre with its spawn grace running.
func NewBoss(spec prefabs.BossSpec, canvas prefabs.CanvasSpec, sprites Sprites, target Target, cues CuePlayer) (*Boss, error) {
	b := &Boss{
		Body: Body{
			Kind: KindBoss,
			W:    spec.Width,
			H:    spec.Height,
		},
		health:  component.NewHealth(spec.Health),
		stage:   1,
		state:   BossAnger,
		spec:    spec,
		canvasW: float64(canvas.Width),
		canvasH: float64(canvas.Height),
		anims:   map[BossState]*component.Animation{},
		target:  target,
		cues:    cues,
	}
	for state, name := range BossSprites {
		img, err := sprites.Sprite(name)
		if err != nil {
			return nil, err
		}
		anim, err := component.NewAnimation([]component.Frame{{Image: img, Duration: bossFrameMs}}, true)
		if err != nil {
			return nil, err
		}
		b.anims[state] = anim
	}
	b.anims[BossRepositioning] = b.anims[BossAnger]
	b.Anim = b.anims[BossAnger]

	b.health.OnDeath = func(*component.Health) {
		log.Printf("[Boss] health depleted after %.0fms", b.time)
	}

	b.X = b.centerX()
	b.Y = spec.StartY
	b.health.StartInvincibility(spec.SpawnGraceMs)
	b.stage = b.stageFor(b.health.Current)
	return b, nil
}

func (b *Boss) centerX() float64 { return b.canvasW/2 - b.W/2 }

func (b *Boss) Update(dt float64) {
	b.time += dt
	b.updateTimers(dt)
	b.updateStage()

	if b.state == BossRepositioning {
		b.reposition()
	} else {
		b.move()
	}

	b.Anim.Advance(dt)
	b.checkContact()
}

func (b *Boss) updateTimers(dt float64) {
	b.health.Tick(dt)
	if b.hurtTimer <= 0 {
		return
	}
	b.hurtTimer -= dt
	// Only a hurt boss recovers; repositioning must run to completion.
	if b.hurtTimer <= 0 && b.state == BossHurt && b.stage < 3 {
		b.setState(BossAnger)
	}
}

func (b *Boss) stageFor(health int) int {
	switch {
	case health > b.spec.StageTwoAt:
		return 1
	case health > 0:
		return 2
	}
	return 3
}

func (b *Boss) updateStage() {
	prev := b.stage
	b.stage = b.stageFor(b.health.Current)
	if b.stage == 3 {
		b.setState(BossDefeat)
		return
	}
	if prev == 1 && b.stage == 2 && !b.repositioned {
		b.repositioned = true
		b.setState(BossRepositioning)
	}
}

func (b *Boss) reposition() {
	pos := cp.Vector{X: b.X, Y: b.Y}
	anchor := cp.Vector{X: b.centerX(), Y: b.spec.Sweep.BaseY}
	delta := anchor.Sub(pos)
	dist := delta.Length()
	if dist < b.spec.RepositionSpeed {
		b.X, b.Y = anchor.X, anchor.Y
		b.setState(BossAnger)
		return
	}
	pos = pos.Add(delta.Mult(b.spec.RepositionSpeed / dist))
	b.X, b.Y = pos.X, pos.Y
}

func (b *Boss) move() {
	switch b.state {
	case BossHurt:
		return
	case BossDefeat:
		b.Y += b.spec.DefeatDrift
		return
	}

	var pos cp.Vector
	if b.stage == 1 {
		o := b.spec.Orbit
		center := cp.Vector{X: b.centerX(), Y: o.CenterY}
		pos = center.Add(cp.ForAngle(b.time/o.PeriodMs - math.Pi/2).Mult(o.Radius))
	} else {
		s := b.spec.Sweep
		reach := b.canvasW/2 - b.W/2 - s.Margin
		pos = cp.Vector{
			X: b.centerX() + math.Sin(b.time/s.PeriodMs)*reach,
			Y: s.BaseY + math.Sin(b.time/s.BobPeriodMs)*s.BobHeight,
		}
	}
	b.X, b.Y = pos.X, pos.Y
}

// setState ignores requests to leave defeat.
func (b *Boss) setState(s BossState) {
	if b.state == s || b.state == BossDefeat {
		return
	}
	b.state = s
	b.Anim = b.anims[s]
}

func (b *Boss) checkContact() {
	if b.state == BossDefeat || b.health.Invincible() || b.target == nil {
		return
	}
	if b.target.IsAttacking() {
		return
	}
	if b.Bounds().Intersects(b.target.Bounds()) && b.OnContact != nil {
		b.OnContact()
	}
}

// CheckAttackCollision reports whether t's swipe lands on the boss.
func (b *Boss) CheckAttackCollision(t Target) bool {
	if t == nil || !t.IsAttacking() || b.health.Invincible() || b.state == BossDefeat {
		return false
	}
	return b.Bounds().Intersects(t.AttackBox())
}

// TakeDamage removes one health point and stuns the boss. It is a no-op
// while invincible or defeated and reports whether damage landed.
func (b *Boss) TakeDamage() bool {
	if b.health.Invincible() || b.state == BossDefeat {
		return false
	}
	if !b.health.ApplyDamage(1) {
		return false
	}
	b.health.StartInvincibility(b.spec.InvincibleMs)
	b.setState(BossHurt)
	b.hurtTimer = b.spec.HurtMs
	if b.cues != nil {
		b.cues.Play(CueBossHit, 1)
	}
	return true
}

func (b *Boss) Health() int            { return b.health.Current }
func (b *Boss) MaxHealth() int         { return b.health.Max }
func (b *Boss) Stage() int             { return b.stage }
func (b *Boss) State() BossState       { return b.state }
func (b *Boss) IsInvincible() bool     { return b.health.Invincible() }
func (b *Boss) IsDefeated() bool       { return b.health.Current <= 0 }
func (b *Boss) HurtRemaining() float64 { return b.hurtTimer }

// ExitedBottom reports whether the boss has drifted below the canvas.
func (b *Boss) ExitedBottom() bool { return b.Y > b.canvasH }

// Overlaps is the strict AABB test against another entity's bounds.
func (b *Boss) Overlaps(r common.Rect) bool { return b.Bounds().Intersects(r) }
