package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blackcat/common"
	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/render"
)

const (
	CueEnemyDeath = "enemy_death"
	CueReflect    = "reflect"

	// reflectSpeed is how fast a swatted cucumber flies back up, in px/ms.
	reflectSpeed = 0.25
)

// ContactPolicy decides what a successful swipe does to an enemy.
type ContactPolicy int

const (
	// ContactStrike kills the enemy.
	ContactStrike ContactPolicy = iota
	// ContactDeflect turns the enemy into a player-aligned projectile.
	ContactDeflect
)

// Target is what enemies collide with: the cat.
type Target interface {
	Bounds() common.Rect
	AttackBox() common.Rect
	IsAttacking() bool
}

// variant is the per-kind look and behaviour of an enemy.
type variant struct {
	sprite   string
	size     float64
	frames   []float64
	mirrored bool
	spin     float64
	contact  ContactPolicy
}

var variants = map[Kind]variant{
	KindRobot:    {sprite: "robot", size: 24, frames: []float64{200, 200}, mirrored: true},
	KindFlippers: {sprite: "flippers", size: 16, frames: []float64{300, 100}, mirrored: true},
	KindCucumber: {sprite: "cucumber", size: 16, frames: []float64{100}, spin: 0.005, contact: ContactDeflect},
}

// EnemySprites lists every sprite an enemy kind can draw with.
func EnemySprites() []string {
	out := make([]string, 0, len(variants))
	for _, k := range []Kind{KindRobot, KindFlippers, KindCucumber} {
		out = append(out, variants[k].sprite)
	}
	return out
}

// RequiredSprites is every sprite a session can ask for. The sheet is
// checked against it before the menu and on every reload.
func RequiredSprites() []string {
	names := []string{SpriteCat, SpriteCatAttack}
	names = append(names, EnemySprites()...)
	for _, s := range []BossState{BossAnger, BossHurt, BossDefeat} {
		names = append(names, BossSprites[s])
	}
	return names
}

// EnemyConfig is everything Init needs to bring a pooled enemy to life.
type EnemyConfig struct {
	Kind    Kind
	Width   float64
	Height  float64
	Frames  []component.Frame
	Path    PathFunc
	Contact ContactPolicy
	// Spin is a rotation speed in rad/ms; zero draws upright.
	Spin float64

	Target Target
	Cues   CuePlayer
	Events *component.CombatEventEmitter
}

// NewEnemyConfig fills in the look and contact policy for kind.
func NewEnemyConfig(kind Kind, sprites Sprites, path PathFunc) (EnemyConfig, error) {
	v, ok := variants[kind]
	if !ok {
		return EnemyConfig{}, fmt.Errorf("obj: %s is not an enemy", kind)
	}
	if path == nil {
		return EnemyConfig{}, fmt.Errorf("obj: %s: nil path", kind)
	}

	var frames []component.Frame
	if v.mirrored {
		var err error
		frames, err = mirroredFrames(sprites, v.sprite, v.frames[0], v.frames[1])
		if err != nil {
			return EnemyConfig{}, err
		}
	} else {
		img, err := sprites.Sprite(v.sprite)
		if err != nil {
			return EnemyConfig{}, err
		}
		for _, d := range v.frames {
			frames = append(frames, component.Frame{Image: img, Duration: d})
		}
	}

	return EnemyConfig{
		Kind:    kind,
		Width:   v.size,
		Height:  v.size,
		Frames:  frames,
		Path:    path,
		Contact: v.contact,
		Spin:    v.spin,
	}, nil
}

// Enemy is a pooled robot, flippers or cucumber following a path.
type Enemy struct {
	Body

	path      PathFunc
	time      float64
	contact   ContactPolicy
	spin      float64
	angle     float64
	reflected bool
	active    bool

	target Target
	cues   CuePlayer
	events *component.CombatEventEmitter
}

// NewEnemy is the pool factory; the enemy is inert until Init.
func NewEnemy() *Enemy { return &Enemy{} }

// Init configures a freshly pooled enemy and places it at the start of its
// path.
func (e *Enemy) Init(cfg EnemyConfig) error {
	anim, err := component.NewAnimation(cfg.Frames, true)
	if err != nil {
		return fmt.Errorf("obj: %s: %w", cfg.Kind, err)
	}
	e.Kind = cfg.Kind
	e.W, e.H = cfg.Width, cfg.Height
	e.Anim = anim
	e.path = cfg.Path
	e.contact = cfg.Contact
	e.spin = cfg.Spin
	e.target = cfg.Target
	e.cues = cfg.Cues
	e.events = cfg.Events

	pos := e.path(0)
	e.X, e.Y = pos.X, pos.Y
	return nil
}

func (e *Enemy) Reset() {
	*e = Enemy{active: e.active}
}

func (e *Enemy) Activate()    { e.active = true }
func (e *Enemy) Deactivate()  { e.active = false }
func (e *Enemy) Active() bool { return e.active }

// Reflected reports whether the enemy has been swatted back.
func (e *Enemy) Reflected() bool { return e.reflected }

func (e *Enemy) Angle() float64 { return e.angle }

func (e *Enemy) Update(dt float64) {
	if e.path == nil {
		return
	}
	e.time += dt
	pos := e.path(e.time)
	e.X, e.Y = pos.X, pos.Y
	e.angle += e.spin * dt
	e.Anim.Advance(dt)

	if !e.Dead && !e.reflected {
		e.checkTarget()
	}
}

// checkTarget resolves the swipe first so a cat mid-attack is never hurt
// by the enemy it is hitting.
func (e *Enemy) checkTarget() {
	if e.target == nil {
		return
	}
	bounds := e.Bounds()
	if e.target.IsAttacking() {
		if bounds.Intersects(e.target.AttackBox()) {
			switch e.contact {
			case ContactDeflect:
				e.Reflect()
			default:
				e.Kill()
			}
		}
		return
	}
	if bounds.Intersects(e.target.Bounds()) {
		e.emit(component.EventContact)
	}
}

// Kill marks the enemy dead. The spawner scores it on retirement.
func (e *Enemy) Kill() {
	if e.Dead {
		return
	}
	e.Dead = true
	if e.cues != nil {
		e.cues.Play(CueEnemyDeath, 1)
	}
}

// Reflect sends the enemy straight back up as a player-aligned projectile.
func (e *Enemy) Reflect() {
	if e.reflected || e.Dead {
		return
	}
	e.reflected = true
	e.path = straightPath(cp.Vector{X: e.X, Y: e.Y}, cp.Vector{Y: -reflectSpeed})
	e.time = 0
	if e.cues != nil {
		e.cues.Play(CueReflect, 1)
	}
	e.emit(component.EventReflect)
}

func (e *Enemy) emit(t component.CombatEventType) {
	e.events.Emit(component.CombatEvent{Type: t, PosX: e.X, PosY: e.Y})
}

func (e *Enemy) Draw(s render.Surface) {
	img := e.Anim.Current()
	if img == nil {
		return
	}
	if e.spin != 0 {
		s.DrawImageRotated(img, e.X, e.Y, e.W, e.H, e.angle)
		return
	}
	s.DrawImage(img, e.X, e.Y, e.W, e.H)
}
