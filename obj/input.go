package obj

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

const (
	stickDeadzone       = 0.1
	touchStickRadius    = 30.0
	touchAttackThrottle = 200 * time.Millisecond
)

// Button is a digital input with this frame's and last frame's value.
type Button struct {
	Current  bool
	Previous bool
}

// Set records this frame's value, shifting the old one into Previous.
func (b *Button) Set(down bool) {
	b.Previous = b.Current
	b.Current = down
}

// Pressed reports a rising edge: up last frame, down this frame.
func (b Button) Pressed() bool { return b.Current && !b.Previous }

// Controls is the normalized input the game states read each frame.
type Controls struct {
	// Direction is deadzoned and never longer than 1.
	Direction cp.Vector

	Confirm Button
	Escape  Button
	Attack  Button
	Up      Button
	Down    Button

	// Width is the logical canvas width, used to split touch input.
	Width float64

	now             func() time.Time
	touchStick      map[ebiten.TouchID]cp.Vector
	lastTouchAttack time.Time
}

func NewControls(width float64) *Controls {
	return &Controls{
		Width:      width,
		now:        time.Now,
		touchStick: map[ebiten.TouchID]cp.Vector{},
	}
}

// Poll reads keyboard, gamepad and touch state. Call once per update.
func (c *Controls) Poll() {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y += 1
	}

	confirm := ebiten.IsKeyPressed(ebiten.KeyEnter)
	escape := ebiten.IsKeyPressed(ebiten.KeyEscape)
	attack := ebiten.IsKeyPressed(ebiten.KeyZ)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		if ebiten.IsStandardGamepadLayoutAvailable(gid) {
			stick := cp.Vector{
				X: ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal),
				Y: ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical),
			}
			if stick.Length() >= stickDeadzone {
				dir = dir.Add(stick)
			}
			if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
				dir.X -= 1
			}
			if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
				dir.X += 1
			}
			if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop) {
				dir.Y -= 1
			}
			if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom) {
				dir.Y += 1
			}
			confirm = confirm ||
				ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) ||
				ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonCenterRight)
			escape = escape || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
			attack = attack || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		}
	}

	touchDir, touchAttack := c.pollTouches()
	dir = dir.Add(touchDir)
	attack = attack || touchAttack

	c.apply(dir, confirm, escape, attack)
}

// apply normalizes dir and advances every button by one frame.
func (c *Controls) apply(dir cp.Vector, confirm, escape, attack bool) {
	if dir.Length() < stickDeadzone {
		dir = cp.Vector{}
	}
	c.Direction = dir.Clamp(1)

	c.Confirm.Set(confirm)
	c.Escape.Set(escape)
	c.Attack.Set(attack)
	c.Up.Set(c.Direction.Y < 0)
	c.Down.Set(c.Direction.Y > 0)
}

// pollTouches treats a touch that starts on the left half as a virtual
// stick and a tap on the right half as the attack button.
func (c *Controls) pollTouches() (cp.Vector, bool) {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if float64(x) < c.Width/2 {
			c.touchStick[id] = cp.Vector{X: float64(x), Y: float64(y)}
		}
	}

	var dir cp.Vector
	attack := false
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pos := cp.Vector{X: float64(x), Y: float64(y)}
		if origin, ok := c.touchStick[id]; ok {
			dir = dir.Add(pos.Sub(origin).Mult(1 / touchStickRadius))
			continue
		}
		if pos.X >= c.Width/2 {
			attack = true
		}
	}
	for id := range c.touchStick {
		if inpututil.IsTouchJustReleased(id) {
			delete(c.touchStick, id)
		}
	}

	if attack {
		now := c.now()
		if now.Sub(c.lastTouchAttack) < touchAttackThrottle {
			attack = false
		} else {
			c.lastTouchAttack = now
		}
	}
	return dir, attack
}
