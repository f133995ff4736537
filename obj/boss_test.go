package obj

import (
	"testing"

	"github.com/milk9111/blackcat/common"
)

func newTestBoss(t *testing.T, target Target, cues CuePlayer) *Boss {
	t.Helper()
	b, err := NewBoss(testBossSpec(), testCanvas, stubSprites{}, target, cues)
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	return b
}

// hit waits out invincibility and lands one point of damage.
func hit(t *testing.T, b *Boss) {
	t.Helper()
	b.Update(301)
	if !b.TakeDamage() {
		t.Fatalf("damage did not land at health %d (state %s)", b.Health(), b.State())
	}
}

func TestBossSpawnGrace(t *testing.T) {
	b := newTestBoss(t, nil, nil)
	if b.X != 142 || b.Y != 20 {
		t.Fatalf("spawn = (%v,%v), want (142,20)", b.X, b.Y)
	}
	if b.TakeDamage() {
		t.Fatalf("damage landed during spawn grace")
	}
	if b.Health() != 8 {
		t.Fatalf("health = %d, want 8", b.Health())
	}
}

func TestBossThreeHitsStaysInStageOne(t *testing.T) {
	cues := &cueLog{}
	b := newTestBoss(t, nil, cues)
	for i := 0; i < 3; i++ {
		hit(t, b)
	}
	b.Update(16)
	if b.Health() != 5 || b.Stage() != 1 {
		t.Fatalf("health %d stage %d, want 5 and 1", b.Health(), b.Stage())
	}
	if cues.count(CueBossHit) != 3 {
		t.Fatalf("boss_hit played %d times, want 3", cues.count(CueBossHit))
	}

	hit(t, b)
	b.Update(16)
	if b.Health() != 4 || b.Stage() != 2 {
		t.Fatalf("health %d stage %d, want 4 and 2", b.Health(), b.Stage())
	}
	if b.State() != BossRepositioning {
		t.Fatalf("state = %s, want repositioning", b.State())
	}
}

func TestBossTakeDamageWhileInvincibleIsNoop(t *testing.T) {
	b := newTestBoss(t, nil, nil)
	hit(t, b)

	type snapshot struct {
		health int
		stage  int
		state  BossState
		hurt   float64
		inv    float64
	}
	take := func() snapshot {
		return snapshot{b.Health(), b.Stage(), b.State(), b.HurtRemaining(), b.health.InvincibleFor()}
	}

	before := take()
	if b.TakeDamage() {
		t.Fatalf("damage landed while invincible")
	}
	if after := take(); after != before {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
}

func TestBossRepositionsOnce(t *testing.T) {
	b := newTestBoss(t, nil, nil)
	for i := 0; i < 4; i++ {
		hit(t, b)
	}

	b.Update(16)
	if b.State() != BossRepositioning {
		t.Fatalf("state = %s, want repositioning", b.State())
	}

	// The hurt window from the fourth hit expires during the move and must
	// not cut it short.
	for i := 0; i < 200 && b.State() == BossRepositioning; i++ {
		b.Update(16)
		if b.State() == BossHurt {
			t.Fatalf("hurt timer interrupted repositioning")
		}
	}
	if b.State() != BossAnger {
		t.Fatalf("state = %s, want anger after arriving", b.State())
	}
	if b.X != 142 || b.Y != 80 {
		t.Fatalf("arrived at (%v,%v), want (142,80)", b.X, b.Y)
	}

	for b.Health() > 1 {
		hit(t, b)
		for i := 0; i < 20; i++ {
			b.Update(16)
			if b.State() == BossRepositioning {
				t.Fatalf("repositioned again at health %d", b.Health())
			}
		}
	}
}

func TestBossDefeatIsAbsorbing(t *testing.T) {
	b := newTestBoss(t, nil, nil)
	for b.Health() > 0 {
		hit(t, b)
	}
	b.Update(16)
	if b.State() != BossDefeat || b.Stage() != 3 || !b.IsDefeated() {
		t.Fatalf("state %s stage %d, want defeat and 3", b.State(), b.Stage())
	}

	b.setState(BossAnger)
	b.Update(1000)
	if b.TakeDamage() {
		t.Fatalf("damage landed after defeat")
	}
	if b.State() != BossDefeat || b.Health() != 0 {
		t.Fatalf("left defeat: state %s health %d", b.State(), b.Health())
	}

	y := b.Y
	b.Update(16)
	b.Update(16)
	if b.Y != y+2 {
		t.Fatalf("defeat drift = %v, want 2", b.Y-y)
	}
}

func TestBossExitsBottom(t *testing.T) {
	b := newTestBoss(t, nil, nil)
	for b.Health() > 0 {
		hit(t, b)
	}
	for i := 0; i < 1000 && !b.ExitedBottom(); i++ {
		b.Update(16)
	}
	if !b.ExitedBottom() || b.Y <= 480 {
		t.Fatalf("boss still on screen at y=%v", b.Y)
	}
}

func TestBossAttackCollision(t *testing.T) {
	everywhere := common.Rect{X: -1000, Y: -1000, Width: 3000, Height: 3000}

	tests := []struct {
		name      string
		attacking bool
		wait      float64
		defeated  bool
		want      bool
	}{
		{name: "not attacking", wait: 301},
		{name: "spawn grace", attacking: true},
		{name: "lands", attacking: true, wait: 301, want: true},
		{name: "defeated", attacking: true, wait: 301, defeated: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoss(t, nil, nil)
			if tc.defeated {
				for b.Health() > 0 {
					hit(t, b)
				}
			}
			if tc.wait > 0 {
				b.Update(tc.wait)
			}
			target := &stubTarget{box: everywhere, attacking: tc.attacking}
			if got := b.CheckAttackCollision(target); got != tc.want {
				t.Fatalf("CheckAttackCollision = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBossContact(t *testing.T) {
	target := &stubTarget{body: common.Rect{X: 0, Y: 0, Width: 320, Height: 480}}
	b := newTestBoss(t, target, nil)
	contacts := 0
	b.OnContact = func() { contacts++ }

	b.Update(100)
	if contacts != 0 {
		t.Fatalf("contact fired during spawn grace")
	}
	b.Update(300)
	if contacts != 1 {
		t.Fatalf("contacts = %d, want 1", contacts)
	}

	target.attacking = true
	b.Update(16)
	if contacts != 1 {
		t.Fatalf("contact fired while the cat was attacking")
	}
}
