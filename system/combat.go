package system

import (
	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/obj"
)

// ResolveBossAttack damages the boss when the cat's swipe lands on it.
func ResolveBossAttack(boss *obj.Boss, cat obj.Target, events *component.CombatEventEmitter) bool {
	if boss == nil || cat == nil {
		return false
	}
	if !boss.CheckAttackCollision(cat) {
		return false
	}
	return damageBoss(boss, events)
}

// ResolveReflectedHit lets the first live reflected projectile touching the
// boss hit it. The projectile dies whether or not the damage lands; at most
// one projectile is consumed per frame.
func ResolveReflectedHit(boss *obj.Boss, live []obj.Entity, events *component.CombatEventEmitter) bool {
	if boss == nil || boss.State() == obj.BossDefeat {
		return false
	}
	for _, e := range live {
		if e.IsDead() || !isReflected(e) {
			continue
		}
		if !boss.Overlaps(e.Bounds()) {
			continue
		}
		kill(e)
		damageBoss(boss, events)
		return true
	}
	return false
}

func damageBoss(boss *obj.Boss, events *component.CombatEventEmitter) bool {
	if !boss.TakeDamage() {
		return false
	}
	events.Emit(component.CombatEvent{
		Type: component.EventBossHit,
		PosX: boss.X,
		PosY: boss.Y,
	})
	return true
}
