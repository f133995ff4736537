package system

import (
	"fmt"
	"log"

	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/render"
)

// KillMultiplier scales a rule's score when its enemy is killed instead of
// leaving the screen.
const KillMultiplier = 5

// Generator builds one new enemy.
type Generator func() (obj.Entity, error)

// SpawnRule spawns from Generator at most once per CadenceMs.
type SpawnRule struct {
	Generator Generator
	CadenceMs float64
	LastSpawn float64
	Score     int
}

// Reflector is an entity that can be swatted back into other enemies.
type Reflector interface {
	Reflected() bool
}

// Killer is an entity that can be marked dead from outside.
type Killer interface {
	Kill()
}

type liveEntity struct {
	id     uint64
	entity obj.Entity
	// seen is set once any part of the entity has been on the canvas, so
	// enemies that start above the top edge are not retired immediately.
	seen bool
}

// Spawner owns the spawn rules and every live enemy.
type Spawner struct {
	rules    []*SpawnRule
	live     []liveEntity
	scores   map[uint64]int
	nextID   uint64
	spawning bool
	canvasH  float64

	// Events receives EventKill and EventEscape with the points earned.
	// Reflected entities that leave the screen alive earn nothing.
	Events *component.CombatEventEmitter
	// OnRetire is called for every entity leaving the live set, including
	// on Clear. The pooled enemies are released here.
	OnRetire func(obj.Entity)
	Debug    bool
}

func NewSpawner(canvasH float64, events *component.CombatEventEmitter) *Spawner {
	return &Spawner{
		scores:   map[uint64]int{},
		spawning: true,
		canvasH:  canvasH,
		Events:   events,
	}
}

// RegisterRule appends a spawn rule. Rules are independent of each other.
func (s *Spawner) RegisterRule(gen Generator, cadenceMs float64, score int) {
	s.rules = append(s.rules, &SpawnRule{Generator: gen, CadenceMs: cadenceMs, Score: score})
}

func (s *Spawner) Rules() []*SpawnRule { return s.rules }

func (s *Spawner) Start()         { s.spawning = true }
func (s *Spawner) Stop()          { s.spawning = false }
func (s *Spawner) Spawning() bool { return s.spawning }
func (s *Spawner) Len() int       { return len(s.live) }

// Pending counts live entities still holding a score association.
func (s *Spawner) Pending() int { return len(s.scores) }

// Live returns the live entities in spawn order.
func (s *Spawner) Live() []obj.Entity {
	out := make([]obj.Entity, 0, len(s.live))
	for _, l := range s.live {
		out = append(out, l.entity)
	}
	return out
}

// Clear drops every live entity and its pending score without awarding it.
func (s *Spawner) Clear() {
	for _, l := range s.live {
		s.retire(l.entity)
	}
	s.live = s.live[:0]
	s.scores = map[uint64]int{}
}

// Update runs one frame: spawn, update, reflected collisions, retirement.
// now is the caller's monotonic clock in ms.
func (s *Spawner) Update(dt, now float64) error {
	if s.spawning {
		for _, r := range s.rules {
			if now-r.LastSpawn <= r.CadenceMs {
				continue
			}
			e, err := r.Generator()
			if err != nil {
				return fmt.Errorf("system: spawn: %w", err)
			}
			r.LastSpawn = now
			s.add(e, r.Score)
		}
	}

	for i := range s.live {
		l := &s.live[i]
		l.entity.Update(dt)
		if !l.seen && s.onScreen(l.entity) {
			l.seen = true
		}
	}

	s.resolveReflected()
	s.retireFinished()
	return nil
}

func (s *Spawner) add(e obj.Entity, score int) {
	s.nextID++
	id := s.nextID
	s.live = append(s.live, liveEntity{id: id, entity: e, seen: s.onScreen(e)})
	s.scores[id] = score
	if s.Debug {
		log.Printf("[Spawner] spawn id=%d %T score=%d", id, e, score)
	}
}

func (s *Spawner) onScreen(e obj.Entity) bool {
	b := e.Bounds()
	return b.Y+b.Height > 0 && b.Y < s.canvasH
}

func isReflected(e obj.Entity) bool {
	r, ok := e.(Reflector)
	return ok && r.Reflected()
}

func kill(e obj.Entity) {
	if k, ok := e.(Killer); ok {
		k.Kill()
	}
}

// resolveReflected kills both sides when a reflected projectile overlaps a
// live enemy.
func (s *Spawner) resolveReflected() {
	for _, p := range s.live {
		if p.entity.IsDead() || !isReflected(p.entity) {
			continue
		}
		for _, other := range s.live {
			if other.entity.IsDead() || isReflected(other.entity) {
				continue
			}
			if p.entity.Bounds().Intersects(other.entity.Bounds()) {
				kill(p.entity)
				kill(other.entity)
				break
			}
		}
	}
}

func (s *Spawner) exited(l liveEntity) bool {
	b := l.entity.Bounds()
	if b.Y > s.canvasH {
		return true
	}
	return l.seen && b.Y < -b.Height
}

func (s *Spawner) retireFinished() {
	kept := s.live[:0]
	for _, l := range s.live {
		dead := l.entity.IsDead()
		if !dead && !s.exited(l) {
			kept = append(kept, l)
			continue
		}

		score, ok := s.scores[l.id]
		delete(s.scores, l.id)
		// A swatted projectile flying off screen is neither a kill nor an escape.
		if ok && (dead || !isReflected(l.entity)) {
			evt := component.CombatEvent{Type: component.EventEscape, TargetID: l.id, Points: score}
			if dead {
				evt.Type = component.EventKill
				evt.Points = score * KillMultiplier
			}
			b := l.entity.Bounds()
			evt.PosX, evt.PosY = b.X, b.Y
			if s.Debug {
				log.Printf("[Spawner] retire id=%d %s points=%d", l.id, evt.Type, evt.Points)
			}
			s.Events.Emit(evt)
		}
		s.retire(l.entity)
	}
	for i := len(kept); i < len(s.live); i++ {
		s.live[i] = liveEntity{}
	}
	s.live = kept
}

func (s *Spawner) retire(e obj.Entity) {
	if s.OnRetire != nil {
		s.OnRetire(e)
	}
}

func (s *Spawner) Draw(surface render.Surface) {
	for _, l := range s.live {
		l.entity.Draw(surface)
	}
}
