package system

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/pool"
	"github.com/milk9111/blackcat/prefabs"
)

// World owns the enemy pool, the spawner and the rule catalog for one play
// session.
type World struct {
	Pool    *pool.Pool[*obj.Enemy]
	Spawner *Spawner
	Scripts *SpawnScripts

	sprites obj.Sprites
	target  obj.Target
	cues    obj.CuePlayer
	events  *component.CombatEventEmitter
	rng     *rand.Rand
	width   float64
}

// WorldConfig is what NewWorld wires into every enemy it spawns.
type WorldConfig struct {
	Game    *prefabs.GameSpec
	Sprites obj.Sprites
	Target  obj.Target
	Cues    obj.CuePlayer
	Events  *component.CombatEventEmitter
	Scripts *SpawnScripts
	// Rand defaults to a time-seeded source.
	Rand  *rand.Rand
	Debug bool
}

// NewWorld creates a world with an empty spawner whose retired enemies go
// back to the pool.
func NewWorld(cfg WorldConfig) (*World, error) {
	if cfg.Game == nil {
		return nil, fmt.Errorf("world: nil game spec")
	}
	p, err := pool.New(obj.NewEnemy, cfg.Game.Pool.Initial, cfg.Game.Pool.Growth, cfg.Game.Pool.Max)
	if err != nil {
		return nil, err
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	w := &World{
		Pool:    p,
		Spawner: NewSpawner(float64(cfg.Game.Canvas.Height), cfg.Events),
		Scripts: cfg.Scripts,
		sprites: cfg.Sprites,
		target:  cfg.Target,
		cues:    cfg.Cues,
		events:  cfg.Events,
		rng:     rng,
		width:   float64(cfg.Game.Canvas.Width),
	}
	w.Spawner.Debug = cfg.Debug
	w.Spawner.OnRetire = w.release
	return w, nil
}

func (w *World) release(e obj.Entity) {
	if enemy, ok := e.(*obj.Enemy); ok {
		w.Pool.Release(enemy)
	}
}
