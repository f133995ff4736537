package scenes

import (
	"fmt"
	"log"

	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/fsm"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/prefabs"
	"github.com/milk9111/blackcat/render"
	"github.com/milk9111/blackcat/system"
)

// timer is a delayed action owned by one session epoch.
type timer struct {
	epoch     int
	remaining float64
	fire      func()
}

// Game is one play session: the cat, the spawner and, after the trigger
// time, the boss fight.
type Game struct {
	ctx   *Context
	pause fsm.State
	over  fsm.State

	spec       *prefabs.GameSpec
	player     *obj.Player
	background *obj.Background
	world      *system.World
	events     *component.CombatEventEmitter
	boss       *obj.Boss

	elapsed          float64
	bossFightStarted bool
	bossPending      bool
	bossDefeated     bool
	score            int

	timers []timer
	epoch  int

	// outcome is the transition requested during this update.
	outcome *Outcome
	err     error
}

// OnEnter starts a fresh session. Timers scheduled by an earlier session are
// dropped.
func (g *Game) OnEnter(...any) {
	g.epoch++
	g.spec = g.ctx.Store.Game()
	g.player = nil
	g.world = nil
	g.boss = nil
	g.elapsed = 0
	g.bossFightStarted = false
	g.bossPending = false
	g.bossDefeated = false
	g.score = 0
	g.outcome = nil

	g.ctx.Audio.StopAllLoops()
	g.ctx.Audio.PlayLoop(MusicBackground, g.spec.Session.MusicVolumes)

	g.err = g.setup()
	if g.err != nil {
		log.Printf("[Game] session setup failed: %v", g.err)
	}
}

func (g *Game) setup() error {
	player, err := obj.NewPlayer(g.spec.Player, g.spec.Canvas, g.ctx.Sprites, g.ctx.Audio, g.ctx.Controls)
	if err != nil {
		return fmt.Errorf("scenes: new player: %w", err)
	}
	g.player = player
	g.background = obj.NewBackground(g.spec.Session.ScrollSpeed)

	g.events = &component.CombatEventEmitter{}
	g.events.Subscribe(g.onCombat)

	world, err := system.NewWorld(system.WorldConfig{
		Game:    g.spec,
		Sprites: g.ctx.Sprites,
		Target:  player,
		Cues:    g.ctx.Audio,
		Events:  g.events,
		Scripts: g.ctx.Scripts,
		Debug:   g.ctx.Debug,
	})
	if err != nil {
		return fmt.Errorf("scenes: new world: %w", err)
	}
	g.world = world
	return g.world.RegisterPhase(g.spec, prefabs.PhaseNormal)
}

func (g *Game) onCombat(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventKill, component.EventEscape:
		g.AddScore(evt.Points)
	case component.EventContact:
		g.finish(false)
	case component.EventReflect, component.EventBossHit:
		if g.ctx.Debug {
			log.Printf("[Game] %s at (%.0f, %.0f)", evt.Type, evt.PosX, evt.PosY)
		}
	}
}

func (g *Game) OnUpdate(dt float64) error {
	if g.err != nil {
		return g.err
	}
	if g.ctx.Controls.Escape.Pressed() {
		g.ctx.Machine.SetState(g.pause, g)
		return nil
	}

	if !g.bossFightStarted && g.elapsed > g.spec.Session.BossTriggerMs {
		g.startBossFight()
	}
	g.elapsed += dt
	g.tickTimers(dt)

	system.ResolveBossAttack(g.boss, g.player, g.events)

	g.background.Update(dt)
	g.player.Update(dt)

	if !g.bossDefeated {
		if err := g.world.Spawner.Update(dt, g.elapsed); err != nil {
			return err
		}
	}
	if g.bossPending && g.world.Spawner.Len() == 0 {
		if err := g.spawnBoss(); err != nil {
			return err
		}
	}
	g.updateBoss(dt)

	g.applyTransition()
	return nil
}

func (g *Game) startBossFight() {
	g.bossFightStarted = true
	g.bossPending = true
	if g.ctx.Debug {
		log.Printf("[Game] boss fight at %.0fms, score %d", g.elapsed, g.score)
	}

	g.ctx.Audio.StopAllLoops()
	g.world.Spawner.Stop()
	g.world.Spawner.Clear()
	if err := g.world.RegisterPhase(g.spec, prefabs.PhaseBoss); err != nil {
		g.err = err
		return
	}

	g.after(g.spec.Session.BossMusicDelay, func() {
		g.ctx.Audio.PlayLoop(MusicBoss, g.spec.Session.MusicVolumes)
		g.world.Spawner.Start()
	})
}

func (g *Game) spawnBoss() error {
	boss, err := obj.NewBoss(g.spec.Boss, g.spec.Canvas, g.ctx.Sprites, g.player, g.ctx.Audio)
	if err != nil {
		return fmt.Errorf("scenes: new boss: %w", err)
	}
	boss.OnContact = func() { g.finish(false) }
	g.boss = boss
	g.bossPending = false
	return nil
}

func (g *Game) updateBoss(dt float64) {
	if g.boss == nil {
		return
	}
	g.boss.Update(dt)
	system.ResolveReflectedHit(g.boss, g.world.Spawner.Live(), g.events)

	if g.boss.IsDefeated() && !g.bossDefeated {
		g.bossDefeated = true
		g.world.Spawner.Stop()
		g.world.Spawner.Clear()
	}
	if g.bossDefeated && g.boss.ExitedBottom() {
		g.AddScore(g.spec.Session.VictoryBonus)
		g.boss = nil
		g.finish(true)
	}
}

// after schedules fire once delay ms of session time have passed.
func (g *Game) after(delay float64, fire func()) {
	g.timers = append(g.timers, timer{epoch: g.epoch, remaining: delay, fire: fire})
}

func (g *Game) tickTimers(dt float64) {
	pending := g.timers[:0]
	var due []func()
	for _, t := range g.timers {
		if t.epoch != g.epoch {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t.fire)
			continue
		}
		pending = append(pending, t)
	}
	g.timers = pending
	for _, fire := range due {
		fire()
	}
}

// finish requests the game over screen. The first request in an update wins.
func (g *Game) finish(victory bool) {
	if g.outcome != nil {
		return
	}
	g.outcome = &Outcome{Victory: victory}
}

func (g *Game) applyTransition() {
	if g.outcome == nil {
		return
	}
	out := *g.outcome
	out.Score = g.score
	g.outcome = nil
	log.Printf("[Game] session over: victory=%t score=%d", out.Victory, out.Score)
	g.ctx.Machine.SetState(g.over, out)
}

func (g *Game) OnLeave() {}

func (g *Game) Score() int { return g.score }

// AddScore ignores negative amounts.
func (g *Game) AddScore(n int) {
	if n < 0 {
		return
	}
	g.score += n
}

func (g *Game) Elapsed() float64       { return g.elapsed }
func (g *Game) Boss() *obj.Boss        { return g.boss }
func (g *Game) BossPending() bool      { return g.bossPending }
func (g *Game) World() *system.World   { return g.world }
func (g *Game) Player() *obj.Player    { return g.player }
func (g *Game) BossFightStarted() bool { return g.bossFightStarted }

// DrawFrozen paints the session without advancing it. Pause draws it under
// its overlay.
func (g *Game) DrawFrozen(s render.Surface) {
	if g.player == nil || g.world == nil {
		return
	}
	g.background.Draw(s)
	g.player.Draw(s)
	g.world.Spawner.Draw(s)
	if g.boss != nil {
		g.boss.Draw(s)
	}
	drawHUD(s, g.score, g.player, g.boss)
}

func (g *Game) OnDraw(s render.Surface) { g.DrawFrozen(s) }
