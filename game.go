package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/blackcat/assets"
	"github.com/milk9111/blackcat/audio"
	"github.com/milk9111/blackcat/fsm"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/prefabs"
	"github.com/milk9111/blackcat/render"
	"github.com/milk9111/blackcat/scenes"
	"github.com/milk9111/blackcat/system"
)

type Options struct {
	Debug bool
	Watch bool
	Mute  bool
}

type Game struct {
	machine  *fsm.Machine
	controls *obj.Controls
	canvas   *render.Canvas

	store   *prefabs.Store
	sprites *assets.Sprites
	audio   *audio.Engine
	scripts *system.SpawnScripts
	watcher *prefabs.Watcher

	width, height float64
	maxDelta      float64
	last          time.Time
	debug         bool
}

func NewGame(opts Options) (*Game, error) {
	store, err := prefabs.NewStore()
	if err != nil {
		return nil, err
	}
	// A bad or incomplete sprite sheet fails here, before the menu.
	sprites, err := assets.NewSprites(store.Sprites(), obj.RequiredSprites()...)
	if err != nil {
		return nil, err
	}

	var actx *ebaudio.Context
	if !opts.Mute {
		actx = ebaudio.NewContext(audio.SampleRate)
	}
	engine := audio.NewEngine(actx, store.Sounds())

	spec := store.Game()
	g := &Game{
		controls: obj.NewControls(float64(spec.Canvas.Width)),
		canvas:   render.NewCanvas(),
		store:    store,
		sprites:  sprites,
		audio:    engine,
		scripts:  system.NewSpawnScripts(),
		width:    float64(spec.Canvas.Width),
		height:   float64(spec.Canvas.Height),
		maxDelta: spec.Session.MaxFrameDeltaMs,
		debug:    opts.Debug,
	}

	ctx := &scenes.Context{
		Controls: g.controls,
		Audio:    engine,
		Sprites:  sprites,
		Store:    store,
		Scripts:  g.scripts,
		Debug:    opts.Debug,
		ToggleFullscreen: func() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		},
	}
	scenes.NewStates(ctx)
	g.machine = ctx.Machine

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("[Reload] watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	g.reload()

	g.controls.Poll()
	return g.machine.Update(g.delta())
}

// delta returns the milliseconds since the previous update, clamped so a
// stall does not teleport everything on screen.
func (g *Game) delta() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now
	return math.Min(dt, g.maxDelta)
}

// reload applies prefab edits picked up by the watcher. Gameplay tuning is
// read again by the next session.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Drain()
	if err != nil {
		log.Printf("[Reload] watcher: %v", err)
	}
	for _, name := range changed {
		if err := g.store.Reload(name); err != nil {
			log.Printf("[Reload] %s: %v", name, err)
			continue
		}
		switch {
		case name == "sprites.yaml":
			if err := g.sprites.Preload(g.store.Sprites(), obj.RequiredSprites()...); err != nil {
				log.Printf("[Reload] sprites rejected, keeping the previous sheet: %v", err)
				continue
			}
		case name == "sounds.yaml":
			g.audio.Load(g.store.Sounds())
		case strings.HasPrefix(name, "scripts/"):
			g.scripts.Forget(name)
		}
		log.Printf("[Reload] %s (version %d)", name, g.store.Version())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Bind(screen)
	g.machine.Draw(g.canvas)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  %T", ebiten.ActualFPS(), g.machine.Current()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
