package system

import (
	"math/rand"
	"testing"

	"github.com/d5/tengo/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blackcat/component"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/prefabs"
)

type stubSprites struct{}

func (stubSprites) Sprite(string) (*ebiten.Image, error)   { return nil, nil }
func (stubSprites) Mirrored(string) (*ebiten.Image, error) { return nil, nil }

func newTestWorld(t *testing.T, scripts *SpawnScripts) (*World, *prefabs.GameSpec) {
	t.Helper()
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	w, err := NewWorld(WorldConfig{
		Game:    game,
		Sprites: stubSprites{},
		Events:  &component.CombatEventEmitter{},
		Scripts: scripts,
		Rand:    rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w, game
}

func TestWorldSpawnsFromPool(t *testing.T) {
	w, game := newTestWorld(t, NewSpawnScripts())
	if err := w.RegisterPhase(game, prefabs.PhaseNormal); err != nil {
		t.Fatalf("RegisterPhase: %v", err)
	}
	if got, want := len(w.Spawner.Rules()), len(game.Phase(prefabs.PhaseNormal)); got != want {
		t.Fatalf("rules = %d, want %d", got, want)
	}

	if err := w.Spawner.Update(16, 2001); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if w.Spawner.Len() != 3 {
		t.Fatalf("live = %d, want one of each normal enemy", w.Spawner.Len())
	}
	if w.Pool.InUse() != 3 {
		t.Fatalf("pool in use = %d, want 3", w.Pool.InUse())
	}

	w.Spawner.Clear()
	if w.Pool.InUse() != 0 {
		t.Fatalf("Clear did not release pooled enemies: %d in use", w.Pool.InUse())
	}
}

func TestWorldPhasesAccumulate(t *testing.T) {
	w, game := newTestWorld(t, nil)
	if err := w.RegisterPhase(game, prefabs.PhaseNormal); err != nil {
		t.Fatalf("normal: %v", err)
	}
	if err := w.RegisterPhase(game, prefabs.PhaseBoss); err != nil {
		t.Fatalf("boss: %v", err)
	}
	want := len(game.Phase(prefabs.PhaseNormal)) + len(game.Phase(prefabs.PhaseBoss))
	if got := len(w.Spawner.Rules()); got != want {
		t.Fatalf("rules = %d, want %d", got, want)
	}
}

func TestWorldGeneratorRejectsBadRules(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	tests := []struct {
		name string
		spec prefabs.EnemySpec
	}{
		{name: "kind", spec: prefabs.EnemySpec{Kind: "ghost", Path: "fall"}},
		{name: "path", spec: prefabs.EnemySpec{Kind: "robot", Path: "spiral"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := w.Generator(tc.spec); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := defaultParams("fall", rng, 320, map[string]float64{"min_speed": 0.08, "speed_range": 0})
	if p["speed"] != 0.08 {
		t.Fatalf("speed = %v, want 0.08", p["speed"])
	}
	if p["x"] < 0 || p["x"] >= 320 {
		t.Fatalf("x = %v, want within the canvas", p["x"])
	}

	d := defaultParams("drift", rng, 320, map[string]float64{"start_y": -40})
	if d["start_y"] != -40 {
		t.Fatalf("start_y = %v, want the configured -40", d["start_y"])
	}
}

func TestSpawnScripts(t *testing.T) {
	s := NewSpawnScripts()
	tests := []struct {
		script string
		path   string
		keys   []string
	}{
		{script: "robot.tengo", path: "zigzag", keys: []string{"x", "vy", "amplitude", "frequency"}},
		{script: "flippers.tengo", path: "drift", keys: []string{"x", "vx", "vy", "amplitude", "frequency", "phase", "start_y"}},
	}
	for _, tc := range tests {
		t.Run(tc.script, func(t *testing.T) {
			p, err := s.Params(tc.script, 320, nil)
			if err != nil {
				t.Fatalf("Params: %v", err)
			}
			for _, k := range tc.keys {
				if _, ok := p[k]; !ok {
					t.Fatalf("params missing %q: %v", k, p)
				}
			}
			if p["x"] < 0 || p["x"] >= 320 {
				t.Fatalf("x = %v, want within the canvas", p["x"])
			}
			if _, err := obj.BuildPath(tc.path, p); err != nil {
				t.Fatalf("BuildPath: %v", err)
			}
		})
	}

	if _, err := s.Params("missing.tengo", 320, nil); err == nil {
		t.Fatalf("expected error for a missing script")
	}
}

func TestSpawnScriptsIntParams(t *testing.T) {
	p, err := NewSpawnScripts().Params("flippers.tengo", 320, nil)
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p["start_y"] != -16 {
		t.Fatalf("start_y = %v, want -16", p["start_y"])
	}
}

func TestObjectToParams(t *testing.T) {
	if _, err := objectToParams(&tengo.String{Value: "x"}); err == nil {
		t.Fatalf("non-map params accepted")
	}
	bad := &tengo.Map{Value: map[string]tengo.Object{"x": &tengo.String{Value: "left"}}}
	if _, err := objectToParams(bad); err == nil {
		t.Fatalf("non-numeric param accepted")
	}
	good := &tengo.Map{Value: map[string]tengo.Object{
		"x":  &tengo.Int{Value: 3},
		"vy": &tengo.Float{Value: 0.5},
	}}
	p, err := objectToParams(good)
	if err != nil {
		t.Fatalf("objectToParams: %v", err)
	}
	if p["x"] != 3 || p["vy"] != 0.5 {
		t.Fatalf("params = %v", p)
	}
}
