package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if spec.Boss.Health != 8 || spec.Boss.StageTwoAt != 4 {
		t.Fatalf("boss health/threshold = %d/%d, want 8/4", spec.Boss.Health, spec.Boss.StageTwoAt)
	}
	if got := len(spec.Phase(PhaseNormal)); got != 3 {
		t.Fatalf("normal phase rules = %d, want 3", got)
	}
	boss := spec.Phase(PhaseBoss)
	if len(boss) != 1 || boss[0].Kind != "cucumber" || boss[0].CadenceMs != 800 {
		t.Fatalf("unexpected boss phase rules: %+v", boss)
	}
}

func TestGameSpecValidate(t *testing.T) {
	valid := func() GameSpec {
		return GameSpec{
			Canvas:  CanvasSpec{Width: 320, Height: 480},
			Boss:    BossSpec{Health: 8},
			Pool:    PoolSpec{Max: 8},
			Enemies: []EnemySpec{{Kind: "robot", CadenceMs: 1000}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(g *GameSpec)
		wantErr error
	}{
		{name: "valid", mutate: func(*GameSpec) {}},
		{name: "no canvas", mutate: func(g *GameSpec) { g.Canvas.Width = 0 }, wantErr: errAny},
		{name: "no boss health", mutate: func(g *GameSpec) { g.Boss.Health = 0 }, wantErr: errAny},
		{name: "zero cadence", mutate: func(g *GameSpec) { g.Enemies[0].CadenceMs = 0 }, wantErr: errAny},
		{name: "unknown kind", mutate: func(g *GameSpec) { g.Enemies[0].Kind = "toaster" }, wantErr: ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := valid()
			tc.mutate(&g)
			err := g.Validate()
			switch {
			case tc.wantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tc.wantErr == errAny && err == nil:
				t.Fatalf("expected an error")
			case tc.wantErr != nil && tc.wantErr != errAny && !errors.Is(err, tc.wantErr):
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

var errAny = errors.New("any error")

func TestLoadSoundAndSpriteSpecs(t *testing.T) {
	sounds, err := LoadSoundSpec()
	if err != nil {
		t.Fatalf("LoadSoundSpec: %v", err)
	}
	for _, cue := range []string{"attack", "enemy_death", "background_music", "boss_music", "game_start"} {
		if _, ok := sounds.Cues[cue]; !ok {
			t.Fatalf("missing cue %q", cue)
		}
	}

	sprites, err := LoadSpriteSheetSpec()
	if err != nil {
		t.Fatalf("LoadSpriteSheetSpec: %v", err)
	}
	if got := sprites.Sprites["boss_anger"].Base; got != "boss_base" {
		t.Fatalf("boss_anger base = %q", got)
	}
	if _, ok := sprites.Palette["y"]; !ok {
		t.Fatalf("palette key y missing")
	}
}

func TestYAMLColor(t *testing.T) {
	var out struct {
		A YAMLColor `yaml:"a"`
		B YAMLColor `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: \"#b13e53\"\nb: \"#00000080\"\n"), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.A.Color != (color.NRGBA{R: 0xb1, G: 0x3e, B: 0x53, A: 0xff}) {
		t.Fatalf("a = %v", out.A.Color)
	}
	if out.B.Color != (color.NRGBA{A: 0x80}) {
		t.Fatalf("b = %v", out.B.Color)
	}
	if err := yaml.Unmarshal([]byte("a: \"#abc\"\n"), &out); err == nil {
		t.Fatalf("expected error for short color")
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{fn: prefabName, in: "prefabs/game.yaml", want: "game.yaml"},
		{fn: prefabName, in: "game.yaml", want: "game.yaml"},
		{fn: scriptName, in: "robot.tengo", want: "scripts/robot.tengo"},
		{fn: scriptName, in: "prefabs/scripts/robot.tengo", want: "scripts/robot.tengo"},
		{fn: (&Watcher{root: "/work/prefabs"}).relative, in: "/work/prefabs/scripts/robot.tengo", want: "scripts/robot.tengo"},
		{fn: (&Watcher{root: "/work/prefabs"}).relative, in: "/work/prefabs/game.yaml", want: "game.yaml"},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.in); got != tc.want {
			t.Errorf("%q -> %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("robot.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(src) == 0 {
		t.Fatalf("empty script")
	}
}

func TestStoreReload(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Reload("prefabs/game.yaml"); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if err := s.Reload("scripts/robot.tengo"); err != nil {
		t.Fatalf("Reload script: %v", err)
	}
	if s.Version() != 2 {
		t.Fatalf("version = %d, want 2", s.Version())
	}
	if err := s.Reload("level.json"); err == nil {
		t.Fatalf("expected error for unknown prefab")
	}
	if s.Version() != 2 {
		t.Fatalf("failed reload bumped version")
	}
}
