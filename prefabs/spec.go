package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownKind = errors.New("prefabs: unknown enemy kind")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is prefabs/game.yaml: everything a play session is tuned by.
type GameSpec struct {
	Canvas  CanvasSpec  `yaml:"canvas"`
	Player  PlayerSpec  `yaml:"player"`
	Boss    BossSpec    `yaml:"boss"`
	Session SessionSpec `yaml:"session"`
	Pool    PoolSpec    `yaml:"pool"`
	Enemies []EnemySpec `yaml:"enemies"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: game.yaml: %w", err)
	}
	return &spec, nil
}

// Validate checks the values a session cannot start without.
func (g *GameSpec) Validate() error {
	if g.Canvas.Width <= 0 || g.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d", g.Canvas.Width, g.Canvas.Height)
	}
	if g.Boss.Health <= 0 {
		return fmt.Errorf("boss health %d", g.Boss.Health)
	}
	if g.Pool.Max <= 0 {
		return fmt.Errorf("pool max %d", g.Pool.Max)
	}
	for i, e := range g.Enemies {
		if e.CadenceMs <= 0 {
			return fmt.Errorf("enemy %d (%s): cadence %v", i, e.Kind, e.CadenceMs)
		}
		if !KnownKind(e.Kind) {
			return fmt.Errorf("enemy %d: %w %q", i, ErrUnknownKind, e.Kind)
		}
	}
	return nil
}

// Phase returns the spawn rules registered for phase, in file order.
func (g *GameSpec) Phase(phase string) []EnemySpec {
	var out []EnemySpec
	for _, e := range g.Enemies {
		if e.Phase == phase {
			out = append(out, e)
		}
	}
	return out
}

type CanvasSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerSpec struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	CooldownMs float64 `yaml:"cooldown_ms"`
	IdleMs     float64 `yaml:"idle_frame_ms"`
	AttackMs   float64 `yaml:"attack_frame_ms"`
	Hitbox     BoxSpec `yaml:"attack_box"`
}

// BoxSpec is a box relative to its owner's centre-top.
type BoxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetY float64 `yaml:"offset_y"`
}

type BossSpec struct {
	Width           float64   `yaml:"width"`
	Height          float64   `yaml:"height"`
	StartY          float64   `yaml:"start_y"`
	Health          int       `yaml:"health"`
	StageTwoAt      int       `yaml:"stage_two_at"`
	SpawnGraceMs    float64   `yaml:"spawn_grace_ms"`
	InvincibleMs    float64   `yaml:"invincible_ms"`
	HurtMs          float64   `yaml:"hurt_ms"`
	RepositionSpeed float64   `yaml:"reposition_speed"`
	DefeatDrift     float64   `yaml:"defeat_drift"`
	Orbit           OrbitSpec `yaml:"orbit"`
	Sweep           SweepSpec `yaml:"sweep"`
}

type OrbitSpec struct {
	CenterY  float64 `yaml:"center_y"`
	Radius   float64 `yaml:"radius"`
	PeriodMs float64 `yaml:"period_ms"`
}

type SweepSpec struct {
	BaseY       float64 `yaml:"base_y"`
	Margin      float64 `yaml:"margin"`
	PeriodMs    float64 `yaml:"period_ms"`
	BobHeight   float64 `yaml:"bob_height"`
	BobPeriodMs float64 `yaml:"bob_period_ms"`
}

type SessionSpec struct {
	BossTriggerMs   float64   `yaml:"boss_trigger_ms"`
	BossMusicDelay  float64   `yaml:"boss_music_delay_ms"`
	VictoryBonus    int       `yaml:"victory_bonus"`
	ScrollSpeed     float64   `yaml:"scroll_speed"`
	MusicVolumes    []float64 `yaml:"music_volumes"`
	MaxFrameDeltaMs float64   `yaml:"max_frame_delta_ms"`
}

type PoolSpec struct {
	Initial int `yaml:"initial"`
	Growth  int `yaml:"growth"`
	Max     int `yaml:"max"`
}

const (
	PhaseNormal = "normal"
	PhaseBoss   = "boss"
)

// EnemySpec is one spawn rule.
type EnemySpec struct {
	Kind      string             `yaml:"kind"`
	Phase     string             `yaml:"phase"`
	CadenceMs float64            `yaml:"cadence_ms"`
	Score     int                `yaml:"score"`
	Path      string             `yaml:"path"`
	Script    string             `yaml:"script"`
	Params    map[string]float64 `yaml:"params"`
}

// KnownKind reports whether kind names an enemy the spawner can build.
func KnownKind(kind string) bool {
	switch kind {
	case "robot", "flippers", "cucumber":
		return true
	}
	return false
}

// SpriteSheetSpec is prefabs/sprites.yaml: a shared palette and pixel rows
// for every named sprite.
type SpriteSheetSpec struct {
	Palette map[string]YAMLColor  `yaml:"palette"`
	Sprites map[string]SpriteSpec `yaml:"sprites"`
}

type SpriteSpec struct {
	// Base names another sprite drawn underneath this one.
	Base  string   `yaml:"base"`
	Scale int      `yaml:"scale"`
	Rows  []string `yaml:"rows"`
}

func LoadSpriteSheetSpec() (*SpriteSheetSpec, error) {
	spec, err := LoadSpec[SpriteSheetSpec]("sprites.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// SoundSpec is prefabs/sounds.yaml: named cues, each a set of per-waveform
// note tracks.
type SoundSpec struct {
	Cues map[string]CueSpec `yaml:"cues"`
}

type CueSpec struct {
	Sine     []string `yaml:"sine"`
	Square   []string `yaml:"square"`
	Sawtooth []string `yaml:"sawtooth"`
	Triangle []string `yaml:"triangle"`
}

func LoadSoundSpec() (*SoundSpec, error) {
	spec, err := LoadSpec[SoundSpec]("sounds.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
