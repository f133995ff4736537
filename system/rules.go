package system

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/prefabs"
)

// defaultParams rolls path parameters for rules without a script. config
// entries override the rolled values of the same name.
func defaultParams(path string, rng *rand.Rand, width float64, config map[string]float64) obj.PathParams {
	cfg := func(key string, fallback float64) float64 {
		if v, ok := config[key]; ok {
			return v
		}
		return fallback
	}

	p := obj.PathParams{"x": rng.Float64() * width}
	switch path {
	case "fall":
		p["speed"] = cfg("min_speed", 0.05) + rng.Float64()*cfg("speed_range", 0.1)
	case "zigzag":
		p["vy"] = 0.08 + rng.Float64()*0.04
		p["amplitude"] = 40 + rng.Float64()*30
		p["frequency"] = 0.0015 + rng.Float64()*0.0005
	case "drift":
		p["vx"] = (rng.Float64() - 0.5) * 0.05
		p["vy"] = 0.05 + rng.Float64()*0.05
		p["amplitude"] = 40*rng.Float64() + 20
		p["frequency"] = rng.Float64()*0.002 + 0.001
		p["phase"] = rng.Float64() * math.Pi * 2
		p["start_y"] = -16
	}
	for k, v := range config {
		if _, ok := p[k]; ok {
			p[k] = v
		}
	}
	return p
}

// params resolves the path parameters for one spawn of spec.
func (w *World) params(spec prefabs.EnemySpec) (obj.PathParams, error) {
	if spec.Script != "" && w.Scripts != nil {
		return w.Scripts.Params(spec.Script, w.width, spec.Params)
	}
	return defaultParams(spec.Path, w.rng, w.width, spec.Params), nil
}

// Generator builds the spawn function for one enemy rule. Each call pulls an
// enemy from the pool and starts it on a freshly rolled path.
func (w *World) Generator(spec prefabs.EnemySpec) (Generator, error) {
	kind, err := obj.ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}
	if _, err := obj.BuildPath(spec.Path, obj.PathParams{}); err != nil {
		return nil, fmt.Errorf("system: rule %s: %w", spec.Kind, err)
	}

	return func() (obj.Entity, error) {
		params, err := w.params(spec)
		if err != nil {
			return nil, err
		}
		path, err := obj.BuildPath(spec.Path, params)
		if err != nil {
			return nil, err
		}
		cfg, err := obj.NewEnemyConfig(kind, w.sprites, path)
		if err != nil {
			return nil, err
		}
		cfg.Target = w.target
		cfg.Cues = w.cues
		cfg.Events = w.events

		e, err := w.Pool.Get()
		if err != nil {
			return nil, err
		}
		if err := e.Init(cfg); err != nil {
			w.Pool.Release(e)
			return nil, err
		}
		return e, nil
	}, nil
}

// RegisterPhase adds every rule of the given phase to the spawner.
func (w *World) RegisterPhase(game *prefabs.GameSpec, phase string) error {
	for _, spec := range game.Phase(phase) {
		gen, err := w.Generator(spec)
		if err != nil {
			return err
		}
		w.Spawner.RegisterRule(gen, spec.CadenceMs, spec.Score)
	}
	return nil
}
