package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/prefabs"
)

// SpawnScripts compiles prefabs/scripts/*.tengo once and runs a fresh clone
// for every spawn. A script reads canvas_width and config and leaves its
// path parameters in a global map called params.
type SpawnScripts struct {
	compiled map[string]*tengo.Compiled
}

func NewSpawnScripts() *SpawnScripts {
	return &SpawnScripts{compiled: map[string]*tengo.Compiled{}}
}

func (s *SpawnScripts) compile(name string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[name]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("system: load script %s: %w", name, err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("canvas_width", 0.0)
	_ = script.Add("config", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("rand", "math"))

	c, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile script %s: %w", name, err)
	}
	s.compiled[name] = c
	return c, nil
}

// Forget drops a compiled script so the next spawn recompiles it from disk.
func (s *SpawnScripts) Forget(name string) {
	delete(s.compiled, strings.TrimPrefix(name, "scripts/"))
}

// Params runs the named script and returns the params map it built.
func (s *SpawnScripts) Params(name string, canvasWidth float64, config map[string]float64) (obj.PathParams, error) {
	base, err := s.compile(name)
	if err != nil {
		return nil, err
	}

	cfg := make(map[string]any, len(config))
	for k, v := range config {
		cfg[k] = v
	}

	c := base.Clone()
	if err := c.Set("canvas_width", canvasWidth); err != nil {
		return nil, err
	}
	if err := c.Set("config", cfg); err != nil {
		return nil, err
	}
	if err := c.Run(); err != nil {
		return nil, fmt.Errorf("system: run script %s: %w", name, err)
	}

	if !c.IsDefined("params") {
		return nil, fmt.Errorf("system: script %s: params not defined", name)
	}
	return objectToParams(c.Get("params").Object())
}

func objectToParams(o tengo.Object) (obj.PathParams, error) {
	var values map[string]tengo.Object
	switch v := o.(type) {
	case *tengo.Map:
		values = v.Value
	case *tengo.ImmutableMap:
		values = v.Value
	default:
		return nil, fmt.Errorf("system: params is %s, want map", o.TypeName())
	}

	out := make(obj.PathParams, len(values))
	for k, item := range values {
		switch v := item.(type) {
		case *tengo.Float:
			out[k] = v.Value
		case *tengo.Int:
			out[k] = float64(v.Value)
		default:
			return nil, fmt.Errorf("system: params.%s is %s, want number", k, item.TypeName())
		}
	}
	return out, nil
}
