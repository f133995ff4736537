package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrUnknownPath = errors.New("obj: unknown path")

// PathFunc maps an entity's own elapsed time in ms to its top-left position.
type PathFunc func(t float64) cp.Vector

// PathParams are the resolved numbers a path is built from. Missing keys
// read as zero.
type PathParams map[string]float64

func (p PathParams) get(key string) float64 { return p[key] }

// BuildPath returns the named movement path.
//
//	fall:   x, y = speed*t
//	zigzag: x + sin(frequency*t)*amplitude, y = vy*t
//	drift:  x + vx*t, start_y + vy*t + amplitude*sin(frequency*t + phase)
func BuildPath(name string, p PathParams) (PathFunc, error) {
	x := p.get("x")
	switch name {
	case "fall":
		speed := p.get("speed")
		return func(t float64) cp.Vector {
			return cp.Vector{X: x, Y: t * speed}
		}, nil
	case "zigzag":
		vy, amp, freq := p.get("vy"), p.get("amplitude"), p.get("frequency")
		return func(t float64) cp.Vector {
			return cp.Vector{X: x + math.Sin(t*freq)*amp, Y: t * vy}
		}, nil
	case "drift":
		vx, vy := p.get("vx"), p.get("vy")
		amp, freq, phase := p.get("amplitude"), p.get("frequency"), p.get("phase")
		startY := p.get("start_y")
		return func(t float64) cp.Vector {
			return cp.Vector{
				X: x + vx*t,
				Y: vy*t + startY + amp*math.Sin(freq*t+phase),
			}
		}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownPath, name)
}

// straightPath moves from origin at a constant velocity in px/ms.
func straightPath(origin, velocity cp.Vector) PathFunc {
	return func(t float64) cp.Vector {
		return origin.Add(velocity.Mult(t))
	}
}
