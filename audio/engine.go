package audio

import (
	"bytes"
	"log"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/blackcat/prefabs"
)

const SampleRate = 44100

// Engine plays named cues. A nil context makes every call a no-op, which is
// how -mute runs.
type Engine struct {
	ctx          *ebaudio.Context
	tunes        map[string]Tune
	oneShots     map[string][]byte
	loops        []*ebaudio.Player
	musicEnabled bool
	warned       map[string]bool
}

func NewEngine(ctx *ebaudio.Context, spec *prefabs.SoundSpec) *Engine {
	e := &Engine{ctx: ctx, musicEnabled: true}
	e.Load(spec)
	return e
}

// Load compiles every cue in spec, replacing the previous set.
func (e *Engine) Load(spec *prefabs.SoundSpec) {
	e.tunes = map[string]Tune{}
	e.oneShots = map[string][]byte{}
	e.warned = map[string]bool{}
	if spec == nil {
		return
	}
	for name, cue := range spec.Cues {
		e.tunes[name] = Compile(name, cue)
	}
}

// HasCue reports whether name was compiled.
func (e *Engine) HasCue(name string) bool {
	_, ok := e.tunes[name]
	return ok
}

func (e *Engine) tune(name string) (Tune, bool) {
	t, ok := e.tunes[name]
	if !ok && !e.warned[name] {
		e.warned[name] = true
		log.Printf("[Audio] unknown cue %q", name)
	}
	return t, ok
}

// Play fires a one-shot cue at volume in [0,1].
func (e *Engine) Play(cue string, volume float64) {
	t, ok := e.tune(cue)
	if !ok || e.ctx == nil {
		return
	}
	pcm, ok := e.oneShots[cue]
	if !ok {
		pcm = Render(t, SampleRate, nil)
		e.oneShots[cue] = pcm
	}
	if len(pcm) == 0 {
		return
	}
	p := e.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
}

// PlayLoop starts cue repeating until StopAllLoops. voiceVolumes scales the
// cue's tracks in order.
func (e *Engine) PlayLoop(cue string, voiceVolumes []float64) {
	t, ok := e.tune(cue)
	if !ok || e.ctx == nil {
		return
	}
	pcm := Render(t, SampleRate, voiceVolumes)
	if len(pcm) == 0 {
		return
	}
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := e.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[Audio] loop %s: %v", cue, err)
		return
	}
	e.loops = append(e.loops, p)
	if e.musicEnabled {
		p.Play()
	}
}

func (e *Engine) StopAllLoops() {
	for _, p := range e.loops {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Printf("[Audio] close loop: %v", err)
		}
	}
	e.loops = nil
}

// SetMusicEnabled pauses or resumes the running loops. Loops started while
// music is disabled wait until it is enabled again.
func (e *Engine) SetMusicEnabled(enabled bool) {
	if e.musicEnabled == enabled {
		return
	}
	e.musicEnabled = enabled
	for _, p := range e.loops {
		if enabled {
			p.Play()
		} else {
			p.Pause()
		}
	}
}

func (e *Engine) MusicEnabled() bool { return e.musicEnabled }

// Loops is the number of running loop players.
func (e *Engine) Loops() int { return len(e.loops) }
