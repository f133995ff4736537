// Package scenes holds the top-level screens: the menu, a play session, the
// pause overlay and the game over screen.
package scenes

import (
	"github.com/milk9111/blackcat/fsm"
	"github.com/milk9111/blackcat/obj"
	"github.com/milk9111/blackcat/prefabs"
	"github.com/milk9111/blackcat/system"
)

const (
	CueGameStart    = "game_start"
	CueVictory      = "victory"
	CueDefeat       = "defeat"
	MusicBackground = "background_music"
	MusicBoss       = "boss_music"
)

// Audio is the part of audio.Engine the screens drive.
type Audio interface {
	Play(cue string, volume float64)
	PlayLoop(cue string, voiceVolumes []float64)
	StopAllLoops()
	SetMusicEnabled(enabled bool)
}

type silentAudio struct{}

func (silentAudio) Play(string, float64)       {}
func (silentAudio) PlayLoop(string, []float64) {}
func (silentAudio) StopAllLoops()              {}
func (silentAudio) SetMusicEnabled(bool)       {}

// Context is shared by every screen in place of package globals.
type Context struct {
	Machine  *fsm.Machine
	Controls *obj.Controls
	Audio    Audio
	Sprites  obj.Sprites
	Store    *prefabs.Store
	Scripts  *system.SpawnScripts
	Debug    bool

	// ToggleFullscreen is called by the menu. Nil disables the option.
	ToggleFullscreen func()
}

// States is the set of long-lived screens, linked to each other.
type States struct {
	Menu  *Menu
	Game  *Game
	Pause *Pause
	Over  *Over
}

// NewStates builds every screen around ctx. ctx.Machine is created in the
// menu state when the caller left it nil.
func NewStates(ctx *Context) *States {
	if ctx.Audio == nil {
		ctx.Audio = silentAudio{}
	}
	if ctx.Controls == nil {
		ctx.Controls = obj.NewControls(0)
	}

	s := &States{
		Menu:  &Menu{ctx: ctx, startSelected: true},
		Game:  &Game{ctx: ctx},
		Pause: &Pause{ctx: ctx},
		Over:  &Over{ctx: ctx},
	}
	s.Menu.game = s.Game
	s.Game.pause = s.Pause
	s.Game.over = s.Over
	s.Over.game = s.Game

	if ctx.Machine == nil {
		ctx.Machine = fsm.NewMachine(s.Menu)
		ctx.Machine.Debug = ctx.Debug
	}
	return s
}
