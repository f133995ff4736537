package component

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrNoFrames = errors.New("animation: no frames")

// Frame is one image of an animation and how long it stays on screen, in ms.
type Frame struct {
	Image    *ebiten.Image
	Duration float64
}

// Animation steps through a fixed sequence of timed frames. A looping
// animation wraps back to the first frame; a finite one stops on the last
// frame and reports Finished.
type Animation struct {
	frames   []Frame
	loop     bool
	current  int
	elapsed  float64
	finished bool
}

// NewAnimation builds an animation over frames. At least one frame is
// required and every duration must be positive.
func NewAnimation(frames []Frame, loop bool) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	for i, f := range frames {
		if f.Duration <= 0 {
			return nil, fmt.Errorf("animation: frame %d: non-positive duration %v", i, f.Duration)
		}
	}
	owned := make([]Frame, len(frames))
	copy(owned, frames)
	return &Animation{frames: owned, loop: loop}, nil
}

// Advance moves the animation forward by dt milliseconds. Leftover time is
// carried into the next frame.
func (a *Animation) Advance(dt float64) {
	if a == nil || len(a.frames) <= 1 || a.finished || dt <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.frames[a.current].Duration {
		a.elapsed -= a.frames[a.current].Duration
		if a.current+1 < len(a.frames) {
			a.current++
			continue
		}
		if a.loop {
			a.current = 0
			continue
		}
		a.finished = true
		a.elapsed = 0
		return
	}
}

// Current returns the image for the frame under the cursor.
func (a *Animation) Current() *ebiten.Image {
	if a == nil || len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.current].Image
}

// Reset rewinds to the first frame and clears Finished.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.elapsed = 0
	a.finished = false
}

// Finished is only meaningful for non-looping animations.
func (a *Animation) Finished() bool { return a != nil && a.finished }

func (a *Animation) Index() int {
	if a == nil {
		return 0
	}
	return a.current
}
