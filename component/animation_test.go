package component

import (
	"errors"
	"testing"
)

func frames(durations ...float64) []Frame {
	out := make([]Frame, len(durations))
	for i, d := range durations {
		out[i] = Frame{Duration: d}
	}
	return out
}

func TestNewAnimationRejectsBadInput(t *testing.T) {
	if _, err := NewAnimation(nil, true); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	if _, err := NewAnimation(frames(100, 0), true); err == nil {
		t.Fatalf("expected error for zero duration")
	}
}

func TestAnimationAdvance(t *testing.T) {
	tests := []struct {
		name         string
		durations    []float64
		loop         bool
		steps        []float64
		wantIndex    int
		wantFinished bool
	}{
		{name: "loop wraps after full cycle", durations: []float64{200, 200}, loop: true, steps: []float64{400}, wantIndex: 0},
		{name: "loop wraps in small steps", durations: []float64{300, 100}, loop: true, steps: []float64{100, 100, 100, 100}, wantIndex: 0},
		{name: "partial frame keeps cursor", durations: []float64{200, 200}, loop: true, steps: []float64{199}, wantIndex: 0},
		{name: "carry over into next frame", durations: []float64{100, 100, 100}, loop: true, steps: []float64{150, 60}, wantIndex: 2},
		{name: "finite finishes on last frame", durations: []float64{100, 100}, loop: false, steps: []float64{200}, wantIndex: 1, wantFinished: true},
		{name: "finite ignores further advances", durations: []float64{100, 100}, loop: false, steps: []float64{200, 1000}, wantIndex: 1, wantFinished: true},
		{name: "finite not finished early", durations: []float64{100, 100}, loop: false, steps: []float64{150}, wantIndex: 1},
		{name: "single frame never moves", durations: []float64{100}, loop: false, steps: []float64{1000}, wantIndex: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAnimation(frames(tc.durations...), tc.loop)
			if err != nil {
				t.Fatalf("NewAnimation: %v", err)
			}
			for _, dt := range tc.steps {
				a.Advance(dt)
			}
			if a.Index() != tc.wantIndex {
				t.Fatalf("index = %d, want %d", a.Index(), tc.wantIndex)
			}
			if a.Finished() != tc.wantFinished {
				t.Fatalf("finished = %v, want %v", a.Finished(), tc.wantFinished)
			}
		})
	}
}

func TestAnimationDriftFree(t *testing.T) {
	a, err := NewAnimation(frames(100, 100, 100, 100), true)
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}
	// 16ms frames add up to 400ms after 25 steps; one full cycle.
	for i := 0; i < 25; i++ {
		a.Advance(16)
	}
	if a.Index() != 0 {
		t.Fatalf("index = %d after a full cycle, want 0", a.Index())
	}
}

func TestAnimationReset(t *testing.T) {
	a, err := NewAnimation(frames(50, 50), false)
	if err != nil {
		t.Fatalf("NewAnimation: %v", err)
	}
	a.Advance(500)
	if !a.Finished() {
		t.Fatalf("expected finished")
	}
	a.Reset()
	if a.Finished() || a.Index() != 0 {
		t.Fatalf("reset left index=%d finished=%v", a.Index(), a.Finished())
	}
	a.Advance(60)
	if a.Index() != 1 {
		t.Fatalf("index = %d after reset and advance, want 1", a.Index())
	}
}
