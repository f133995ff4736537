package audio

import (
	"math"
	"testing"

	"github.com/milk9111/blackcat/prefabs"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		token    string
		wantFreq float64
		wantDur  float64
		wantErr  bool
	}{
		{token: "c1", wantFreq: 261.63, wantDur: 0.1},
		{token: "a_1.5", wantFreq: 220.00, wantDur: 0.15},
		{token: "C#2", wantFreq: 554.37, wantDur: 0.2},
		{token: "A0.5", wantFreq: 880.00, wantDur: 0.05},
		{token: "-2", wantDur: 0.2},
		{token: "_1", wantDur: 0.1},
		{token: "C_1", wantDur: 0.1, wantErr: true},
		{token: "h1", wantErr: true},
		{token: "c", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			n, err := ParseNote(tc.token, Square)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if n.Freq != tc.wantFreq {
				t.Fatalf("freq = %v, want %v", n.Freq, tc.wantFreq)
			}
			if math.Abs(n.Duration-tc.wantDur) > 1e-9 {
				t.Fatalf("duration = %v, want %v", n.Duration, tc.wantDur)
			}
			if n.Wave != Square {
				t.Fatalf("wave = %v, want square", n.Wave)
			}
		})
	}
}

func TestCompileKeepsTrackOrderAndRests(t *testing.T) {
	tune := Compile("test", prefabs.CueSpec{
		Sine:     []string{"c1", "bogus", "e1"},
		Triangle: []string{"c_4"},
	})
	if len(tune) != 2 {
		t.Fatalf("tracks = %d, want 2", len(tune))
	}
	if tune[0][0].Wave != Sine || tune[1][0].Wave != Triangle {
		t.Fatalf("track order wrong: %v %v", tune[0][0].Wave, tune[1][0].Wave)
	}
	if len(tune[0]) != 3 || tune[0][1].Freq != 0 {
		t.Fatalf("bad token should become a rest: %+v", tune[0])
	}
	if got := tune.Duration(); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("duration = %v, want 0.4", got)
	}
}

func TestRender(t *testing.T) {
	tune := Compile("beep", prefabs.CueSpec{Square: []string{"a1", "-1"}})
	pcm := Render(tune, 1000, nil)
	if want := 200 * bytesPerFrame; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}

	silent := true
	for _, b := range pcm[:100*bytesPerFrame] {
		if b != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Fatalf("note half rendered silence")
	}
	for i, b := range pcm[100*bytesPerFrame:] {
		if b != 0 {
			t.Fatalf("rest half has sample data at byte %d", i)
		}
	}

	muted := Render(tune, 1000, []float64{0})
	for _, b := range muted {
		if b != 0 {
			t.Fatalf("muted voice produced sound")
		}
	}

	if Render(Tune{}, 1000, nil) != nil {
		t.Fatalf("empty tune should render nothing")
	}
}

func TestEnvelope(t *testing.T) {
	if got := envelope(0, 1); math.Abs(got-floorGain) > 1e-12 {
		t.Fatalf("start = %v, want %v", got, floorGain)
	}
	if got := envelope(attackTime, 1); math.Abs(got-peakGain) > 1e-12 {
		t.Fatalf("peak = %v, want %v", got, peakGain)
	}
	if got := envelope(1, 1); math.Abs(got-floorGain) > 1e-12 {
		t.Fatalf("end = %v, want %v", got, floorGain)
	}
}

func TestEngineWithoutContext(t *testing.T) {
	e := NewEngine(nil, &prefabs.SoundSpec{Cues: map[string]prefabs.CueSpec{
		"attack": {Sawtooth: []string{"A0.5"}},
	}})
	if !e.HasCue("attack") || e.HasCue("missing") {
		t.Fatalf("HasCue mismatch")
	}
	e.Play("attack", 1)
	e.Play("missing", 1)
	e.PlayLoop("attack", []float64{1})
	if e.Loops() != 0 {
		t.Fatalf("loops started without a context")
	}
	e.SetMusicEnabled(false)
	if e.MusicEnabled() {
		t.Fatalf("music still enabled")
	}
	e.StopAllLoops()
}
