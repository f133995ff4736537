// Package audio compiles note cues from prefabs/sounds.yaml and plays them
// through ebiten's audio context.
package audio

import (
	"fmt"
	"log"
	"regexp"
	"strconv"

	"github.com/milk9111/blackcat/prefabs"
)

type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("waveform(%d)", int(w))
}

// Note is one tone or rest. Freq is zero for a rest.
type Note struct {
	Freq     float64
	Wave     Waveform
	Duration float64 // seconds
}

type Track []Note

// Tune is a set of tracks that start together.
type Tune []Track

// paceSeconds converts a token's pace into seconds.
const paceSeconds = 0.1

var noteToken = regexp.MustCompile(`^([a-gA-G]#?_?|[-_])([\d.]+)$`)

var noteFrequencies = map[string]float64{
	"c_": 130.81, "c#_": 138.59, "d_": 146.83, "d#_": 155.56, "e_": 164.81, "f_": 174.61,
	"f#_": 185.00, "g_": 196.00, "g#_": 207.65, "a_": 220.00, "a#_": 233.08, "b_": 246.94,
	"c": 261.63, "c#": 277.18, "d": 293.66, "d#": 311.13, "e": 329.63, "f": 349.23,
	"f#": 369.99, "g": 392.00, "g#": 415.30, "a": 440.00, "a#": 466.16, "b": 493.88,
	"C": 523.25, "C#": 554.37, "D": 587.33, "D#": 622.25, "E": 659.25, "F": 698.46,
	"F#": 739.99, "G": 783.99, "G#": 830.61, "A": 880.00, "A#": 932.33, "B": 987.77,
}

// ParseNote decodes a single token such as "a_1.5" or "-2". On error the
// returned note is a rest carrying whatever duration could be read.
func ParseNote(token string, wave Waveform) (Note, error) {
	m := noteToken.FindStringSubmatch(token)
	if m == nil {
		return Note{Wave: wave}, fmt.Errorf("invalid note format %q", token)
	}
	pace, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Note{Wave: wave}, fmt.Errorf("invalid pace in %q: %w", token, err)
	}
	n := Note{Wave: wave, Duration: pace * paceSeconds}
	if m[1] == "-" || m[1] == "_" {
		return n, nil
	}
	freq, ok := noteFrequencies[m[1]]
	if !ok {
		return n, fmt.Errorf("unknown note %q", m[1])
	}
	n.Freq = freq
	return n, nil
}

// Compile turns a cue spec into a Tune. Bad tokens are logged and become
// rests; compilation never fails.
func Compile(name string, spec prefabs.CueSpec) Tune {
	var tune Tune
	for _, src := range []struct {
		notes []string
		wave  Waveform
	}{
		{spec.Sine, Sine},
		{spec.Square, Square},
		{spec.Sawtooth, Sawtooth},
		{spec.Triangle, Triangle},
	} {
		if len(src.notes) == 0 {
			continue
		}
		track := make(Track, 0, len(src.notes))
		for _, tok := range src.notes {
			n, err := ParseNote(tok, src.wave)
			if err != nil {
				log.Printf("[Audio] cue %s %s: %v, using a rest", name, src.wave, err)
			}
			track = append(track, n)
		}
		tune = append(tune, track)
	}
	return tune
}

// Duration returns the length of the longest track in seconds.
func (t Tune) Duration() float64 {
	longest := 0.0
	for _, tr := range t {
		d := 0.0
		for _, n := range tr {
			d += n.Duration
		}
		if d > longest {
			longest = d
		}
	}
	return longest
}
