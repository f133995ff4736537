package audio

import (
	"encoding/binary"
	"math"
)

const (
	masterGain = 0.3
	peakGain   = 0.3
	floorGain  = 0.001
	attackTime = 0.05
	// bytesPerFrame is 16-bit little-endian stereo.
	bytesPerFrame = 4
)

// Render mixes t into 16-bit little-endian stereo PCM. volumes scales each
// track in order; missing entries default to 1.
func Render(t Tune, sampleRate int, volumes []float64) []byte {
	frames := int(math.Ceil(t.Duration() * float64(sampleRate)))
	if frames <= 0 || sampleRate <= 0 {
		return nil
	}
	mix := make([]float64, frames)
	for i, tr := range t {
		vol := 1.0
		if i < len(volumes) {
			vol = volumes[i]
		}
		if vol <= 0 {
			continue
		}
		renderTrack(mix, tr, sampleRate, vol)
	}

	out := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		v *= masterGain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], s)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], s)
	}
	return out
}

func renderTrack(mix []float64, tr Track, sampleRate int, vol float64) {
	start := 0.0
	for _, n := range tr {
		if n.Freq > 0 && n.Duration > 0 {
			first := int(start * float64(sampleRate))
			count := int(n.Duration * float64(sampleRate))
			for j := 0; j < count && first+j < len(mix); j++ {
				at := float64(j) / float64(sampleRate)
				mix[first+j] += oscillate(n.Wave, n.Freq*at) * envelope(at, n.Duration) * vol
			}
		}
		start += n.Duration
	}
}

// oscillate samples wave at the given number of cycles.
func oscillate(wave Waveform, cycles float64) float64 {
	phase := cycles - math.Floor(cycles)
	switch wave {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope ramps linearly up to peakGain over the attack and then decays
// exponentially to floorGain at the end of the note.
func envelope(at, duration float64) float64 {
	attack := attackTime
	if attack > duration/2 {
		attack = duration / 2
	}
	if at < attack {
		return floorGain + (peakGain-floorGain)*at/attack
	}
	decay := duration - attack
	if decay <= 0 {
		return floorGain
	}
	return peakGain * math.Pow(floorGain/peakGain, (at-attack)/decay)
}
