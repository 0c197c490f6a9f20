package assets

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Waveform names the oscillator shape of a tone.
type Waveform string

const (
	WaveSquare   Waveform = "square"
	WaveSine     Waveform = "sine"
	WaveTriangle Waveform = "triangle"
)

// Tone describes a short frequency sweep. It is the on-disk sound format.
type Tone struct {
	Wave       Waveform `yaml:"wave"`
	StartHz    float64  `yaml:"start_hz"`
	EndHz      float64  `yaml:"end_hz"`
	DurationMS int      `yaml:"duration_ms"`
	Volume     float64  `yaml:"volume"`
}

func (t Tone) validate() error {
	switch t.Wave {
	case WaveSquare, WaveSine, WaveTriangle:
	default:
		return fmt.Errorf("unknown wave %q", t.Wave)
	}
	if t.StartHz <= 0 || t.EndHz <= 0 {
		return fmt.Errorf("frequencies must be positive, got %v..%v", t.StartHz, t.EndHz)
	}
	if t.DurationMS <= 0 {
		return fmt.Errorf("duration_ms %d must be positive", t.DurationMS)
	}
	if t.Volume <= 0 || t.Volume > 1 {
		return fmt.Errorf("volume %v must be in (0, 1]", t.Volume)
	}
	return nil
}

// PCM renders the tone as signed 16-bit little-endian stereo samples.
// The last tenth fades out linearly.
func (t Tone) PCM(sampleRate int) []byte {
	n := sampleRate * t.DurationMS / 1000
	buf := make([]byte, n*4)
	fade := n / 10

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := t.oscillate(phase) * t.Volume
		if rem := n - i; rem < fade {
			v *= float64(rem) / float64(fade)
		}

		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}

// oscillate returns the waveform value in [-1, 1] at phase in [0, 1).
func (t Tone) oscillate(phase float64) float64 {
	switch t.Wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		if phase < 0.5 {
			return 1
		}
		return -1
	}
}
