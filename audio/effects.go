// Package audio synthesizes a short cue for each burst of spawned combat text
// and plays it through the system speaker when one is available.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/combat-text/glyph"
	"github.com/lixenwraith/combat-text/parameter"
)

// Tone is a single synthesized cue: one waveform swept linearly from From to
// To Hz over Length, shaped by a linear attack and release
type Tone struct {
	Wave     WaveType
	From, To float64
	Length   time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// Streamer renders the tone at rate. The stream ends after Length
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Length)
	attack, release := rate.N(t.Attack), rate.N(t.Release)
	step := 1 / float64(rate)

	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := 0; i < n; i++ {
			v := waveAt(t.Wave, phase) * gainAt(pos, total, attack, release)
			samples[i][0] = v
			samples[i][1] = v

			freq := t.From + (t.To-t.From)*float64(pos)/float64(total)
			phase += freq * step
			phase -= math.Floor(phase)
			pos++
		}
		return n, true
	})
}

// waveAt samples one period of wave at phase in [0, 1)
func waveAt(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// gainAt is the envelope level at sample pos of total
func gainAt(pos, total, attack, release int) float64 {
	g := 1.0
	if pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = min(g, float64(total-pos)/float64(release))
	}
	return g
}

// newVolume wraps s at a linear volume; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Per-style base pitch and timbre, indexed by glyph style
var (
	hitBaseFreq = [glyph.StyleCount]float64{440.0, 660.0, 523.25, 784.0}
	hitWave     = [glyph.StyleCount]WaveType{WaveSine, WaveSquare, WaveSine, WaveSaw}
)

// HitFrequency returns the cue pitch for a style and digit count. Longer numbers
// sound higher; out-of-range inputs are clamped
func HitFrequency(style, digits int) float64 {
	style = min(max(style, 0), glyph.StyleCount-1)
	digits = min(max(digits, 1), glyph.RenderCharLength)
	return hitBaseFreq[style] * (1 + parameter.HitPitchStep*float64(digits-1))
}

// HitTone returns the cue for a spawned number: the style picks the timbre and
// the digit count the starting pitch, which then drops by HitSweepRatio
func HitTone(style, digits int) Tone {
	freq := HitFrequency(style, digits)
	return Tone{
		Wave:    hitWave[min(max(style, 0), glyph.StyleCount-1)],
		From:    freq,
		To:      freq * parameter.HitSweepRatio,
		Length:  parameter.HitSoundDuration,
		Attack:  parameter.HitSoundAttack,
		Release: parameter.HitSoundRelease,
	}
}

// CreateHitSound renders the hit cue at the configured rate and level
func CreateHitSound(cfg *AudioConfig, style, digits int) beep.Streamer {
	tone := HitTone(style, digits).Streamer(beep.SampleRate(cfg.SampleRate))
	return newVolume(tone, cfg.HitVolume*cfg.MasterVolume)
}
