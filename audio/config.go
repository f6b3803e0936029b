package audio

import (
	"fmt"
	"time"

	"github.com/lixenwraith/combat-text/parameter"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	HitVolume    float64 // 0.0 to 1.0, scaled by MasterVolume
	SampleRate   int
	MinGap       time.Duration // cues closer than this are dropped
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.MasterVolume,
		HitVolume:    parameter.HitVolume,
		SampleRate:   parameter.AudioSampleRate,
		MinGap:       parameter.MinSoundGap,
	}
}

// Validate checks ranges
func (c *AudioConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: master %v", ErrInvalidVolume, c.MasterVolume)
	}
	if c.HitVolume < 0 || c.HitVolume > 1 {
		return fmt.Errorf("%w: hit %v", ErrInvalidVolume, c.HitVolume)
	}
	return nil
}
