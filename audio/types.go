package audio

import "errors"

// WaveType selects the waveform of a tone
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sentinel errors
var (
	ErrInvalidSampleRate = errors.New("audio: sample rate must be positive")
	ErrInvalidVolume     = errors.New("audio: volume must be within [0, 1]")
)
