package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive hit cues; bursts within the gap are dropped
	MinSoundGap = 50 * time.Millisecond

	// MasterVolume is the default output level in [0, 1]
	MasterVolume = 0.5

	// HitVolume is the default hit cue level in [0, 1]
	HitVolume = 0.4
)

// Hit Sound
const (
	HitSoundDuration = 60 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond

	// HitPitchStep raises the cue per extra digit, as a fraction of the base pitch
	HitPitchStep = 0.06

	// HitSweepRatio is the end pitch of a cue relative to its start
	HitSweepRatio = 0.75
)
