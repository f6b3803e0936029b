package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/combat-text/parameter"
)

// SoundManager mixes hit cues into the speaker. Every method is safe to call
// before or without a successful Initialize; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	now     func() time.Time
	lastHit time.Time

	played  uint64
	dropped uint64
}

// NewSoundManager creates a sound manager; a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker. Disabled audio is a successful no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayHit queues a cue for a spawned number unless audio is off or another cue
// started within the minimum gap. Returns whether the cue was queued
func (sm *SoundManager) PlayHit(style, digits int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit() {
		sm.dropped++
		return false
	}

	cue := CreateHitSound(sm.cfg, style, digits)
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()

	sm.played++
	return true
}

// Counts returns the number of cues played and dropped
func (sm *SoundManager) Counts() (played, dropped uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}

// admit applies the minimum gap; caller holds mu
func (sm *SoundManager) admit() bool {
	now := sm.now()
	if !sm.lastHit.IsZero() && now.Sub(sm.lastHit) < sm.cfg.MinGap {
		return false
	}
	sm.lastHit = now
	return true
}
