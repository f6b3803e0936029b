package engine

import (
	"sync"
	"time"
)

// PausableClock measures simulation time since creation, excluding pauses.
// Records are stamped and aged against it, so a paused clock freezes every
// floating record in place
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock starts a clock at zero on the given provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns simulation time since the clock started
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.provider.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPausedTime
}

// Seconds returns Elapsed as float32 seconds, the unit of Item.SpawnTime
func (pc *PausableClock) Seconds() float32 {
	return float32(pc.Elapsed().Seconds())
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues simulation time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
