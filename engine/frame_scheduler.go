package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/combat-text/core"
)

// TickFunc runs once per frame; a returned error is passed to the error handler
type TickFunc func(frame uint64) error

// FrameScheduler calls a tick function at a fixed interval on its own goroutine
type FrameScheduler struct {
	interval time.Duration
	tick     TickFunc
	onError  func(error)

	frames   atomic.Uint64
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewFrameScheduler creates a scheduler; onError may be nil
func NewFrameScheduler(interval time.Duration, tick TickFunc, onError func(error)) *FrameScheduler {
	if onError == nil {
		onError = func(error) {}
	}
	return &FrameScheduler{
		interval: interval,
		tick:     tick,
		onError:  onError,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		core.Go(fs.loop)
	}
}

// Stop halts the loop and waits for an in-flight tick to finish
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		close(fs.stopChan)
		if fs.running.CompareAndSwap(true, false) {
			fs.wg.Wait()
		}
	})
}

// Frames returns the number of completed ticks
func (fs *FrameScheduler) Frames() uint64 {
	return fs.frames.Load()
}

func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()

	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-fs.stopChan:
			return
		case <-ticker.C:
			frame := fs.frames.Load()
			if err := fs.tick(frame); err != nil {
				fs.onError(err)
			}
			fs.frames.Add(1)
		}
	}
}
