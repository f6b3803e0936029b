// Package engine ties the floating-text pipeline together: a producer-side ring,
// the instance buffer it flushes into, the per-frame cull and dispatch sizing,
// and the clocks and scheduler that drive it.
package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/combat-text/device"
	"github.com/lixenwraith/combat-text/floating"
	"github.com/lixenwraith/combat-text/glyph"
	"github.com/lixenwraith/combat-text/render"
	"github.com/lixenwraith/combat-text/ring"
)

// ErrInvalidFeature is returned for an unusable feature configuration
var ErrInvalidFeature = errors.New("engine: invalid feature config")

// FeatureConfig sizes one floating-text feature
type FeatureConfig struct {
	Capacity        int     // ring and instance buffer slots
	Duration        float32 // record lifetime in seconds
	ThreadGroupSize int     // records per dispatch group
	Synced          bool    // guard the ring for producers on other goroutines
}

// Presenter draws the live records of a frame
type Presenter[T floating.Instance] interface {
	Present(items []T, visible []uint32, now float32) error
}

// FrameStats describes one completed frame
type FrameStats struct {
	Now          float32
	Flushed      int    // records relocated into the instance buffer
	Visible      int    // records alive after culling
	ThreadGroups int    // dispatch size for the visible set
	Lapped       uint64 // records skipped by this frame's flush
}

// Feature owns the ring and instance buffer for one record kind
type Feature[T floating.Instance] struct {
	cfg       FeatureConfig
	queue     ring.Queue[T]
	target    *device.Buffer[T]
	flusher   *device.Flusher[T]
	clock     floating.Clock
	args      glyph.DrawArgs
	visible   []uint32
	presenter Presenter[T]

	lastLapped uint64
}

// NewFeature allocates the ring and a matching instance buffer
func NewFeature[T floating.Instance](cfg FeatureConfig, clock floating.Clock, mesh glyph.Mesh) (*Feature[T], error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidFeature, cfg.Duration)
	}
	if cfg.ThreadGroupSize <= 0 {
		return nil, fmt.Errorf("%w: thread group size %d", ErrInvalidFeature, cfg.ThreadGroupSize)
	}

	var queue ring.Queue[T]
	var err error
	if cfg.Synced {
		queue, err = ring.NewSynced[T](cfg.Capacity)
	} else {
		queue, err = ring.New[T](cfg.Capacity)
	}
	if err != nil {
		return nil, err
	}

	target, err := device.NewBuffer[T](cfg.Capacity)
	if err != nil {
		return nil, err
	}
	flusher, err := device.NewFlusher(queue, target)
	if err != nil {
		return nil, err
	}

	return &Feature[T]{
		cfg:     cfg,
		queue:   queue,
		target:  target,
		flusher: flusher,
		clock:   clock,
		args:    glyph.NewDrawArgs(mesh),
		visible: make([]uint32, 0, cfg.Capacity),
	}, nil
}

// SetPresenter attaches a presenter called at the end of every frame; nil detaches
func (f *Feature[T]) SetPresenter(p Presenter[T]) {
	f.presenter = p
}

// Queue returns the producer-side ring
func (f *Feature[T]) Queue() ring.Queue[T] {
	return f.queue
}

// Spawner returns a producer stamping records with the feature clock
func (f *Feature[T]) Spawner(wrap func(floating.Item) T) *floating.Spawner[T] {
	return floating.NewSpawner[T](f.queue, f.clock, wrap)
}

// Target returns the instance buffer
func (f *Feature[T]) Target() *device.Buffer[T] {
	return f.target
}

// DrawArgs returns the indirect draw arguments as of the last frame
func (f *Feature[T]) DrawArgs() glyph.DrawArgs {
	return f.args
}

// Visible returns the slots drawn by the last frame; valid until the next Frame
func (f *Feature[T]) Visible() []uint32 {
	return f.visible
}

// Frame flushes new records, culls expired ones, updates the draw arguments and
// presents. A flush error is logged and the frame continues with what reached
// the instance buffer; the error is still returned
func (f *Feature[T]) Frame() (FrameStats, error) {
	var stats FrameStats

	flushed, flushErr := f.flusher.Flush()
	stats.Flushed = flushed
	if flushErr != nil {
		log.Printf("Flush failed after %d records: %v", flushed, flushErr)
	}

	lapped := f.queue.Stats().Lapped
	stats.Lapped = lapped - f.lastLapped
	f.lastLapped = lapped
	if stats.Lapped > 0 {
		log.Printf("Ring lapped: %d records skipped (capacity %d)", stats.Lapped, f.cfg.Capacity)
	}

	stats.Now = f.clock.Seconds()
	items := f.target.View()
	f.visible = render.Cull(items, stats.Now, f.cfg.Duration, f.visible)
	stats.Visible = len(f.visible)
	stats.ThreadGroups = render.ThreadGroups(stats.Visible, f.cfg.ThreadGroupSize)
	f.args.SetInstanceCount(uint32(stats.Visible))

	var presentErr error
	if f.presenter != nil {
		presentErr = f.presenter.Present(items, f.visible, stats.Now)
	}

	return stats, errors.Join(flushErr, presentErr)
}
