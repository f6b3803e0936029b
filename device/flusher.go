package device

import (
	"fmt"

	"github.com/lixenwraith/combat-text/ring"
)

// Flusher binds a ring to a device buffer of identical capacity. Each flush
// relocates the ring's dirty runs one-to-one into the same indices
type Flusher[T any] struct {
	src ring.Queue[T]
	dst *Buffer[T]
}

// NewFlusher fails when the two sides disagree on capacity, since indices are
// shared and a smaller sink would reject writes every lap
func NewFlusher[T any](src ring.Queue[T], dst *Buffer[T]) (*Flusher[T], error) {
	if src.Cap() != dst.Cap() {
		return nil, fmt.Errorf("%w: ring %d, device %d", ErrCapacityMismatch, src.Cap(), dst.Cap())
	}
	return &Flusher[T]{src: src, dst: dst}, nil
}

// Flush copies everything written since the previous flush; no-op when clean
func (f *Flusher[T]) Flush() (int, error) {
	return f.src.DrainUnflushed(f.dst)
}

// Target returns the device buffer
func (f *Flusher[T]) Target() *Buffer[T] {
	return f.dst
}

var _ ring.Sink[int] = (*Buffer[int])(nil)
