// Package ring holds spawned records in a fixed-capacity circular store and
// hands only the slots written since the previous flush to an external sink.
//
// The buffer overwrites its oldest record when full and never grows. Flushing
// is best-effort: if more than Cap records are enqueued between two drains the
// sink only sees the slots the cursors say are dirty, and the skipped
// records are counted in Stats.Lapped. Size the capacity generously against the
// peak per-frame spawn rate when every record must reach the sink.
package ring

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned for a non-positive capacity
var ErrInvalidCapacity = errors.New("ring: capacity must be positive")

// Sink receives contiguous runs of dirty slots. Offset is the slot index shared by
// the ring and the sink; src is a staging copy valid only for the duration of the call
type Sink[T any] interface {
	WriteRange(offset, length int, src []T) error
}

// Range is one contiguous run of slots to relocate; source and destination
// share index space so Src always equals Dst
type Range struct {
	Src, Dst, Len int
}

// Stats counts records through the buffer
type Stats struct {
	Enqueued uint64 // total records written
	Flushed  uint64 // records handed to a sink
	Lapped   uint64 // records skipped by a flush because the writer lapped the transfer cursor
}

// Buffer is a fixed-capacity overwrite-on-full ring. Not safe for concurrent
// use; see Synced
type Buffer[T any] struct {
	items    []T
	stage    []T
	capacity int

	head     int // oldest readable record
	tail     int // next write slot
	transfer int // first slot not yet handed to a sink

	sinceFlush int
	stats      Stats
}

// New allocates a buffer of exactly capacity slots with all cursors at 0
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}, nil
}

// Cap returns the fixed slot count
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// Enqueue writes item at the tail. When the tail catches the head the oldest
// record is discarded
func (b *Buffer[T]) Enqueue(item T) {
	b.items[b.tail] = item
	b.tail = (b.tail + 1) % b.capacity
	if b.tail == b.head {
		b.head = (b.head + 1) % b.capacity
	}

	b.stats.Enqueued++
	b.sinceFlush++
}

// Count returns the readable records between head and tail. A full lap leaves
// head == tail+1, so the count saturates at Cap-1
func (b *Buffer[T]) Count() int {
	return (b.tail - b.head + b.capacity) % b.capacity
}

// Pending returns the slots written since the last flush, modulo a full lap
func (b *Buffer[T]) Pending() int {
	return (b.tail - b.transfer + b.capacity) % b.capacity
}

// Retained returns the most recent min(Enqueued, Cap) records still in the
// backing store, oldest first. The result is a copy
func (b *Buffer[T]) Retained() []T {
	n := b.capacity
	if b.stats.Enqueued < uint64(n) {
		n = int(b.stats.Enqueued)
	}
	out := make([]T, n)
	start := (b.tail - n + b.capacity) % b.capacity
	for i := 0; i < n; i++ {
		out[i] = b.items[(start+i)%b.capacity]
	}
	return out
}

// Stats returns the running counters
func (b *Buffer[T]) Stats() Stats {
	return b.stats
}

// DirtyRanges splits [transfer, tail) at the physical end of the store.
// It returns zero, one or two ranges in the order they must be applied
func (b *Buffer[T]) DirtyRanges() (ranges [2]Range, n int) {
	switch {
	case b.tail > b.transfer:
		ranges[0] = Range{Src: b.transfer, Dst: b.transfer, Len: b.tail - b.transfer}
		n = 1
	case b.tail < b.transfer:
		ranges[0] = Range{Src: b.transfer, Dst: b.transfer, Len: b.capacity - b.transfer}
		ranges[1] = Range{Src: 0, Dst: 0, Len: b.tail}
		n = 2
		// A wrap that ends exactly at slot 0 leaves nothing in the second run
		if b.tail == 0 {
			n = 1
		}
	}
	return ranges, n
}

// DrainUnflushed copies the dirty slots to sink and moves the transfer cursor
// to the tail. With nothing dirty it does nothing. A failed write stops the
// drain; ranges written before it stay flushed and the rest is picked up by the
// next call. Returns the number of records handed over
func (b *Buffer[T]) DrainUnflushed(sink Sink[T]) (int, error) {
	if b.sinceFlush >= b.capacity {
		// The dirty range only spans the final partial lap
		b.stats.Lapped += uint64(b.sinceFlush - b.Pending())
	}

	ranges, n := b.DirtyRanges()
	written := 0
	for i := 0; i < n; i++ {
		r := ranges[i]
		src := b.staged(r)
		if err := sink.WriteRange(r.Dst, r.Len, src); err != nil {
			b.stats.Flushed += uint64(written)
			// Records still owed to the sink count toward the next lap check
			b.sinceFlush = b.Pending()
			return written, fmt.Errorf("ring: write [%d,%d): %w", r.Dst, r.Dst+r.Len, err)
		}
		written += r.Len
		b.transfer = (r.Src + r.Len) % b.capacity
	}

	b.transfer = b.tail
	b.sinceFlush = 0
	b.stats.Flushed += uint64(written)
	return written, nil
}

// staged copies a run out of the backing store so sinks never alias it
func (b *Buffer[T]) staged(r Range) []T {
	if cap(b.stage) < r.Len {
		b.stage = make([]T, r.Len, b.capacity)
	}
	s := b.stage[:r.Len]
	copy(s, b.items[r.Src:r.Src+r.Len])
	return s
}
