// Package device models the fixed-capacity instance buffer a renderer reads
// and the adapter that relocates a ring's dirty slots into it.
package device

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCount     = errors.New("device: element count must be positive")
	ErrOutOfRange       = errors.New("device: write outside buffer")
	ErrCapacityMismatch = errors.New("device: capacity mismatch")
)

// Buffer is a host-side stand-in for a GPU structured buffer: fixed capacity,
// written in contiguous sub-ranges, read by the consumer each frame
type Buffer[T any] struct {
	data   []T
	writes uint64
}

// NewBuffer allocates count zeroed elements
func NewBuffer[T any](count int) (*Buffer[T], error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	return &Buffer[T]{data: make([]T, count)}, nil
}

// Cap returns the element count
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// WriteRange copies src into [offset, offset+length). The whole write is
// rejected if it does not fit or src disagrees with length
func (b *Buffer[T]) WriteRange(offset, length int, src []T) error {
	if offset < 0 || length < 0 || offset+length > len(b.data) {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrOutOfRange, offset, offset+length, len(b.data))
	}
	if len(src) != length {
		return fmt.Errorf("%w: source holds %d, length %d", ErrOutOfRange, len(src), length)
	}
	copy(b.data[offset:offset+length], src)
	b.writes++
	return nil
}

// SetData replaces the whole content, the equivalent of a full upload
func (b *Buffer[T]) SetData(src []T) error {
	if len(src) != len(b.data) {
		return fmt.Errorf("%w: source holds %d, buffer %d", ErrCapacityMismatch, len(src), len(b.data))
	}
	return b.WriteRange(0, len(src), src)
}

// View exposes the contents to the consumer stage. Callers must not retain it
// across a flush
func (b *Buffer[T]) View() []T {
	return b.data
}

// At returns element i
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Writes returns how many sub-range writes the buffer accepted
func (b *Buffer[T]) Writes() uint64 {
	return b.writes
}
