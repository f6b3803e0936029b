package ring

import "sync"

// Synced guards a Buffer with a mutex so a producer goroutine and a flushing
// goroutine can share it. The sink runs under the lock
type Synced[T any] struct {
	mu  sync.Mutex
	buf *Buffer[T]
}

// NewSynced allocates a guarded buffer of capacity slots
func NewSynced[T any](capacity int) (*Synced[T], error) {
	buf, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Synced[T]{buf: buf}, nil
}

func (s *Synced[T]) Cap() int {
	return s.buf.Cap()
}

func (s *Synced[T]) Enqueue(item T) {
	s.mu.Lock()
	s.buf.Enqueue(item)
	s.mu.Unlock()
}

func (s *Synced[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Count()
}

func (s *Synced[T]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Pending()
}

func (s *Synced[T]) Retained() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Retained()
}

func (s *Synced[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Stats()
}

// DrainUnflushed holds the lock across the sink writes; the sink must not call
// back into the buffer
func (s *Synced[T]) DrainUnflushed(sink Sink[T]) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.DrainUnflushed(sink)
}

// Queue is the surface shared by Buffer and Synced; owners pick the variant and
// hand the same value to producers and the flusher
type Queue[T any] interface {
	Cap() int
	Enqueue(item T)
	Count() int
	Pending() int
	Retained() []T
	Stats() Stats
	DrainUnflushed(sink Sink[T]) (int, error)
}

var (
	_ Queue[int] = (*Buffer[int])(nil)
	_ Queue[int] = (*Synced[int])(nil)
)
