package floating

import (
	"math/rand"

	"github.com/lixenwraith/combat-text/glyph"
)

// Enqueuer accepts finished records; ring.Buffer and ring.Synced satisfy it
type Enqueuer[T any] interface {
	Enqueue(item T)
}

// Clock supplies the simulation time stamped on each record
type Clock interface {
	Seconds() float32
}

// DefaultScale is applied to records spawned without an explicit scale
var DefaultScale = Vec2{X: 1, Y: 1}

// Spawner encodes values and pushes the resulting records to a queue
type Spawner[T any] struct {
	queue Enqueuer[T]
	clock Clock
	wrap  func(Item) T

	Scale Vec2
}

// NewSpawner builds a producer; wrap turns the shared Item into the record kind
func NewSpawner[T any](queue Enqueuer[T], clock Clock, wrap func(Item) T) *Spawner[T] {
	return &Spawner[T]{
		queue: queue,
		clock: clock,
		wrap:  wrap,
		Scale: DefaultScale,
	}
}

// Spawn enqueues one record. Encoding errors are returned and nothing is enqueued
func (s *Spawner[T]) Spawn(style, value int, pos Vec3) error {
	idx, err := glyph.Encode(style, value)
	if err != nil {
		return err
	}
	s.queue.Enqueue(s.wrap(Item{
		Index:     idx,
		Scale:     s.Scale,
		Position:  pos,
		SpawnTime: s.clock.Seconds(),
	}))
	return nil
}

// Burst draws random spawn parameters: positions on a horizontal plane,
// values and styles uniform over their ranges
type Burst struct {
	rng *rand.Rand

	Extent   float32 // half-width of the square spawn area
	Height   float32 // spawn Y
	MaxValue int     // values drawn from [0, MaxValue)
	Styles   int     // styles drawn from [0, Styles)
}

// NewBurst seeds a generator with the given ranges
func NewBurst(seed int64, extent, height float32, maxValue, styles int) *Burst {
	return &Burst{
		rng:      rand.New(rand.NewSource(seed)),
		Extent:   extent,
		Height:   height,
		MaxValue: maxValue,
		Styles:   styles,
	}
}

// Next returns one set of spawn parameters
func (b *Burst) Next() (style, value int, pos Vec3) {
	pos = Vec3{
		X: (b.rng.Float32()*2 - 1) * b.Extent,
		Y: b.Height,
		Z: (b.rng.Float32()*2 - 1) * b.Extent,
	}
	value = b.rng.Intn(b.MaxValue)
	style = b.rng.Intn(b.Styles)
	return style, value, pos
}

// SpawnBurst enqueues n random records, stopping at the first encoding error
func (s *Spawner[T]) SpawnBurst(b *Burst, n int) (int, error) {
	for i := 0; i < n; i++ {
		style, value, pos := b.Next()
		if err := s.Spawn(style, value, pos); err != nil {
			return i, err
		}
	}
	return n, nil
}
