// Package floating defines the record a spawned combat number occupies in the
// instance buffer and the producer that builds and enqueues those records.
package floating

import (
	"encoding/binary"
	"math"

	"github.com/lixenwraith/combat-text/glyph"
)

// Vec2 is a 2D float32 vector matching a shader float2
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D float32 vector matching a shader float3
type Vec3 struct {
	X, Y, Z float32
}

// Item is one floating record. Immutable once enqueued; the consumer ages it
// from SpawnTime and never writes it back
type Item struct {
	Index     glyph.PackedIndex
	Scale     Vec2
	Position  Vec3
	SpawnTime float32
}

// Stride is the packed size of an Item in the instance buffer:
// 3x3 uint32 index, float2 scale, float3 position, float spawn time
const Stride = glyph.RenderCharLength*4 + 2*4 + 3*4 + 4

// Record returns the shared item shape; promoted through Damage and Text
func (it Item) Record() Item {
	return it
}

// AppendBinary appends the little-endian GPU layout of it to dst
func (it Item) AppendBinary(dst []byte) []byte {
	for _, w := range it.Index.Words() {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	for _, f := range [...]float32{
		it.Scale.X, it.Scale.Y,
		it.Position.X, it.Position.Y, it.Position.Z,
		it.SpawnTime,
	} {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// Instance is satisfied by every record kind the pipeline renders
type Instance interface {
	Record() Item
}

// Damage is a floating damage number
type Damage struct {
	Item
}

// Text is a generic floating text record
type Text struct {
	Item
}

// NewDamage wraps an item as a damage record
func NewDamage(it Item) Damage {
	return Damage{Item: it}
}

// NewText wraps an item as a text record
func NewText(it Item) Text {
	return Text{Item: it}
}

// MarshalInstances packs records back to back, Stride bytes each
func MarshalInstances[T Instance](items []T) []byte {
	buf := make([]byte, 0, len(items)*Stride)
	for _, it := range items {
		buf = it.Record().AppendBinary(buf)
	}
	return buf
}
