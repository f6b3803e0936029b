package render

import (
	"github.com/lixenwraith/combat-text/floating"
	"github.com/lixenwraith/combat-text/glyph"
)

// Cull appends to out[:0] the slot index of every live record: a non-empty index
// whose age lies in [0, duration). Slots never written hold the zero index and
// are skipped
func Cull[T floating.Instance](items []T, now, duration float32, out []uint32) []uint32 {
	out = out[:0]
	for i := range items {
		rec := items[i].Record()
		if rec.Index == (glyph.PackedIndex{}) {
			continue
		}
		age := now - rec.SpawnTime
		if age < 0 || age >= duration {
			continue
		}
		out = append(out, uint32(i))
	}
	return out
}

// ThreadGroups returns the dispatch size covering n items at groupSize per group
func ThreadGroups(n, groupSize int) int {
	if n <= 0 || groupSize <= 0 {
		return 0
	}
	return (n + groupSize - 1) / groupSize
}

// Progress normalizes age against duration, clamped to [0, 1]
func Progress(age, duration float32) float32 {
	if duration <= 0 {
		return 1
	}
	p := age / duration
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
