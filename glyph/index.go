package glyph

// RenderCharLength is the number of character slots carried by one PackedIndex
const RenderCharLength = 9

// PackedIndex holds one packed word per character slot on a 3x3 grid.
// Indexed [x][y] so the in-memory order is column-major, the order a shader
// reads a uint3x3
type PackedIndex [3][3]uint32

// SlotCell maps slot i to its grid cell
func SlotCell(i int) (x, y int) {
	return i % 3, i / 3
}

// Slot returns the packed word of slot i
func (p *PackedIndex) Slot(i int) uint32 {
	x, y := SlotCell(i)
	return p[x][y]
}

// SetSlot stores w in slot i
func (p *PackedIndex) SetSlot(i int, w uint32) {
	x, y := SlotCell(i)
	p[x][y] = w
}

// Slots returns the words in slot order
func (p *PackedIndex) Slots() [RenderCharLength]uint32 {
	var out [RenderCharLength]uint32
	for i := range out {
		out[i] = p.Slot(i)
	}
	return out
}

// Words returns the words in memory order (column-major)
func (p *PackedIndex) Words() [RenderCharLength]uint32 {
	var out [RenderCharLength]uint32
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			out[x*3+y] = p[x][y]
		}
	}
	return out
}
