package glyph

// bitsPerField is the width of one glyph ID inside a packed word
const bitsPerField = 8

// Pack combines four 8-bit glyph IDs into one word, a in the high byte
func Pack(a, b, c, d uint8) uint32 {
	return uint32(a)<<(3*bitsPerField) |
		uint32(b)<<(2*bitsPerField) |
		uint32(c)<<(1*bitsPerField) |
		uint32(d)
}

// Unpack splits a packed word into the four 8-bit fields Pack wrote
func Unpack(w uint32) (a, b, c, d uint8) {
	a = uint8(w >> (3 * bitsPerField))
	b = uint8(w >> (2 * bitsPerField))
	c = uint8(w >> (1 * bitsPerField))
	d = uint8(w)
	return a, b, c, d
}

// packCorners packs the four corner IDs of the glyph whose top-left corner is base
func packCorners(base uint8) uint32 {
	return Pack(base, base+1, base+2, base+3)
}
