package glyph

// Atlas layout: StyleCount rows of GlyphsPerStyle characters, each character
// owning CornersPerGlyph consecutive IDs, followed by the blank glyph
const (
	StyleCount      = 4
	GlyphsPerStyle  = 10
	CornersPerGlyph = 4

	// StyleStride is the ID distance between two style rows
	StyleStride = GlyphsPerStyle * CornersPerGlyph

	// BlankGlyph is the top-left corner ID of the blank cell
	BlankGlyph = StyleCount * StyleStride

	// GlyphIDCount is the number of corner IDs addressed by the atlas, blank included
	GlyphIDCount = BlankGlyph + CornersPerGlyph
)

// BlankWord fills slots past the last digit
const BlankWord uint32 = BlankGlyph<<24 | (BlankGlyph+1)<<16 | (BlankGlyph+2)<<8 | (BlankGlyph + 3)

// Corner selects one vertex of a character quad
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// Charset is the character placed at each atlas cell; row 0 holds the decimal
// digits, the other rows are alternate glyph sets addressed by the same digit column
var Charset = [StyleCount][GlyphsPerStyle]rune{
	{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	{'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p'},
	{'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'L'},
	{'z', 'x', 'c', 'v', 'b', 'n', 'm', 'M', 'N', 'B'},
}

// GlyphBase returns the top-left corner ID of the atlas cell (style, column)
func GlyphBase(style, column int) int {
	return style*StyleStride + column*CornersPerGlyph
}

// GlyphID returns the ID of one corner of the atlas cell (style, column)
func GlyphID(style, column int, corner Corner) int {
	return GlyphBase(style, column) + int(corner)
}

// RuneAt returns the atlas character drawn for digit in the given style
func RuneAt(style, digit int) rune {
	return Charset[style][digit]
}
