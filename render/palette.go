package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/combat-text/glyph"
)

// RGB color definitions per glyph style
var (
	RgbStyleWhite  = tcell.NewRGBColor(240, 240, 240) // Plain damage
	RgbStyleRed    = tcell.NewRGBColor(255, 80, 80)   // Critical
	RgbStyleGreen  = tcell.NewRGBColor(50, 255, 50)   // Heal
	RgbStyleYellow = tcell.NewRGBColor(255, 255, 0)   // Special

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// Palette holds one terminal style per glyph style
type Palette [glyph.StyleCount]tcell.Style

// DefaultPalette returns the built-in style colors
func DefaultPalette() Palette {
	base := tcell.StyleDefault
	return Palette{
		base.Foreground(RgbStyleWhite),
		base.Foreground(RgbStyleRed).Bold(true),
		base.Foreground(RgbStyleGreen),
		base.Foreground(RgbStyleYellow).Bold(true),
	}
}

// Style returns the style for a glyph style, falling back to the default
func (p Palette) Style(style int) tcell.Style {
	if style < 0 || style >= len(p) {
		return tcell.StyleDefault
	}
	return p[style]
}

// StatusStyle is used for the bottom status line
func StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
}
