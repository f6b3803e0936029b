// Package render consumes the instance buffer: it ages records against the
// frame clock, culls expired ones, sizes the dispatch and draws the survivors
// to a terminal screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/combat-text/floating"
	"github.com/lixenwraith/combat-text/glyph"
)

// DefaultRise is the number of rows a record climbs over its lifetime
const DefaultRise = 4

// Presenter draws live records as text cells. The bottom row is reserved for
// the status line
type Presenter[T floating.Instance] struct {
	screen   tcell.Screen
	camera   Camera
	palette  Palette
	duration float32
	status   string

	Rise int
}

// NewPresenter binds a presenter to screen
func NewPresenter[T floating.Instance](screen tcell.Screen, camera Camera, duration float32) *Presenter[T] {
	return &Presenter[T]{
		screen:   screen,
		camera:   camera,
		palette:  DefaultPalette(),
		duration: duration,
		Rise:     DefaultRise,
	}
}

// SetStatus replaces the status line text drawn on the next Present
func (p *Presenter[T]) SetStatus(s string) {
	p.status = s
}

// Present clears the screen, draws the records named by visible and shows the
// frame. Records whose index fails to decode are skipped; the first such error
// is returned after the frame is shown
func (p *Presenter[T]) Present(items []T, visible []uint32, now float32) error {
	p.screen.Clear()
	width, height := p.screen.Size()
	rows := height - 1

	var firstErr error
	for _, slot := range visible {
		if int(slot) >= len(items) {
			continue
		}
		rec := items[slot].Record()
		dec, err := glyph.Decode(rec.Index)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("render: slot %d: %w", slot, err)
			}
			continue
		}
		runes := dec.Runes()

		progress := Progress(now-rec.SpawnTime, p.duration)
		x, y := p.camera.Project(rec.Position, width, rows)
		y -= int(progress * float32(p.Rise))
		x -= len(runes) / 2

		style := p.palette.Style(dec.Style)
		if progress > 0.5 {
			style = style.Dim(true)
		}
		for i, r := range runes {
			cx := x + i
			if cx < 0 || cx >= width || y < 0 || y >= rows {
				continue
			}
			p.screen.SetContent(cx, y, r, nil, style)
		}
	}

	if rows >= 0 {
		p.drawStatus(width, rows)
	}
	p.screen.Show()
	return firstErr
}

func (p *Presenter[T]) drawStatus(width, row int) {
	style := StatusStyle()
	for x := 0; x < width; x++ {
		p.screen.SetContent(x, row, ' ', nil, style)
	}
	for i, r := range []rune(p.status) {
		if i >= width {
			break
		}
		p.screen.SetContent(i, row, r, nil, style)
	}
}
